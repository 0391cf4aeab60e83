package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/gateway/transport"
)

// initiateRequest is the collection the storm settles
type initiateRequest struct {
	OwnerID       string            `json:"ownerId"`
	Direction     string            `json:"direction"`
	Amount        string            `json:"amount"`
	Purpose       string            `json:"purpose"`
	Gateway       string            `json:"gateway"`
	GatewayParams map[string]string `json:"gatewayParams"`
}

// transactionView is the subset of the transaction response the storm reads
type transactionView struct {
	TransactionID  string            `json:"transactionId"`
	Status         string            `json:"status"`
	CorrelationIDs map[string]string `json:"correlationIds"`
}

// callbackAck is the callback endpoint's answer
type callbackAck struct {
	Applied bool `json:"applied"`
}

// StormStats aggregates the storm's results
type StormStats struct {
	Lock          sync.Mutex
	Sent          int
	Applied       int
	StatusCounts  map[int]int
	ResponseTimes []time.Duration
}

func (s *StormStats) record(status int, applied bool, took time.Duration) {
	s.Lock.Lock()
	defer s.Lock.Unlock()
	s.Sent++
	s.StatusCounts[status]++
	s.ResponseTimes = append(s.ResponseTimes, took)
	if applied {
		s.Applied++
	}
}

func main() {
	// Define command line flags
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	secret := flag.String("secret", os.Getenv("PO_MOBILE_MONEY_CALLBACK_KEY"), "Mobile money callback HMAC secret")
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	deliveries := flag.Int("n", 200, "Callback deliveries of the same payload")
	reconciles := flag.Int("r", 20, "Reconcile calls racing the callbacks")
	msisdn := flag.String("msisdn", "254708374149", "Subscriber number for the STK push")
	amount := flag.String("amount", "10.00", "Collection amount in major units")
	flag.Parse()

	if *secret == "" {
		fmt.Println("A callback secret is required (-secret or PO_MOBILE_MONEY_CALLBACK_KEY)")
		os.Exit(2)
	}

	client := &http.Client{Timeout: 10 * time.Second}

	txn, err := initiate(client, *baseURL, initiateRequest{
		OwnerID:       fmt.Sprintf("storm-%d", time.Now().Unix()),
		Direction:     "collection",
		Amount:        *amount,
		Purpose:       "deposit",
		Gateway:       "mobileMoney",
		GatewayParams: map[string]string{"msisdn": *msisdn},
	})
	if err != nil {
		fmt.Printf("Failed to initiate collection: %v\n", err)
		os.Exit(1)
	}
	checkoutID := txn.CorrelationIDs["checkout_request_id"]
	if checkoutID == "" {
		fmt.Printf("Transaction %s has no checkout request ID (status %s)\n", txn.TransactionID, txn.Status)
		os.Exit(1)
	}

	payload, _ := json.Marshal(map[string]any{"Body": map[string]any{"stkCallback": map[string]any{
		"MerchantRequestID": "storm",
		"CheckoutRequestID": checkoutID,
		"ResultCode":        0,
		"ResultDesc":        "The service request is processed successfully.",
		"CallbackMetadata": map[string]any{"Item": []map[string]any{
			{"Name": "Amount", "Value": json.Number(*amount)},
			{"Name": "MpesaReceiptNumber", "Value": "STORM" + checkoutID},
		}},
	}}})
	signature := transport.SignHMAC([]byte(*secret), payload)

	fmt.Printf("Transaction %s (checkout %s)\n", txn.TransactionID, checkoutID)
	fmt.Printf("Delivering %d identical callbacks with %d goroutines, racing %d reconciles\n",
		*deliveries, *concurrency, *reconciles)

	stats := &StormStats{StatusCounts: make(map[int]int)}
	jobs := make(chan func(), *deliveries+*reconciles)
	for i := 0; i < *deliveries; i++ {
		jobs <- func() {
			start := time.Now()
			status, body, err := post(client, *baseURL+"/callbacks/mobileMoney", payload, map[string]string{
				"X-Signature": signature,
			})
			if err != nil {
				stats.record(0, false, time.Since(start))
				return
			}
			var ack callbackAck
			_ = json.Unmarshal(body, &ack)
			stats.record(status, ack.Applied, time.Since(start))
		}
	}
	for i := 0; i < *reconciles; i++ {
		jobs <- func() {
			_, _, _ = post(client, *baseURL+"/transactions/"+txn.TransactionID+"/reconcile", nil, nil)
		}
	}
	close(jobs)

	startTime := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				job()
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(startTime)

	final, ledgerStatus := verify(client, *baseURL, txn.TransactionID)
	printResults(stats, elapsed, final, ledgerStatus)

	if stats.Applied != 1 || final != "completed" || ledgerStatus != http.StatusOK {
		os.Exit(1)
	}
}

func initiate(client *http.Client, baseURL string, req initiateRequest) (*transactionView, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	status, respBody, err := post(client, baseURL+"/transactions", body, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated {
		return nil, fmt.Errorf("HTTP status code %d: %s", status, respBody)
	}
	var txn transactionView
	if err := json.Unmarshal(respBody, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

func post(client *http.Client, url string, body []byte, headers map[string]string) (int, []byte, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	return resp.StatusCode, respBody, err
}

// verify reads back the final status and whether the ledger entry exists
func verify(client *http.Client, baseURL, transactionID string) (string, int) {
	status := "unknown"
	if resp, err := client.Get(baseURL + "/transactions/" + transactionID); err == nil {
		var txn transactionView
		_ = json.NewDecoder(resp.Body).Decode(&txn)
		resp.Body.Close()
		status = txn.Status
	}

	ledgerStatus := 0
	if resp, err := client.Get(baseURL + "/transactions/" + transactionID + "/ledger"); err == nil {
		ledgerStatus = resp.StatusCode
		resp.Body.Close()
	}
	return status, ledgerStatus
}

func printResults(stats *StormStats, elapsed time.Duration, final string, ledgerStatus int) {
	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	percentile := func(p int) time.Duration {
		if len(sorted) == 0 {
			return 0
		}
		return sorted[len(sorted)*p/100]
	}

	fmt.Println("\n================= STORM RESULTS =================")
	fmt.Printf("Callbacks sent:      %d in %.2f seconds\n", stats.Sent, elapsed.Seconds())
	fmt.Printf("Callbacks applied:   %d (expected 1)\n", stats.Applied)
	for status, count := range stats.StatusCounts {
		fmt.Printf("HTTP %-15d: %d\n", status, count)
	}
	fmt.Printf("P50 Response:        %v\n", percentile(50))
	fmt.Printf("P99 Response:        %v\n", percentile(99))
	fmt.Printf("Final status:        %s\n", final)
	fmt.Printf("Ledger lookup:       HTTP %d\n", ledgerStatus)
	fmt.Println("=================================================")
}
