package card

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/gateway/transport"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/time"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestAPI(t *testing.T, mux *http.ServeMux) *API {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	clock := timeadapter.NewManualTimeProvider(testNow)
	breakers := transport.NewBreakerSet(transport.DefaultBreakerConfig(), nil, logger.NewNoopLogger(), clock)
	client := transport.NewClient(gateway.Card, srv.Client(), breakers, nil, logger.NewNoopLogger())
	return NewAPI(Config{
		BaseURL:    srv.URL,
		SecretKey:  "FLWSECK_TEST-abc",
		SecretHash: "hash-123",
		Currency:   "USD",
	}, client, clock)
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func chargeRequestFixture() gateway.Request {
	return gateway.Request{
		TransactionID: "3f9c1c2e-7b1d-4a52-9c1a-1f0e5d2b8a10",
		OwnerID:       "owner-1",
		Direction:     entity.DirectionCollection,
		Amount:        2550,
		Currency:      "USD",
		Purpose:       entity.PurposeOrderPayment,
		Params:        map[string]string{"card_token": "flw-t1nf-abc", "email": "user@example.test"},
	}
}

func TestChargeAdapter_Initiate(t *testing.T) {
	t.Run("Sends the amount in major units", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v3/tokenized-charges", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer FLWSECK_TEST-abc", r.Header.Get("Authorization"))
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 25.5, body["amount"])
			assert.Equal(t, "3f9c1c2e-7b1d-4a52-9c1a-1f0e5d2b8a10", body["tx_ref"])
			assert.Equal(t, "flw-t1nf-abc", body["token"])

			respond(w, http.StatusOK, map[string]any{
				"status":  "success",
				"message": "Charge successful",
				"data":    map[string]any{"id": 277036749, "flw_ref": "FLW-MOCK-1", "status": "successful"},
			})
		})
		adapter := NewChargeAdapter(newTestAPI(t, mux))

		ack, err := adapter.Initiate(context.Background(), chargeRequestFixture())
		require.NoError(t, err)

		primary, _ := ack.CorrelationIDs.Primary()
		assert.Equal(t, entity.CorrelationTxRef, primary.Kind)
		assert.Equal(t, "3f9c1c2e-7b1d-4a52-9c1a-1f0e5d2b8a10", primary.Value)
		ref, ok := ack.CorrelationIDs.Find(entity.CorrelationGatewayReference)
		assert.True(t, ok)
		assert.Equal(t, "FLW-MOCK-1", ref)
	})

	t.Run("Error envelope is a rejection", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v3/tokenized-charges", func(w http.ResponseWriter, r *http.Request) {
			respond(w, http.StatusBadRequest, map[string]any{"status": "error", "message": "Token not found", "data": nil})
		})
		adapter := NewChargeAdapter(newTestAPI(t, mux))

		_, err := adapter.Initiate(context.Background(), chargeRequestFixture())
		assert.ErrorIs(t, err, errs.ErrGatewayRejected)
	})

	t.Run("Missing token", func(t *testing.T) {
		adapter := NewChargeAdapter(newTestAPI(t, http.NewServeMux()))
		req := chargeRequestFixture()
		delete(req.Params, "card_token")

		_, err := adapter.Initiate(context.Background(), req)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestChargeAdapter_QueryStatus(t *testing.T) {
	testCases := []struct {
		name     string
		data     map[string]any
		expected entity.OutcomeKind
		amount   *int64
	}{
		{"Successful", map[string]any{"status": "successful", "amount": 25.5, "currency": "USD", "flw_ref": "FLW-1"}, entity.OutcomeSuccess, ptr(2550)},
		{"Failed", map[string]any{"status": "failed", "amount": 25.5, "currency": "USD", "processor_response": "Insufficient funds"}, entity.OutcomeFailure, ptr(2550)},
		{"Pending", map[string]any{"status": "pending"}, entity.OutcomeInconclusive, nil},
		{"Success with unreadable amount", map[string]any{"status": "successful", "amount": 25.555, "currency": "USD"}, entity.OutcomeInconclusive, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/v3/transactions/verify_by_reference", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "ref-1", r.URL.Query().Get("tx_ref"))
				respond(w, http.StatusOK, map[string]any{"status": "success", "data": tc.data})
			})
			adapter := NewChargeAdapter(newTestAPI(t, mux))

			outcome, err := adapter.QueryStatus(context.Background(), entity.CorrelationID{Kind: entity.CorrelationTxRef, Value: "ref-1"})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, outcome.Kind)
			assert.Equal(t, tc.amount, outcome.ConfirmedAmount)
			assert.Equal(t, testNow, outcome.OccurredAt)
		})
	}
}

func TestPayoutAdapter(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v3/transfers", func(w http.ResponseWriter, r *http.Request) {
		var body transferRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "044", body.AccountBank)
		assert.Equal(t, "txn-9", body.Reference)
		respond(w, http.StatusOK, map[string]any{
			"status": "success",
			"data":   map[string]any{"id": 190626, "reference": "txn-9", "status": "NEW", "complete_message": ""},
		})
	})
	mux.HandleFunc("/v3/transfers/190626", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, map[string]any{
			"status": "success",
			"data":   map[string]any{"id": 190626, "reference": "txn-9", "status": "SUCCESSFUL", "amount": 500, "currency": "NGN", "complete_message": "Successful"},
		})
	})
	adapter := NewPayoutAdapter(newTestAPI(t, mux))

	ack, err := adapter.Initiate(context.Background(), gateway.Request{
		TransactionID: "txn-9",
		Direction:     entity.DirectionDisbursement,
		Amount:        50000,
		Currency:      "NGN",
		Purpose:       entity.PurposeWithdrawal,
		Params:        map[string]string{"account_bank": "044", "account_number": "0690000040"},
	})
	require.NoError(t, err)
	primary, _ := ack.CorrelationIDs.Primary()
	assert.Equal(t, entity.CorrelationID{Kind: entity.CorrelationGatewayReference, Value: "190626"}, primary)

	outcome, err := adapter.QueryStatus(context.Background(), primary)
	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeSuccess, outcome.Kind)
	require.NotNil(t, outcome.ConfirmedAmount)
	assert.Equal(t, int64(50000), *outcome.ConfirmedAmount)

	_, err = adapter.QueryStatus(context.Background(), entity.CorrelationID{Kind: entity.CorrelationGatewayReference, Value: "../x"})
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}

func TestWebhookHandler(t *testing.T) {
	handler := NewWebhookHandler(Config{SecretHash: "hash-123", Currency: "USD"}, timeadapter.NewManualTimeProvider(testNow))

	t.Run("Verify", func(t *testing.T) {
		assert.NoError(t, handler.Verify(nil, "hash-123"))
		assert.ErrorIs(t, handler.Verify(nil, "hash-124"), errs.ErrUnauthenticated)
		assert.ErrorIs(t, handler.Verify(nil, ""), errs.ErrUnauthenticated)
	})

	t.Run("Charge completed", func(t *testing.T) {
		n, err := handler.Parse([]byte(`{"event":"charge.completed","data":{
			"id":285959875,"tx_ref":"ref-1","flw_ref":"FLW-MOCK-1","amount":25.5,"currency":"USD",
			"status":"successful","processor_response":"Approved by Financial Institution"}}`))
		require.NoError(t, err)
		assert.Equal(t, "ref-1", n.CorrelationID)
		assert.Equal(t, entity.OutcomeSuccess, n.Outcome.Kind)
		assert.Equal(t, "FLW-MOCK-1", n.Outcome.ConfirmedID)
		assert.Equal(t, ptr(2550), n.Outcome.ConfirmedAmount)
		assert.Equal(t, "USD", n.Outcome.ConfirmedCurrency)
		assert.Equal(t, "charge.completed", n.Outcome.Metadata["event"])
	})

	t.Run("Transfer failed", func(t *testing.T) {
		n, err := handler.Parse([]byte(`{"event":"transfer.completed","event.type":"Transfer","data":{
			"id":190626,"reference":"txn-9","amount":500,"currency":"NGN","status":"FAILED",
			"complete_message":"DISBURSE FAILED: Insufficient funds"}}`))
		require.NoError(t, err)
		assert.Equal(t, "txn-9", n.CorrelationID)
		assert.Equal(t, entity.OutcomeFailure, n.Outcome.Kind)
		assert.Equal(t, "DISBURSE FAILED: Insufficient funds", n.Outcome.ResultDescription)
		assert.Equal(t, "NGN", n.Outcome.ConfirmedCurrency)
	})

	t.Run("Malformed payloads", func(t *testing.T) {
		for _, payload := range []string{
			`{`,
			`{"event":"charge.completed"}`,
			`{"event":"subscription.cancelled","data":{"tx_ref":"x","status":"successful"}}`,
			`{"event":"charge.completed","data":{"status":"successful"}}`,
			`{"event":"charge.completed","data":{"tx_ref":"x"}}`,
		} {
			_, err := handler.Parse([]byte(payload))
			assert.ErrorIs(t, err, errs.ErrInvalidCallback, payload)
		}
	})
}

func ptr(v int64) *int64 { return &v }
