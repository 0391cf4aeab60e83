package card

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/gateway/transport"
)

// API is the authenticated card endpoint shared by the adapters
type API struct {
	cfg          Config
	client       *transport.Client
	timeProvider coreport.TimeProvider
}

// NewAPI creates the shared endpoint
func NewAPI(cfg Config, client *transport.Client, timeProvider coreport.TimeProvider) *API {
	return &API{cfg: cfg, client: client, timeProvider: timeProvider}
}

// envelope wraps every card gateway answer
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// transfer is the shape shared by charge, verification and payout data
type transfer struct {
	ID                int64       `json:"id"`
	TxRef             string      `json:"tx_ref"`
	Reference         string      `json:"reference"`
	FlwRef            string      `json:"flw_ref"`
	Amount            json.Number `json:"amount"`
	Currency          string      `json:"currency"`
	Status            string      `json:"status"`
	ProcessorResponse string      `json:"processor_response"`
	CompleteMessage   string      `json:"complete_message"`
}

// call sends a request and decodes the data member of a successful envelope into out
func (a *API) call(ctx context.Context, operation, method, path string, body, out any) error {
	resp, err := a.client.Do(ctx, transport.Call{
		Operation: operation,
		Method:    method,
		URL:       strings.TrimRight(a.cfg.BaseURL, "/") + path,
		Header:    http.Header{"Authorization": []string{"Bearer " + a.cfg.SecretKey}},
		Body:      body,
	})
	if err != nil {
		return err
	}

	var env envelope
	if err := resp.Decode(&env); err != nil {
		return err
	}
	if env.Status != "success" {
		return fmt.Errorf("%w: %s: %s", errs.ErrGatewayRejected, env.Status, env.Message)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s data: %w", operation, err)
	}
	return nil
}

// majorAmount renders minor units as the decimal number the gateway expects
func majorAmount(amount int64, currency string) json.Number {
	return json.Number(entity.MinorToDecimal(amount, currency).String())
}

// outcome normalizes a gateway status
func (t transfer) outcome(currency string, at time.Time) entity.Outcome {
	o := entity.Outcome{OccurredAt: at, Metadata: map[string]any{}}
	if t.ID != 0 {
		o.Metadata["gateway_id"] = t.ID
	}
	switch strings.ToLower(t.Status) {
	case "successful", "success":
		o.Kind = entity.OutcomeSuccess
	case "failed", "cancelled", "error":
		o.Kind = entity.OutcomeFailure
	default:
		o.Kind = entity.OutcomeInconclusive
	}
	o.ResultCode = strings.ToLower(t.Status)
	o.ResultDescription = t.ProcessorResponse
	if o.ResultDescription == "" {
		o.ResultDescription = t.CompleteMessage
	}
	o.ConfirmedID = t.FlwRef
	if o.ConfirmedID == "" && t.ID != 0 {
		o.ConfirmedID = fmt.Sprint(t.ID)
	}

	if t.Currency != "" {
		currency = t.Currency
	}
	if t.Amount != "" {
		if minor, err := entity.ParseAmount(t.Amount.String(), currency); err == nil {
			o.ConfirmedAmount = &minor
			o.ConfirmedCurrency = strings.ToUpper(currency)
		} else if o.Kind == entity.OutcomeSuccess {
			// An unreadable amount on a success can't be checked
			o.Kind = entity.OutcomeInconclusive
			o.ResultDescription = err.Error()
		}
	}
	return o
}
