package mobilemoney

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/gateway/transport"
)

// Gateway result codes
const (
	resultSuccess = "0"
	// Subscriber could not be reached before the request expired
	resultTimeout = "1037"
	// Status endpoint answer while the request is still in flight
	errorProcessing = "500.001.1001"
)

const timestampLayout = "20060102150405"

// API is the authenticated mobile money endpoint shared by the adapters
type API struct {
	cfg          Config
	client       *transport.Client
	tokens       *TokenSource
	timeProvider coreport.TimeProvider
}

// NewAPI creates the shared endpoint
func NewAPI(cfg Config, client *transport.Client, timeProvider coreport.TimeProvider) *API {
	return &API{
		cfg:          cfg,
		client:       client,
		tokens:       NewTokenSource(cfg, client, timeProvider),
		timeProvider: timeProvider,
	}
}

// submit sends a request that may move money. It is sent exactly once; a rejected token is
// dropped so the next request authenticates again.
func (a *API) submit(ctx context.Context, operation, path string, body any) (*transport.Response, error) {
	resp, err := a.send(ctx, operation, path, body, nil)
	if unauthorized(err) {
		a.tokens.Invalidate()
	}
	return resp, err
}

// query sends a read-only request, refreshing the token once if the gateway rejects it
func (a *API) query(ctx context.Context, operation, path string, body any, accept func(int, []byte) bool) (*transport.Response, error) {
	resp, err := a.send(ctx, operation, path, body, accept)
	if !unauthorized(err) {
		return resp, err
	}
	a.tokens.Invalidate()
	return a.send(ctx, operation, path, body, accept)
}

func (a *API) send(ctx context.Context, operation, path string, body any, accept func(int, []byte) bool) (*transport.Response, error) {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	return a.client.Do(ctx, transport.Call{
		Operation: operation,
		Method:    http.MethodPost,
		URL:       a.cfg.BaseURL + path,
		Header:    http.Header{"Authorization": []string{"Bearer " + token}},
		Body:      body,
		Accept:    accept,
	})
}

func unauthorized(err error) bool {
	var rejected *transport.RejectedError
	return errors.As(err, &rejected) && rejected.StatusCode == http.StatusUnauthorized
}

// password is the per-request STK credential
func (a *API) password(timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(a.cfg.ShortCode + a.cfg.PassKey + timestamp))
}

// wholeUnits converts minor units to the integer major-unit amount the gateway expects
func wholeUnits(amount int64, currency string) (int64, error) {
	value := entity.MinorToDecimal(amount, currency)
	if !value.IsInteger() {
		return 0, fmt.Errorf("%w: mobile money amounts must be whole units, got %s", errs.ErrInvalidAmount, value.String())
	}
	return value.IntPart(), nil
}

// outcomeKind maps a gateway result code
func outcomeKind(code string) entity.OutcomeKind {
	switch code {
	case resultSuccess:
		return entity.OutcomeSuccess
	case resultTimeout:
		return entity.OutcomeTimeout
	case "":
		return entity.OutcomeInconclusive
	default:
		return entity.OutcomeFailure
	}
}

// isProcessing matches the status endpoint's in-flight answer
func isProcessing(_ int, body []byte) bool {
	return bytes.Contains(body, []byte(errorProcessing))
}

// rawValue reads a metadata value that may be a JSON number or string
func rawValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

// parseAmount converts a reported major-unit amount to minor units
func parseAmount(raw json.RawMessage, currency string) (*int64, error) {
	text := rawValue(raw)
	if text == "" || text == "null" {
		return nil, nil
	}
	value, err := decimal.NewFromString(text)
	if err != nil {
		return nil, fmt.Errorf("amount %q: %w", text, err)
	}
	minor, err := entity.DecimalToMinor(value, currency)
	if err != nil {
		return nil, err
	}
	return &minor, nil
}

func rejection(code, description string) error {
	return fmt.Errorf("%w: response code %s: %s", errs.ErrGatewayRejected, code, description)
}

// resultCode accepts a code sent as a JSON string or number
type resultCode string

// UnmarshalJSON implements json.Unmarshaler
func (c *resultCode) UnmarshalJSON(data []byte) error {
	value := rawValue(data)
	if value == "null" {
		value = ""
	}
	*c = resultCode(value)
	return nil
}
