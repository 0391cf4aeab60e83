package card

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/gateway/transport"
)

// SignatureHeader carries the configured secret hash on every webhook
const SignatureHeader = "verif-hash"

// Webhook events
const (
	eventChargeCompleted   = "charge.completed"
	eventTransferCompleted = "transfer.completed"
)

// WebhookHandler verifies and decodes card gateway webhooks
type WebhookHandler struct {
	cfg          Config
	timeProvider coreport.TimeProvider
}

// NewWebhookHandler creates the webhook handler
func NewWebhookHandler(cfg Config, timeProvider coreport.TimeProvider) *WebhookHandler {
	return &WebhookHandler{cfg: cfg, timeProvider: timeProvider}
}

// Gateway returns the gateway name
func (h *WebhookHandler) Gateway() string {
	return gateway.Card
}

// Verify compares the verif-hash header with the configured secret hash
func (h *WebhookHandler) Verify(_ []byte, signature string) error {
	return transport.VerifySharedSecret(h.cfg.SecretHash, signature)
}

type webhook struct {
	Event     string    `json:"event"`
	EventType string    `json:"event.type"`
	Data      *transfer `json:"data"`
}

// Parse decodes a completed charge or transfer event
func (h *WebhookHandler) Parse(payload []byte) (*gateway.Notification, error) {
	var hook webhook
	if err := json.Unmarshal(payload, &hook); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCallback, err.Error())
	}
	if hook.Data == nil {
		return nil, fmt.Errorf("%w: missing data", errs.ErrInvalidCallback)
	}

	var correlationID string
	switch hook.Event {
	case eventChargeCompleted:
		correlationID = hook.Data.TxRef
	case eventTransferCompleted:
		correlationID = hook.Data.Reference
	default:
		return nil, fmt.Errorf("%w: unsupported event %q", errs.ErrInvalidCallback, hook.Event)
	}
	if correlationID == "" {
		return nil, fmt.Errorf("%w: %s without a reference", errs.ErrInvalidCallback, hook.Event)
	}
	if strings.TrimSpace(hook.Data.Status) == "" {
		return nil, fmt.Errorf("%w: %s without a status", errs.ErrInvalidCallback, hook.Event)
	}

	now := h.timeProvider.Now()
	outcome := hook.Data.outcome(h.cfg.Currency, now)
	outcome.Metadata["event"] = hook.Event
	if hook.EventType != "" {
		outcome.Metadata["event_type"] = hook.EventType
	}

	return &gateway.Notification{
		CorrelationID: correlationID,
		Outcome:       outcome,
		ReceivedAt:    now,
	}, nil
}

// compile-time interface checks
var (
	_ gateway.Adapter         = (*ChargeAdapter)(nil)
	_ gateway.Adapter         = (*PayoutAdapter)(nil)
	_ gateway.CallbackHandler = (*WebhookHandler)(nil)
)
