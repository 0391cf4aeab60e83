package mobilemoney

import (
	"encoding/json"
	"fmt"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/gateway/transport"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw callback body
const SignatureHeader = "X-Signature"

// CallbackHandler verifies and decodes STK push and payment result callbacks
type CallbackHandler struct {
	cfg          Config
	timeProvider coreport.TimeProvider
}

// NewCallbackHandler creates the callback handler
func NewCallbackHandler(cfg Config, timeProvider coreport.TimeProvider) *CallbackHandler {
	return &CallbackHandler{cfg: cfg, timeProvider: timeProvider}
}

// Gateway returns the gateway name
func (h *CallbackHandler) Gateway() string {
	return gateway.MobileMoney
}

// Verify checks the X-Signature HMAC
func (h *CallbackHandler) Verify(payload []byte, signature string) error {
	return transport.VerifyHMAC([]byte(h.cfg.CallbackSecret), payload, signature)
}

type metadataItem struct {
	Name  string          `json:"Name"`
	Value json.RawMessage `json:"Value"`
}

type stkCallback struct {
	MerchantRequestID string     `json:"MerchantRequestID"`
	CheckoutRequestID string     `json:"CheckoutRequestID"`
	ResultCode        resultCode `json:"ResultCode"`
	ResultDesc        string     `json:"ResultDesc"`
	CallbackMetadata  *struct {
		Item []metadataItem `json:"Item"`
	} `json:"CallbackMetadata"`
}

type resultParameter struct {
	Key   string          `json:"Key"`
	Value json.RawMessage `json:"Value"`
}

type paymentResult struct {
	ResultType               int        `json:"ResultType"`
	ResultCode               resultCode `json:"ResultCode"`
	ResultDesc               string     `json:"ResultDesc"`
	OriginatorConversationID string     `json:"OriginatorConversationID"`
	ConversationID           string     `json:"ConversationID"`
	TransactionID            string     `json:"TransactionID"`
	ResultParameters         *struct {
		ResultParameter []resultParameter `json:"ResultParameter"`
	} `json:"ResultParameters"`
}

type callbackEnvelope struct {
	Body *struct {
		STKCallback *stkCallback `json:"stkCallback"`
	} `json:"Body"`
	Result *paymentResult `json:"Result"`
}

// Parse decodes either callback shape
func (h *CallbackHandler) Parse(payload []byte) (*gateway.Notification, error) {
	var env callbackEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCallback, err.Error())
	}

	switch {
	case env.Body != nil && env.Body.STKCallback != nil:
		return h.parseSTK(env.Body.STKCallback)
	case env.Result != nil:
		return h.parsePayment(env.Result)
	default:
		return nil, fmt.Errorf("%w: neither Body.stkCallback nor Result present", errs.ErrInvalidCallback)
	}
}

func (h *CallbackHandler) parseSTK(cb *stkCallback) (*gateway.Notification, error) {
	if cb.CheckoutRequestID == "" {
		return nil, fmt.Errorf("%w: missing CheckoutRequestID", errs.ErrInvalidCallback)
	}
	if cb.ResultCode == "" {
		return nil, fmt.Errorf("%w: missing ResultCode", errs.ErrInvalidCallback)
	}

	now := h.timeProvider.Now()
	outcome := entity.Outcome{
		Kind:              outcomeKind(string(cb.ResultCode)),
		ResultCode:        string(cb.ResultCode),
		ResultDescription: cb.ResultDesc,
		OccurredAt:        now,
		Metadata:          map[string]any{"merchant_request_id": cb.MerchantRequestID},
	}

	if cb.CallbackMetadata != nil {
		for _, item := range cb.CallbackMetadata.Item {
			switch item.Name {
			case "Amount":
				amount, err := parseAmount(item.Value, h.cfg.currency())
				if err != nil {
					return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCallback, err.Error())
				}
				outcome.ConfirmedAmount = amount
				outcome.ConfirmedCurrency = h.cfg.currency()
			case "MpesaReceiptNumber":
				outcome.ConfirmedID = rawValue(item.Value)
			case "PhoneNumber":
				outcome.Metadata["phone_number"] = rawValue(item.Value)
			case "TransactionDate":
				outcome.Metadata["transaction_date"] = rawValue(item.Value)
			}
		}
	}

	return &gateway.Notification{
		CorrelationID: cb.CheckoutRequestID,
		Outcome:       outcome,
		ReceivedAt:    now,
	}, nil
}

func (h *CallbackHandler) parsePayment(result *paymentResult) (*gateway.Notification, error) {
	correlationID := result.OriginatorConversationID
	if correlationID == "" {
		correlationID = result.ConversationID
	}
	if correlationID == "" {
		return nil, fmt.Errorf("%w: missing conversation IDs", errs.ErrInvalidCallback)
	}
	if result.ResultCode == "" {
		return nil, fmt.Errorf("%w: missing ResultCode", errs.ErrInvalidCallback)
	}

	now := h.timeProvider.Now()
	outcome := entity.Outcome{
		Kind:              outcomeKind(string(result.ResultCode)),
		ResultCode:        string(result.ResultCode),
		ResultDescription: result.ResultDesc,
		ConfirmedID:       result.TransactionID,
		OccurredAt:        now,
		Metadata:          map[string]any{"conversation_id": result.ConversationID},
	}

	if result.ResultParameters != nil {
		for _, param := range result.ResultParameters.ResultParameter {
			switch param.Key {
			case "TransactionAmount":
				amount, err := parseAmount(param.Value, h.cfg.currency())
				if err != nil {
					return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCallback, err.Error())
				}
				outcome.ConfirmedAmount = amount
				outcome.ConfirmedCurrency = h.cfg.currency()
			case "TransactionReceipt":
				outcome.ConfirmedID = rawValue(param.Value)
			case "ReceiverPartyPublicName":
				outcome.Metadata["receiver"] = rawValue(param.Value)
			}
		}
	}

	return &gateway.Notification{
		CorrelationID: correlationID,
		Outcome:       outcome,
		ReceivedAt:    now,
	}, nil
}

// compile-time interface checks
var (
	_ gateway.Adapter         = (*CollectionAdapter)(nil)
	_ gateway.Adapter         = (*DisbursementAdapter)(nil)
	_ gateway.CallbackHandler = (*CallbackHandler)(nil)
)
