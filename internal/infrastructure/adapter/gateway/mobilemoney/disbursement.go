package mobilemoney

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
)

// DisbursementAdapter pays a subscriber from the business short code
type DisbursementAdapter struct {
	api *API
}

// NewDisbursementAdapter creates the business-to-customer adapter
func NewDisbursementAdapter(api *API) *DisbursementAdapter {
	return &DisbursementAdapter{api: api}
}

// Gateway returns the gateway name
func (a *DisbursementAdapter) Gateway() string {
	return gateway.MobileMoney
}

// TransactionType returns the operation the adapter performs
func (a *DisbursementAdapter) TransactionType() entity.GatewayTransactionType {
	return entity.TypeDisbursementPush
}

type paymentRequest struct {
	OriginatorConversationID string `json:"OriginatorConversationID"`
	InitiatorName            string `json:"InitiatorName"`
	SecurityCredential       string `json:"SecurityCredential"`
	CommandID                string `json:"CommandID"`
	Amount                   int64  `json:"Amount"`
	PartyA                   string `json:"PartyA"`
	PartyB                   string `json:"PartyB"`
	Remarks                  string `json:"Remarks"`
	QueueTimeOutURL          string `json:"QueueTimeOutURL"`
	ResultURL                string `json:"ResultURL"`
	Occasion                 string `json:"Occasion"`
}

type paymentResponse struct {
	ConversationID           string `json:"ConversationID"`
	OriginatorConversationID string `json:"OriginatorConversationID"`
	ResponseCode             string `json:"ResponseCode"`
	ResponseDescription      string `json:"ResponseDescription"`
}

// Initiate submits the payment. We mint the originator conversation ID so it is known even if
// the response is lost, and it is the status-query key.
func (a *DisbursementAdapter) Initiate(ctx context.Context, req gateway.Request) (*gateway.Ack, error) {
	msisdn := strings.TrimSpace(req.Params["msisdn"])
	if msisdn == "" {
		return nil, fmt.Errorf("%w: msisdn is required", errs.ErrInvalidRequest)
	}
	amount, err := wholeUnits(req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}

	commandID := "BusinessPayment"
	if req.Purpose == entity.PurposeSalary {
		commandID = "SalaryPayment"
	}

	resp, err := a.api.submit(ctx, "b2c_payment", "/mpesa/b2c/v3/paymentrequest", paymentRequest{
		OriginatorConversationID: uuid.NewString(),
		InitiatorName:            a.api.cfg.InitiatorName,
		SecurityCredential:       a.api.cfg.SecurityCredential,
		CommandID:                commandID,
		Amount:                   amount,
		PartyA:                   a.api.cfg.ShortCode,
		PartyB:                   msisdn,
		Remarks:                  string(req.Purpose),
		QueueTimeOutURL:          a.api.cfg.QueueTimeoutURL,
		ResultURL:                a.api.cfg.ResultURL,
		Occasion:                 req.TransactionID,
	})
	if err != nil {
		return nil, err
	}

	var body paymentResponse
	if err := resp.Decode(&body); err != nil {
		return nil, err
	}
	if body.ResponseCode != resultSuccess {
		return nil, rejection(body.ResponseCode, body.ResponseDescription)
	}

	var ids entity.CorrelationIDs
	if body.OriginatorConversationID != "" {
		ids = append(ids, entity.CorrelationID{Kind: entity.CorrelationOriginatorConvID, Value: body.OriginatorConversationID})
	}
	if body.ConversationID != "" {
		ids = append(ids, entity.CorrelationID{Kind: entity.CorrelationConversationID, Value: body.ConversationID})
	}

	return &gateway.Ack{
		CorrelationIDs:      ids,
		ResponseCode:        body.ResponseCode,
		ResponseDescription: body.ResponseDescription,
		Metadata:            map[string]any{"command_id": commandID},
	}, nil
}

type statusRequest struct {
	Initiator                string `json:"Initiator"`
	SecurityCredential       string `json:"SecurityCredential"`
	CommandID                string `json:"CommandID"`
	OriginatorConversationID string `json:"OriginatorConversationID"`
	PartyA                   string `json:"PartyA"`
	IdentifierType           string `json:"IdentifierType"`
	ResultURL                string `json:"ResultURL"`
	QueueTimeOutURL          string `json:"QueueTimeOutURL"`
}

type statusResponse struct {
	ResultCode        resultCode      `json:"ResultCode"`
	ResultDesc        string          `json:"ResultDesc"`
	TransactionID     string          `json:"TransactionID"`
	TransactionAmount json.RawMessage `json:"TransactionAmount"`
	ErrorCode         string          `json:"errorCode"`
	ErrorMessage      string          `json:"errorMessage"`
}

// QueryStatus asks for the result of a payment by its originator conversation ID
func (a *DisbursementAdapter) QueryStatus(ctx context.Context, id entity.CorrelationID) (*entity.Outcome, error) {
	if id.Kind != entity.CorrelationOriginatorConvID {
		return nil, fmt.Errorf("%w: payment status needs an %s, got %s", errs.ErrInvalidRequest, entity.CorrelationOriginatorConvID, id.Kind)
	}

	resp, err := a.api.query(ctx, "b2c_status", "/mpesa/transactionstatus/v1/query", statusRequest{
		Initiator:                a.api.cfg.InitiatorName,
		SecurityCredential:       a.api.cfg.SecurityCredential,
		CommandID:                "TransactionStatusQuery",
		OriginatorConversationID: id.Value,
		PartyA:                   a.api.cfg.ShortCode,
		IdentifierType:           "4",
		ResultURL:                a.api.cfg.ResultURL,
		QueueTimeOutURL:          a.api.cfg.QueueTimeoutURL,
	}, isProcessing)
	if err != nil {
		return nil, err
	}

	var body statusResponse
	if err := resp.Decode(&body); err != nil {
		return nil, err
	}

	now := a.api.timeProvider.Now()
	if body.ErrorCode == errorProcessing {
		return &entity.Outcome{
			Kind:              entity.OutcomeInconclusive,
			ResultCode:        body.ErrorCode,
			ResultDescription: body.ErrorMessage,
			OccurredAt:        now,
		}, nil
	}

	// An unreadable amount leaves the outcome unconfirmed rather than guessing
	amount, err := parseAmount(body.TransactionAmount, a.api.cfg.currency())
	if err != nil {
		return &entity.Outcome{
			Kind:              entity.OutcomeInconclusive,
			ResultCode:        string(body.ResultCode),
			ResultDescription: err.Error(),
			OccurredAt:        now,
		}, nil
	}

	return &entity.Outcome{
		Kind:              outcomeKind(string(body.ResultCode)),
		ResultCode:        string(body.ResultCode),
		ResultDescription: body.ResultDesc,
		ConfirmedID:       body.TransactionID,
		ConfirmedAmount:   amount,
		ConfirmedCurrency: a.api.cfg.currency(),
		OccurredAt:        now,
	}, nil
}
