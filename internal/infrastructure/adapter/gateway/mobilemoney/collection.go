package mobilemoney

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
)

// CollectionAdapter pulls money from a subscriber with an STK push prompt
type CollectionAdapter struct {
	api *API
}

// NewCollectionAdapter creates the STK push adapter
func NewCollectionAdapter(api *API) *CollectionAdapter {
	return &CollectionAdapter{api: api}
}

// Gateway returns the gateway name
func (a *CollectionAdapter) Gateway() string {
	return gateway.MobileMoney
}

// TransactionType returns the operation the adapter performs
func (a *CollectionAdapter) TransactionType() entity.GatewayTransactionType {
	return entity.TypeCollectionPush
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

// Initiate sends the STK push. The checkout request ID is the status-query key.
func (a *CollectionAdapter) Initiate(ctx context.Context, req gateway.Request) (*gateway.Ack, error) {
	msisdn := strings.TrimSpace(req.Params["msisdn"])
	if msisdn == "" {
		return nil, fmt.Errorf("%w: msisdn is required", errs.ErrInvalidRequest)
	}
	amount, err := wholeUnits(req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}

	timestamp := a.api.timeProvider.Now().Format(timestampLayout)
	accountRef := req.Params["account_reference"]
	if accountRef == "" {
		accountRef = req.TransactionID
	}

	resp, err := a.api.submit(ctx, "stk_push", "/mpesa/stkpush/v1/processrequest", stkPushRequest{
		BusinessShortCode: a.api.cfg.ShortCode,
		Password:          a.api.password(timestamp),
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            amount,
		PartyA:            msisdn,
		PartyB:            a.api.cfg.ShortCode,
		PhoneNumber:       msisdn,
		CallBackURL:       a.api.cfg.CallbackURL,
		AccountReference:  truncate(accountRef, 12),
		TransactionDesc:   truncate(string(req.Purpose), 13),
	})
	if err != nil {
		return nil, err
	}

	var body stkPushResponse
	if err := resp.Decode(&body); err != nil {
		return nil, err
	}
	if body.ResponseCode != resultSuccess {
		return nil, rejection(body.ResponseCode, body.ResponseDescription)
	}

	var ids entity.CorrelationIDs
	if body.CheckoutRequestID != "" {
		ids = append(ids, entity.CorrelationID{Kind: entity.CorrelationCheckoutRequestID, Value: body.CheckoutRequestID})
	}
	if body.MerchantRequestID != "" {
		ids = append(ids, entity.CorrelationID{Kind: entity.CorrelationMerchantRequestID, Value: body.MerchantRequestID})
	}

	return &gateway.Ack{
		CorrelationIDs:      ids,
		ResponseCode:        body.ResponseCode,
		ResponseDescription: body.ResponseDescription,
		Metadata:            map[string]any{"customer_message": body.CustomerMessage},
	}, nil
}

type stkQueryRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
}

type stkQueryResponse struct {
	ResponseCode string     `json:"ResponseCode"`
	ResultCode   resultCode `json:"ResultCode"`
	ResultDesc   string     `json:"ResultDesc"`
	ErrorCode    string     `json:"errorCode"`
	ErrorMessage string     `json:"errorMessage"`
}

// QueryStatus asks for the result of an STK push
func (a *CollectionAdapter) QueryStatus(ctx context.Context, id entity.CorrelationID) (*entity.Outcome, error) {
	if id.Kind != entity.CorrelationCheckoutRequestID {
		return nil, fmt.Errorf("%w: STK status needs a %s, got %s", errs.ErrInvalidRequest, entity.CorrelationCheckoutRequestID, id.Kind)
	}

	timestamp := a.api.timeProvider.Now().Format(timestampLayout)
	resp, err := a.api.query(ctx, "stk_query", "/mpesa/stkpushquery/v1/query", stkQueryRequest{
		BusinessShortCode: a.api.cfg.ShortCode,
		Password:          a.api.password(timestamp),
		Timestamp:         timestamp,
		CheckoutRequestID: id.Value,
	}, isProcessing)
	if err != nil {
		return nil, err
	}

	var body stkQueryResponse
	if err := resp.Decode(&body); err != nil {
		return nil, err
	}

	outcome := &entity.Outcome{
		ResultCode:        string(body.ResultCode),
		ResultDescription: body.ResultDesc,
		OccurredAt:        a.api.timeProvider.Now(),
	}
	if body.ErrorCode == errorProcessing {
		outcome.Kind = entity.OutcomeInconclusive
		outcome.ResultCode = body.ErrorCode
		outcome.ResultDescription = body.ErrorMessage
		return outcome, nil
	}
	outcome.Kind = outcomeKind(string(body.ResultCode))
	return outcome, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
