package card

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
)

// PayoutAdapter sends money to a bank account
type PayoutAdapter struct {
	api *API
}

// NewPayoutAdapter creates the payout adapter
func NewPayoutAdapter(api *API) *PayoutAdapter {
	return &PayoutAdapter{api: api}
}

// Gateway returns the gateway name
func (a *PayoutAdapter) Gateway() string {
	return gateway.Card
}

// TransactionType returns the operation the adapter performs
func (a *PayoutAdapter) TransactionType() entity.GatewayTransactionType {
	return entity.TypePayout
}

type transferRequest struct {
	AccountBank   string `json:"account_bank"`
	AccountNumber string `json:"account_number"`
	Amount        any    `json:"amount"`
	Currency      string `json:"currency"`
	Narration     string `json:"narration"`
	Reference     string `json:"reference"`
	CallbackURL   string `json:"callback_url,omitempty"`
	DebitCurrency string `json:"debit_currency"`
}

// Initiate queues the transfer. The gateway transfer ID is the status-query key.
func (a *PayoutAdapter) Initiate(ctx context.Context, req gateway.Request) (*gateway.Ack, error) {
	bank := strings.TrimSpace(req.Params["account_bank"])
	account := strings.TrimSpace(req.Params["account_number"])
	if bank == "" || account == "" {
		return nil, fmt.Errorf("%w: account_bank and account_number are required", errs.ErrInvalidRequest)
	}

	var data transfer
	err := a.api.call(ctx, "payout", http.MethodPost, "/v3/transfers", transferRequest{
		AccountBank:   bank,
		AccountNumber: account,
		Amount:        majorAmount(req.Amount, req.Currency),
		Currency:      req.Currency,
		Narration:     string(req.Purpose),
		Reference:     req.TransactionID,
		CallbackURL:   a.api.cfg.CallbackURL,
		DebitCurrency: req.Currency,
	}, &data)
	if err != nil {
		return nil, err
	}
	if data.ID == 0 {
		return nil, fmt.Errorf("%w: transfer accepted without an id", errs.ErrGatewayRejected)
	}

	return &gateway.Ack{
		CorrelationIDs: entity.CorrelationIDs{
			{Kind: entity.CorrelationGatewayReference, Value: strconv.FormatInt(data.ID, 10)},
			{Kind: entity.CorrelationTxRef, Value: req.TransactionID},
		},
		ResponseCode:        data.Status,
		ResponseDescription: data.CompleteMessage,
	}, nil
}

// QueryStatus fetches a transfer by its gateway ID
func (a *PayoutAdapter) QueryStatus(ctx context.Context, id entity.CorrelationID) (*entity.Outcome, error) {
	if id.Kind != entity.CorrelationGatewayReference {
		return nil, fmt.Errorf("%w: transfer lookup needs a %s, got %s", errs.ErrInvalidRequest, entity.CorrelationGatewayReference, id.Kind)
	}
	if _, err := strconv.ParseInt(id.Value, 10, 64); err != nil {
		return nil, fmt.Errorf("%w: transfer id %q is not numeric", errs.ErrInvalidRequest, id.Value)
	}

	var data transfer
	if err := a.api.call(ctx, "payout_status", http.MethodGet, "/v3/transfers/"+id.Value, nil, &data); err != nil {
		return nil, err
	}

	// Transfers report NEW and PENDING while queued
	outcome := data.outcome(a.api.cfg.Currency, a.api.timeProvider.Now())
	return &outcome, nil
}
