package card

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
)

// ChargeAdapter charges a previously tokenized card
type ChargeAdapter struct {
	api *API
}

// NewChargeAdapter creates the card charge adapter
func NewChargeAdapter(api *API) *ChargeAdapter {
	return &ChargeAdapter{api: api}
}

// Gateway returns the gateway name
func (a *ChargeAdapter) Gateway() string {
	return gateway.Card
}

// TransactionType returns the operation the adapter performs
func (a *ChargeAdapter) TransactionType() entity.GatewayTransactionType {
	return entity.TypeCardCharge
}

type chargeRequest struct {
	Token     string         `json:"token"`
	Email     string         `json:"email"`
	Currency  string         `json:"currency"`
	Amount    any            `json:"amount"`
	TxRef     string         `json:"tx_ref"`
	Narration string         `json:"narration"`
	Meta      map[string]any `json:"meta,omitempty"`
}

// Initiate charges the card token. Our transaction ID is the tx_ref and the status-query key.
func (a *ChargeAdapter) Initiate(ctx context.Context, req gateway.Request) (*gateway.Ack, error) {
	token := strings.TrimSpace(req.Params["card_token"])
	if token == "" {
		return nil, fmt.Errorf("%w: card_token is required", errs.ErrInvalidRequest)
	}

	var data transfer
	err := a.api.call(ctx, "card_charge", http.MethodPost, "/v3/tokenized-charges", chargeRequest{
		Token:     token,
		Email:     req.Params["email"],
		Currency:  req.Currency,
		Amount:    majorAmount(req.Amount, req.Currency),
		TxRef:     req.TransactionID,
		Narration: string(req.Purpose),
		Meta:      map[string]any{"owner_id": req.OwnerID},
	}, &data)
	if err != nil {
		return nil, err
	}

	ids := entity.CorrelationIDs{{Kind: entity.CorrelationTxRef, Value: req.TransactionID}}
	if data.FlwRef != "" {
		ids = append(ids, entity.CorrelationID{Kind: entity.CorrelationGatewayReference, Value: data.FlwRef})
	}

	return &gateway.Ack{
		CorrelationIDs:      ids,
		ResponseCode:        data.Status,
		ResponseDescription: data.ProcessorResponse,
		Metadata:            map[string]any{"gateway_id": data.ID},
	}, nil
}

// QueryStatus verifies a charge by its tx_ref
func (a *ChargeAdapter) QueryStatus(ctx context.Context, id entity.CorrelationID) (*entity.Outcome, error) {
	if id.Kind != entity.CorrelationTxRef {
		return nil, fmt.Errorf("%w: charge verification needs a %s, got %s", errs.ErrInvalidRequest, entity.CorrelationTxRef, id.Kind)
	}

	var data transfer
	path := "/v3/transactions/verify_by_reference?tx_ref=" + url.QueryEscape(id.Value)
	if err := a.api.call(ctx, "card_verify", http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}

	outcome := data.outcome(a.api.cfg.Currency, a.api.timeProvider.Now())
	return &outcome, nil
}
