package transaction

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/usecase"
)

const maxClientReferenceLength = 128

// TransactionValidator provides validation for initiation requests
type TransactionValidator struct {
	registry        *gateway.Registry
	defaultCurrency string
}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator(registry *gateway.Registry, defaultCurrency string) *TransactionValidator {
	return &TransactionValidator{
		registry:        registry,
		defaultCurrency: strings.ToUpper(defaultCurrency),
	}
}

// ValidateInitiate checks every request field and resolves the adapter that will carry it.
// The returned request has its currency and transaction type filled in.
func (v *TransactionValidator) ValidateInitiate(req usecase.InitiateRequest) (usecase.InitiateRequest, gateway.Adapter, error) {
	req.OwnerID = strings.TrimSpace(req.OwnerID)
	if req.OwnerID == "" {
		return req, nil, errs.ErrInvalidOwnerID
	}

	if err := entity.ValidateAmount(req.Amount); err != nil {
		return req, nil, err
	}

	if !entity.IsValidDirection(req.Direction) {
		return req, nil, fmt.Errorf("%w: %q", errs.ErrInvalidDirection, req.Direction)
	}

	if !entity.IsValidPurpose(req.Purpose) {
		return req, nil, fmt.Errorf("%w: %q", errs.ErrInvalidPurpose, req.Purpose)
	}

	if err := v.validateCurrency(&req); err != nil {
		return req, nil, err
	}

	if err := v.validateRelatedItem(req.RelatedItem); err != nil {
		return req, nil, err
	}

	if len(req.ClientReference) > maxClientReferenceLength {
		return req, nil, fmt.Errorf("%w: client reference longer than %d characters",
			errs.ErrInvalidRequest, maxClientReferenceLength)
	}

	adapter, err := v.resolveAdapter(&req)
	if err != nil {
		return req, nil, err
	}

	return req, adapter, nil
}

func (v *TransactionValidator) validateCurrency(req *usecase.InitiateRequest) error {
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = v.defaultCurrency
	}
	if len(currency) != 3 {
		return fmt.Errorf("%w: currency %q is not a 3-letter code", errs.ErrInvalidRequest, req.Currency)
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("%w: currency %q is not a 3-letter code", errs.ErrInvalidRequest, req.Currency)
		}
	}
	req.Currency = currency
	return nil
}

func (v *TransactionValidator) validateRelatedItem(item *entity.RelatedItem) error {
	if item == nil {
		return nil
	}
	if strings.TrimSpace(item.ID) == "" {
		return fmt.Errorf("%w: related item ID is required", errs.ErrInvalidRequest)
	}
	if !entity.IsValidRelatedItemType(string(item.Type)) {
		return fmt.Errorf("%w: related item type %q", errs.ErrInvalidRequest, item.Type)
	}
	return nil
}

// resolveAdapter checks the gateway operation exists and moves money the requested way
func (v *TransactionValidator) resolveAdapter(req *usecase.InitiateRequest) (gateway.Adapter, error) {
	if strings.TrimSpace(req.Gateway) == "" {
		return nil, fmt.Errorf("%w: gateway is required", errs.ErrUnsupportedGateway)
	}

	direction := entity.Direction(req.Direction)
	txnType := entity.GatewayTransactionType(req.TransactionType)
	if txnType == "" {
		txnType = entity.DefaultTransactionType(req.Gateway, direction)
	}
	if txnType.Direction() != direction {
		return nil, fmt.Errorf("%w: %s cannot carry a %s", errs.ErrUnsupportedGateway, txnType, direction)
	}

	adapter, err := v.registry.Adapter(req.Gateway, txnType)
	if err != nil {
		return nil, err
	}
	req.TransactionType = string(txnType)
	return adapter, nil
}
