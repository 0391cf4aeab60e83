package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/usecase"
)

// IdempotencyHandler resolves repeated initiation requests carrying the same client reference
type IdempotencyHandler struct {
	transactionRepo persistence.TransactionRepository
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(transactionRepo persistence.TransactionRepository) *IdempotencyHandler {
	return &IdempotencyHandler{
		transactionRepo: transactionRepo,
	}
}

// CheckClientReference looks up an earlier transaction of the owner with the same reference.
// Returns the transaction, a boolean indicating if it was found, and any error.
func (h *IdempotencyHandler) CheckClientReference(
	ctx context.Context,
	ownerID string,
	reference string,
) (*entity.Transaction, bool, error) {
	if reference == "" {
		return nil, false, nil
	}

	txn, err := h.transactionRepo.GetByClientReference(ctx, ownerID, reference)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to check client reference: %w", err)
	}

	return txn, true, nil
}

// SameRequest reports whether a replayed request matches the stored transaction.
// A reference reused for a different payment is a caller error.
func SameRequest(txn *entity.Transaction, req usecase.InitiateRequest) bool {
	if string(txn.Direction) != req.Direction || txn.Amount != req.Amount ||
		!strings.EqualFold(txn.Currency, req.Currency) || string(txn.Purpose) != req.Purpose ||
		!strings.EqualFold(txn.Gateway, req.Gateway) {
		return false
	}
	if req.TransactionType != "" && string(txn.Type) != req.TransactionType {
		return false
	}
	return sameRelatedItem(txn.RelatedItem, req.RelatedItem)
}

func sameRelatedItem(a, b *entity.RelatedItem) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID && a.Type == b.Type
}
