package usecase

import (
	"context"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
)

// LedgerUseCase exposes the ledger to downstream consumers
type LedgerUseCase interface {
	// GetByTransaction returns the entry written for a completed transaction
	GetByTransaction(ctx context.Context, transactionID string) (*entity.LedgerEntry, error)

	// ListByOwner returns an owner's entries, newest first
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.LedgerEntry, error)

	// Balance sums an owner's entries in one currency
	Balance(ctx context.Context, ownerID, currency string) (int64, error)
}
