package persistence

import (
	"context"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
)

// LedgerRepository stores immutable ledger entries
type LedgerRepository interface {
	// Insert stores a new entry
	//
	// Possible errors:
	// - ErrDuplicateLedgerEntry: If an entry already exists for the transaction
	// - ErrDatabaseConnection: If database connection fails
	Insert(ctx context.Context, entry *entity.LedgerEntry) error

	// GetByTransactionID returns the entry of a transaction
	//
	// Possible errors:
	// - ErrLedgerEntryNotFound: If the transaction has no entry
	GetByTransactionID(ctx context.Context, transactionID string) (*entity.LedgerEntry, error)

	// ListByOwner returns an owner's entries, newest first
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.LedgerEntry, error)

	// BalanceByOwner sums an owner's successful entries in one currency
	BalanceByOwner(ctx context.Context, ownerID, currency string) (int64, error)
}
