package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
)

// StatusUpdate holds the fields written together with a status change
type StatusUpdate struct {
	Status            entity.TransactionStatus
	ResultCode        string
	ResultDescription string
	UpdatedAt         time.Time
	CompletedAt       *time.Time
	Metadata          map[string]any // Merged into the stored metadata
}

// TransactionRepository defines essential methods to interact with transaction data
type TransactionRepository interface {
	// Create saves a new transaction
	//
	// Possible errors:
	// - ErrDuplicateClientReference: If the owner already used the client reference
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction and its correlation IDs
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// GetByClientReference retrieves a transaction by the caller's idempotency key
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction carries the reference
	GetByClientReference(ctx context.Context, ownerID, reference string) (*entity.Transaction, error)

	// GetByCorrelationID resolves a gateway-issued identifier to its transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction carries the identifier
	// - ErrDatabaseConnection: If database connection fails
	GetByCorrelationID(ctx context.Context, gateway, value string) (*entity.Transaction, error)

	// AttachCorrelationIDs records the gateway identifiers of a transaction.
	// Identifiers are never updated or removed afterwards.
	//
	// Possible errors:
	// - ErrDuplicateCorrelationID: If an identifier is already bound for this gateway
	// - ErrDatabaseConnection: If database connection fails
	AttachCorrelationIDs(ctx context.Context, transactionID, gateway string, ids entity.CorrelationIDs) error

	// TransitionStatus applies update only if the stored status is one of from.
	// Returns false when no row matched, meaning another writer got there first.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	TransitionStatus(ctx context.Context, id string, from []entity.TransactionStatus, update StatusUpdate) (bool, error)

	// ListAwaitingOutcome returns processing and timeout transactions last updated before cutoff, oldest first
	ListAwaitingOutcome(ctx context.Context, cutoff time.Time, limit int) ([]*entity.Transaction, error)

	// ListCompletedWithoutLedger returns completed transactions that have no ledger entry
	ListCompletedWithoutLedger(ctx context.Context, limit int) ([]*entity.Transaction, error)

	// ListByOwner returns an owner's transactions, newest first
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Transaction, error)
}
