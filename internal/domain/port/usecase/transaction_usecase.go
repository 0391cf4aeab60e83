package usecase

import (
	"context"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
)

// InitiateRequest represents a caller's request to move money
type InitiateRequest struct {
	OwnerID         string
	ClientReference string // Optional idempotency key, unique per owner
	Direction       string
	Amount          int64 // Minor units
	Currency        string
	Purpose         string
	RelatedItem     *entity.RelatedItem
	Gateway         string
	TransactionType string // Optional; derived from gateway and direction when empty
	GatewayParams   map[string]string
}

// InitiateResult is returned once the initiation leg has settled
type InitiateResult struct {
	TransactionID  string
	CorrelationIDs entity.CorrelationIDs
	Status         entity.TransactionStatus
	Transaction    *entity.Transaction
}

// CallbackAck is returned to the gateway after a callback was handled
type CallbackAck struct {
	TransactionID string
	Status        entity.TransactionStatus
	Applied       bool // False when the callback was a duplicate or lost a race
}

// TransactionUseCase defines the caller-facing transaction operations
type TransactionUseCase interface {
	// Initiate validates, persists and submits a transaction to its gateway
	Initiate(ctx context.Context, req InitiateRequest) (*InitiateResult, error)

	// GetStatus returns the transaction, reconciling it first when it has gone stale
	GetStatus(ctx context.Context, transactionID string) (*entity.Transaction, error)

	// Reconcile queries the gateway for an in-flight transaction and applies the answer
	Reconcile(ctx context.Context, transactionID string) (*entity.Transaction, error)

	// Cancel cancels a transaction that has not reached the gateway
	Cancel(ctx context.Context, transactionID string) (*entity.Transaction, error)

	// HandleCallback authenticates and applies an asynchronous gateway notification
	HandleCallback(ctx context.Context, gateway string, payload []byte, signature string) (*CallbackAck, error)

	// ListByOwner returns an owner's transactions, newest first
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Transaction, error)
}
