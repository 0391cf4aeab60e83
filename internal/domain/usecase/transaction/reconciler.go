package transaction

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/persistence"
)

// Reconciler asks gateways about transactions that have gone quiet
type Reconciler struct {
	registry        *gateway.Registry
	transactionRepo persistence.TransactionRepository
	applier         *OutcomeApplier
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	staleAfter      coreport.Duration
	queryTimeout    coreport.Duration
}

// NewReconciler creates a new Reconciler
func NewReconciler(
	registry *gateway.Registry,
	transactionRepo persistence.TransactionRepository,
	applier *OutcomeApplier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	staleAfter coreport.Duration,
	queryTimeout coreport.Duration,
) *Reconciler {
	return &Reconciler{
		registry:        registry,
		transactionRepo: transactionRepo,
		applier:         applier,
		timeProvider:    timeProvider,
		logger:          logger,
		staleAfter:      staleAfter,
		queryTimeout:    queryTimeout,
	}
}

// Reconcile queries the gateway for one transaction and applies the answer
func (r *Reconciler) Reconcile(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	txn, err := r.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return r.reconcile(ctx, txn, entity.SourcePoll)
}

// GetStatus returns the transaction, reconciling it inline once it has been quiet past the
// staleness threshold. Gateway trouble never fails the read.
func (r *Reconciler) GetStatus(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	txn, err := r.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if !txn.Status.AwaitsOutcome() || txn.Age(r.timeProvider) < r.staleAfter {
		return txn, nil
	}

	updated, err := r.reconcile(ctx, txn, entity.SourcePoll)
	if err != nil {
		r.logger.Debug("Inline reconciliation left transaction unchanged", map[string]any{
			"transaction_id": txn.ID,
			"status":         string(updated.Status),
			"error":          err.Error(),
		})
	}
	return updated, nil
}

// reconcile returns the latest known state of txn, even when it also returns an error
func (r *Reconciler) reconcile(ctx context.Context, txn *entity.Transaction, source entity.OutcomeSource) (*entity.Transaction, error) {
	if !txn.Status.AwaitsOutcome() {
		return txn, nil
	}

	primary, ok := txn.CorrelationIDs.Primary()
	if !ok {
		return txn, errs.NewAmbiguousOutcomeError(txn.ID, string(source), "", "transaction has no correlation ID to query")
	}

	adapter, err := r.registry.Adapter(txn.Gateway, txn.Type)
	if err != nil {
		return txn, err
	}

	queryCtx, cancel := r.timeProvider.WithTimeout(ctx, r.queryTimeout)
	outcome, err := adapter.QueryStatus(queryCtx, primary)
	cancel()
	if err != nil {
		r.logger.Warn("Gateway status query failed", map[string]any{
			"transaction_id": txn.ID,
			"gateway":        txn.Gateway,
			"correlation_id": primary.Value,
			"error":          err.Error(),
		})
		return txn, fmt.Errorf("%w: status query failed: %w", errs.ErrAmbiguous, err)
	}

	updated, _, err := r.applier.Apply(ctx, txn, *outcome, source)
	return updated, err
}
