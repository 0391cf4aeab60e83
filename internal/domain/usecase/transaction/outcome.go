package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/persistence"
)

// Reasons an outcome was not applied, reported to metrics
const (
	rejectAlreadySettled = "already_settled"
	rejectNotSubmitted   = "not_submitted"
	rejectInconclusive   = "inconclusive"
	rejectAmountMismatch = "amount_mismatch"
	rejectCurrency       = "currency_mismatch"
	rejectLostRace       = "lost_race"
)

// LedgerRecorder writes the ledger entry of a completed transaction
type LedgerRecorder interface {
	Record(ctx context.Context, txn *entity.Transaction) (*entity.LedgerEntry, error)
}

// OutcomeApplier is the one path through which callbacks, polls and sweeps change a transaction
type OutcomeApplier struct {
	transactionRepo persistence.TransactionRepository
	ledger          LedgerRecorder
	timeProvider    coreport.TimeProvider
	metrics         coreport.Metrics
	logger          coreport.Logger
}

// NewOutcomeApplier creates a new OutcomeApplier
func NewOutcomeApplier(
	transactionRepo persistence.TransactionRepository,
	ledger LedgerRecorder,
	timeProvider coreport.TimeProvider,
	metrics coreport.Metrics,
	logger coreport.Logger,
) *OutcomeApplier {
	return &OutcomeApplier{
		transactionRepo: transactionRepo,
		ledger:          ledger,
		timeProvider:    timeProvider,
		metrics:         metrics,
		logger:          logger,
	}
}

// Apply moves txn to the status the outcome implies, if the status graph allows it.
// It returns the transaction as stored afterwards and whether this call changed it.
func (a *OutcomeApplier) Apply(
	ctx context.Context,
	txn *entity.Transaction,
	outcome entity.Outcome,
	source entity.OutcomeSource,
) (*entity.Transaction, bool, error) {
	log := a.logger.With(map[string]any{
		"transaction_id": txn.ID,
		"gateway":        txn.Gateway,
		"source":         string(source),
	})

	if txn.Status.IsTerminal() {
		log.Info("Outcome for settled transaction ignored", map[string]any{
			"status":      string(txn.Status),
			"outcome":     string(outcome.Kind),
			"result_code": outcome.ResultCode,
		})
		a.metrics.OutcomeRejected(string(source), rejectAlreadySettled)

		// A redelivered success heals a ledger write that failed the first time
		if txn.Status == entity.StatusCompleted {
			if _, err := a.ledger.Record(ctx, txn); err != nil {
				return txn, false, err
			}
		}
		return txn, false, nil
	}

	if !txn.Status.AwaitsOutcome() {
		a.metrics.OutcomeRejected(string(source), rejectNotSubmitted)
		return txn, false, fmt.Errorf("%w: transaction %s is %s and has no gateway request",
			errs.ErrInvalidTransition, txn.ID, txn.Status)
	}

	target, settles := outcome.TargetStatus()
	if !settles {
		log.Debug("Inconclusive outcome left transaction unchanged", map[string]any{
			"result_code": outcome.ResultCode,
		})
		a.metrics.OutcomeRejected(string(source), rejectInconclusive)
		return txn, false, errs.NewAmbiguousOutcomeError(txn.ID, string(source), outcome.ResultCode,
			"gateway has no final outcome yet")
	}

	if !outcome.AmountMatches(txn) {
		log.Warn("Confirmed amount differs from requested amount", map[string]any{
			"requested_amount": txn.Amount,
			"confirmed_amount": *outcome.ConfirmedAmount,
			"result_code":      outcome.ResultCode,
		})
		a.metrics.OutcomeRejected(string(source), rejectAmountMismatch)
		return txn, false, errs.NewAmbiguousOutcomeError(txn.ID, string(source), outcome.ResultCode,
			fmt.Sprintf("confirmed amount %d does not match requested amount %d", *outcome.ConfirmedAmount, txn.Amount))
	}

	if !outcome.CurrencyMatches(txn) {
		log.Warn("Confirmed currency differs from transaction currency", map[string]any{
			"currency":           txn.Currency,
			"confirmed_currency": outcome.ConfirmedCurrency,
			"result_code":        outcome.ResultCode,
		})
		a.metrics.OutcomeRejected(string(source), rejectCurrency)
		return txn, false, errs.NewAmbiguousOutcomeError(txn.ID, string(source), outcome.ResultCode,
			fmt.Sprintf("confirmed currency %s does not match transaction currency %s", outcome.ConfirmedCurrency, txn.Currency))
	}

	if target == txn.Status {
		return txn, false, nil
	}
	if !txn.Status.CanTransition(target) {
		a.metrics.OutcomeRejected(string(source), rejectAlreadySettled)
		return txn, false, fmt.Errorf("%w: %s to %s", errs.ErrInvalidTransition, txn.Status, target)
	}

	now := a.timeProvider.Now()
	update := persistence.StatusUpdate{
		Status:            target,
		ResultCode:        outcome.ResultCode,
		ResultDescription: outcome.ResultDescription,
		UpdatedAt:         now,
		Metadata:          outcomeMetadata(outcome, source, now),
	}
	if target.IsTerminal() {
		update.CompletedAt = &now
	}

	applied, err := a.transactionRepo.TransitionStatus(ctx, txn.ID, []entity.TransactionStatus{txn.Status}, update)
	if err != nil {
		return txn, false, fmt.Errorf("failed to apply %s outcome: %w", outcome.Kind, err)
	}

	if !applied {
		current, err := a.transactionRepo.GetByID(ctx, txn.ID)
		if err != nil {
			return txn, false, err
		}
		log.Info("Another writer changed the transaction first", map[string]any{
			"observed_status": string(txn.Status),
			"current_status":  string(current.Status),
			"outcome":         string(outcome.Kind),
		})

		// processing -> timeout by the sweeper still lets a late final outcome through
		if current.Status.AwaitsOutcome() && current.Status != txn.Status {
			return a.Apply(ctx, current, outcome, source)
		}
		a.metrics.OutcomeRejected(string(source), rejectLostRace)
		return current, false, nil
	}

	a.metrics.TransitionApplied(string(txn.Status), string(target), string(source))
	log.Info("Transaction status changed", map[string]any{
		"from":        string(txn.Status),
		"to":          string(target),
		"result_code": outcome.ResultCode,
	})

	updated := applyUpdate(txn, update)
	if target == entity.StatusCompleted {
		if _, err := a.ledger.Record(ctx, updated); err != nil {
			return updated, true, err
		}
	}

	return updated, true, nil
}

func outcomeMetadata(outcome entity.Outcome, source entity.OutcomeSource, at time.Time) map[string]any {
	metadata := make(map[string]any, len(outcome.Metadata)+3)
	for k, v := range outcome.Metadata {
		metadata[k] = v
	}
	metadata["outcome_source"] = string(source)
	metadata["outcome_recorded_at"] = at.UTC().Format(time.RFC3339Nano)
	if outcome.ConfirmedID != "" {
		metadata["confirmed_id"] = outcome.ConfirmedID
	}
	if !outcome.OccurredAt.IsZero() {
		metadata["outcome_occurred_at"] = outcome.OccurredAt.UTC().Format(time.RFC3339Nano)
	}
	return metadata
}

// applyUpdate returns a copy of txn as it looks after update was stored
func applyUpdate(txn *entity.Transaction, update persistence.StatusUpdate) *entity.Transaction {
	updated := *txn
	updated.Status = update.Status
	updated.ResultCode = update.ResultCode
	updated.ResultDescription = update.ResultDescription
	updated.UpdatedAt = update.UpdatedAt
	if update.CompletedAt != nil {
		updated.CompletedAt = update.CompletedAt
	}

	updated.Metadata = make(map[string]any, len(txn.Metadata)+len(update.Metadata))
	for k, v := range txn.Metadata {
		updated.Metadata[k] = v
	}
	for k, v := range update.Metadata {
		updated.Metadata[k] = v
	}
	return &updated
}
