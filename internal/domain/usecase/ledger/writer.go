package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/persistence"
)

// Ledger write results reported to metrics
const (
	resultCreated  = "created"
	resultExisting = "existing"
	resultRetry    = "retry"
	resultFailed   = "failed"
)

// Writer records exactly one ledger entry per completed transaction
type Writer struct {
	repo         persistence.LedgerRepository
	alerter      coreport.Alerter
	metrics      coreport.Metrics
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	policy       RetryPolicy
}

// NewWriter creates a new ledger writer
func NewWriter(
	repo persistence.LedgerRepository,
	alerter coreport.Alerter,
	metrics coreport.Metrics,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	policy RetryPolicy,
) *Writer {
	return &Writer{
		repo:         repo,
		alerter:      alerter,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
		policy:       policy,
	}
}

// RecordIfAbsent inserts the entry for txn, or returns the one already stored.
// The store's unique index on transaction_id is the idempotency guarantee.
func (w *Writer) RecordIfAbsent(ctx context.Context, txn *entity.Transaction) (*entity.LedgerEntry, error) {
	if txn.Status != entity.StatusCompleted {
		return nil, fmt.Errorf("%w: ledger entry requires a completed transaction, %s is %s",
			errs.ErrInvalidTransition, txn.ID, txn.Status)
	}

	entry := entity.NewLedgerEntry(txn, w.timeProvider)
	err := w.repo.Insert(ctx, entry)
	if err == nil {
		w.metrics.LedgerWrite(resultCreated)
		return entry, nil
	}
	if !errors.Is(err, errs.ErrDuplicateLedgerEntry) {
		return nil, err
	}

	existing, err := w.repo.GetByTransactionID(ctx, txn.ID)
	if err != nil {
		return nil, err
	}
	w.metrics.LedgerWrite(resultExisting)
	return existing, nil
}

// Record calls RecordIfAbsent with backoff. When every attempt fails it alerts an
// operator and returns ErrLedgerWriteFailed; the transaction stays completed.
func (w *Writer) Record(ctx context.Context, txn *entity.Transaction) (*entity.LedgerEntry, error) {
	var lastErr error
	attempts := w.policy.attempts()

	for attempt := 0; attempt < attempts; attempt++ {
		entry, err := w.RecordIfAbsent(ctx, txn)
		if err == nil {
			return entry, nil
		}
		lastErr = err

		if errors.Is(err, errs.ErrInvalidTransition) {
			return nil, err
		}
		if attempt == attempts-1 {
			break
		}

		wait := w.policy.backoff(attempt)
		w.metrics.LedgerWrite(resultRetry)
		w.logger.Warn("Ledger write failed, retrying", map[string]any{
			"transaction_id": txn.ID,
			"attempt":        attempt + 1,
			"max_attempts":   attempts,
			"retry_after":    wait.String(),
			"error":          err.Error(),
		})

		if err := w.timeProvider.Sleep(ctx, coreport.Duration(wait)); err != nil {
			lastErr = err
			break
		}
	}

	w.metrics.LedgerWrite(resultFailed)
	writeErr := errs.NewLedgerWriteError(txn.ID, attempts, lastErr)

	var ledgerErr *errs.LedgerWriteError
	fields := map[string]any{}
	if errors.As(writeErr, &ledgerErr) {
		fields = ledgerErr.LogFields()
	}
	fields["owner_id"] = txn.OwnerID
	fields["amount"] = txn.SignedAmount()
	fields["currency"] = txn.Currency
	w.logger.Error("Ledger write exhausted retries", fields)

	// The alert must go out even if the caller's context is already done
	alertCtx, cancel := w.timeProvider.WithTimeout(context.WithoutCancel(ctx), 10*coreport.Second)
	defer cancel()
	if err := w.alerter.Alert(alertCtx, coreport.Alert{
		Severity: coreport.SeverityCritical,
		Title:    "Ledger write failed",
		Message: fmt.Sprintf("Transaction %s completed but its ledger entry of %s %s could not be written after %d attempts",
			txn.ID, entity.FormatAmount(txn.SignedAmount(), txn.Currency), txn.Currency, attempts),
		Fields: fields,
	}); err != nil {
		w.logger.Error("Failed to deliver ledger alert", map[string]any{
			"transaction_id": txn.ID,
			"error":          err.Error(),
		})
	}

	return nil, writeErr
}
