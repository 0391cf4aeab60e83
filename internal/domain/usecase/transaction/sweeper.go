package transaction

import (
	"context"
	"fmt"
	"sync"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/persistence"
)

// SweepConfig controls the background reconciliation sweep
type SweepConfig struct {
	Interval     coreport.Duration // Time between sweeps
	StaleAfter   coreport.Duration // Quiet period before a transaction is polled
	TimeoutAfter coreport.Duration // Age after which an unresolved processing transaction times out
	BatchSize    int               // Transactions examined per sweep
}

// SweepReport summarizes one sweep
type SweepReport struct {
	Examined       int
	Resolved       int
	TimedOut       int
	Unchanged      int
	Errors         int
	LedgerRepaired int
	Duration       coreport.Duration
}

type sweepResult int

const (
	sweepUnchanged sweepResult = iota
	sweepResolved
	sweepTimedOut
)

// Sweeper periodically reconciles quiet transactions and times out abandoned ones
type Sweeper struct {
	transactionRepo persistence.TransactionRepository
	reconciler      *Reconciler
	applier         *OutcomeApplier
	ledger          LedgerRecorder
	queues          *QueueManager
	timeProvider    coreport.TimeProvider
	metrics         coreport.Metrics
	logger          coreport.Logger
	cfg             SweepConfig

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

// NewSweeper creates a new Sweeper
func NewSweeper(
	transactionRepo persistence.TransactionRepository,
	reconciler *Reconciler,
	applier *OutcomeApplier,
	ledger LedgerRecorder,
	queues *QueueManager,
	timeProvider coreport.TimeProvider,
	metrics coreport.Metrics,
	logger coreport.Logger,
	cfg SweepConfig,
) *Sweeper {
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 100
	}
	return &Sweeper{
		transactionRepo: transactionRepo,
		reconciler:      reconciler,
		applier:         applier,
		ledger:          ledger,
		queues:          queues,
		timeProvider:    timeProvider,
		metrics:         metrics,
		logger:          logger,
		cfg:             cfg,
		stop:            make(chan struct{}),
		done:            make(chan struct{}),
	}
}

// Start runs sweeps every interval until Stop is called or ctx is done
func (s *Sweeper) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		go s.loop(ctx)
	})
}

func (s *Sweeper) loop(ctx context.Context) {
	defer close(s.done)

	ticker := s.timeProvider.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.logger.Info("Reconciliation sweeper started", map[string]any{
		"interval":      s.cfg.Interval.Std().String(),
		"stale_after":   s.cfg.StaleAfter.Std().String(),
		"timeout_after": s.cfg.TimeoutAfter.Std().String(),
		"batch_size":    s.cfg.BatchSize,
	})

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C():
			if _, err := s.RunOnce(ctx); err != nil {
				s.logger.Error("Reconciliation sweep failed", map[string]any{"error": err.Error()})
			}
		}
	}
}

// Stop ends the sweep loop and waits for in-flight work to finish
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
		// Never started: nothing will close done
		s.startOnce.Do(func() { close(s.done) })
		<-s.done
		s.queues.Shutdown()
		s.logger.Info("Reconciliation sweeper stopped", nil)
	})
}

// RunOnce performs one sweep: poll quiet transactions, time out abandoned ones and repair
// completed transactions that are missing their ledger entry
func (s *Sweeper) RunOnce(ctx context.Context) (SweepReport, error) {
	start := s.timeProvider.Now()
	var report SweepReport

	cutoff := start.Add(-s.cfg.StaleAfter.Std())
	txns, err := s.transactionRepo.ListAwaitingOutcome(ctx, cutoff, s.cfg.BatchSize)
	if err != nil {
		return report, fmt.Errorf("failed to list transactions awaiting outcome: %w", err)
	}
	report.Examined = len(txns)

	results := make([]sweepResult, len(txns))
	failures := make([]error, len(txns))
	pending := make([]<-chan error, len(txns))

	for i, txn := range txns {
		i, txn := i, txn
		resultChan, err := s.queues.Submit(ctx, txn.Gateway, func(ctx context.Context) error {
			var err error
			results[i], err = s.sweepOne(ctx, txn)
			return err
		})
		if err != nil {
			failures[i] = err
			continue
		}
		pending[i] = resultChan
	}

	for i, resultChan := range pending {
		if resultChan == nil {
			continue
		}
		if err := <-resultChan; err != nil {
			failures[i] = err
		}
	}

	for i := range txns {
		switch {
		case results[i] == sweepResolved:
			report.Resolved++
		case results[i] == sweepTimedOut:
			report.TimedOut++
		default:
			report.Unchanged++
		}
		if failures[i] != nil {
			report.Errors++
		}
	}

	report.LedgerRepaired = s.repairLedger(ctx)
	report.Duration = s.timeProvider.Since(start)

	s.metrics.SweepCompleted(report.Examined, report.Resolved, report.TimedOut, report.Duration)
	if report.Examined > 0 || report.LedgerRepaired > 0 {
		s.logger.Info("Reconciliation sweep finished", map[string]any{
			"examined":        report.Examined,
			"resolved":        report.Resolved,
			"timed_out":       report.TimedOut,
			"unchanged":       report.Unchanged,
			"errors":          report.Errors,
			"ledger_repaired": report.LedgerRepaired,
			"duration":        report.Duration.Std().String(),
		})
	}

	return report, nil
}

// sweepOne reconciles a single transaction. Its errors are counted and never stop the sweep.
func (s *Sweeper) sweepOne(ctx context.Context, txn *entity.Transaction) (sweepResult, error) {
	updated, err := s.reconciler.reconcile(ctx, txn, entity.SourceSweep)
	if errs.IsAmbiguousError(err) {
		err = nil
	}
	if updated.Status.IsTerminal() {
		if updated.Status != txn.Status {
			return sweepResolved, err
		}
		return sweepUnchanged, err
	}

	if updated.Status != entity.StatusProcessing || s.timeProvider.Since(updated.CreatedAt) < s.cfg.TimeoutAfter {
		return sweepUnchanged, err
	}

	timedOut, applied, timeoutErr := s.applier.Apply(ctx, updated, entity.Outcome{
		Kind:              entity.OutcomeTimeout,
		ResultDescription: fmt.Sprintf("no final outcome within %s", s.cfg.TimeoutAfter.Std()),
	}, entity.SourceSweep)
	if timeoutErr != nil {
		return sweepUnchanged, timeoutErr
	}
	if applied && timedOut.Status == entity.StatusTimeout {
		s.logger.Warn("Transaction timed out", map[string]any{
			"transaction_id": txn.ID,
			"gateway":        txn.Gateway,
			"age":            s.timeProvider.Since(txn.CreatedAt).Std().String(),
		})
		return sweepTimedOut, nil
	}
	if timedOut.Status.IsTerminal() {
		return sweepResolved, nil
	}
	return sweepUnchanged, err
}

// repairLedger writes entries for completed transactions whose ledger write never landed
func (s *Sweeper) repairLedger(ctx context.Context) int {
	txns, err := s.transactionRepo.ListCompletedWithoutLedger(ctx, s.cfg.BatchSize)
	if err != nil {
		s.logger.Error("Failed to list completed transactions without ledger entry", map[string]any{
			"error": err.Error(),
		})
		return 0
	}

	repaired := 0
	for _, txn := range txns {
		if _, err := s.ledger.Record(ctx, txn); err != nil {
			continue
		}
		repaired++
		s.logger.Info("Repaired missing ledger entry", map[string]any{
			"transaction_id": txn.ID,
		})
	}
	return repaired
}
