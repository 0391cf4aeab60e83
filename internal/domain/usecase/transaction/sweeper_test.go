package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/persistence"
	timeadapter "github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/time"
	mockgateway "github.com/amirhossein-jamali/payment-orchestrator/mocks/port/gateway"
	mockpersistence "github.com/amirhossein-jamali/payment-orchestrator/mocks/port/persistence"
)

type sweeperFixture struct {
	repo    *mockpersistence.MockTransactionRepository
	adapter *mockgateway.MockAdapter
	ledger  *recordingLedger
	clock   *timeadapter.ManualTimeProvider
	sweeper *Sweeper
}

func newSweeperFixture(t *testing.T) *sweeperFixture {
	registry := gateway.NewRegistry()
	f := &sweeperFixture{
		repo:    mockpersistence.NewMockTransactionRepository(t),
		adapter: stubAdapter(t, registry, entity.TypeCollectionPush),
		ledger:  &recordingLedger{},
		clock:   newClock(),
	}
	metrics := quietMetrics(t)
	logger := quietLogger(t)
	applier := NewOutcomeApplier(f.repo, f.ledger, f.clock, metrics, logger)
	reconciler := NewReconciler(registry, f.repo, applier, f.clock, logger, 60*coreport.Second, 10*coreport.Second)
	f.sweeper = NewSweeper(f.repo, reconciler, applier, f.ledger, NewQueueManager(logger, 2, 10),
		f.clock, metrics, logger, SweepConfig{
			Interval:     30 * coreport.Second,
			StaleAfter:   60 * coreport.Second,
			TimeoutAfter: 5 * coreport.Minute,
			BatchSize:    100,
		})
	t.Cleanup(f.sweeper.Stop)
	return f
}

func txnWithCorrelation(id, correlation string) *entity.Transaction {
	txn := processingTxn()
	txn.ID = id
	txn.CorrelationIDs = entity.CorrelationIDs{{Kind: entity.CorrelationCheckoutRequestID, Value: correlation}}
	return txn
}

func TestSweeper_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("Resolves, times out and repairs", func(t *testing.T) {
		f := newSweeperFixture(t)
		f.clock.Advance(10 * time.Minute)

		abandoned := txnWithCorrelation("txn-a", "ws_CO_A")
		answered := txnWithCorrelation("txn-b", "ws_CO_B")
		f.repo.EXPECT().ListAwaitingOutcome(mock.Anything, f.clock.Now().Add(-time.Minute), 100).
			Return([]*entity.Transaction{abandoned, answered}, nil).Once()

		f.adapter.EXPECT().QueryStatus(mock.Anything, abandoned.CorrelationIDs[0]).
			Return(&entity.Outcome{Kind: entity.OutcomeInconclusive}, nil).Once()
		success := successOutcome()
		f.adapter.EXPECT().QueryStatus(mock.Anything, answered.CorrelationIDs[0]).Return(&success, nil).Once()

		f.repo.EXPECT().TransitionStatus(mock.Anything, "txn-a", []entity.TransactionStatus{entity.StatusProcessing},
			mock.MatchedBy(func(u persistence.StatusUpdate) bool {
				return u.Status == entity.StatusTimeout && u.CompletedAt == nil
			})).Return(true, nil).Once()
		f.repo.EXPECT().TransitionStatus(mock.Anything, "txn-b", []entity.TransactionStatus{entity.StatusProcessing},
			mock.MatchedBy(func(u persistence.StatusUpdate) bool { return u.Status == entity.StatusCompleted })).
			Return(true, nil).Once()

		orphan := processingTxn()
		orphan.ID = "txn-c"
		orphan.Status = entity.StatusCompleted
		f.repo.EXPECT().ListCompletedWithoutLedger(mock.Anything, 100).Return([]*entity.Transaction{orphan}, nil).Once()

		report, err := f.sweeper.RunOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, report.Examined)
		assert.Equal(t, 1, report.Resolved)
		assert.Equal(t, 1, report.TimedOut)
		assert.Equal(t, 0, report.Errors)
		assert.Equal(t, 1, report.LedgerRepaired)
		assert.ElementsMatch(t, []string{"txn-b", "txn-c"}, f.ledger.recorded)
	})

	t.Run("Young transaction is polled but not timed out", func(t *testing.T) {
		f := newSweeperFixture(t)
		f.clock.Advance(2 * time.Minute)

		young := txnWithCorrelation("txn-y", "ws_CO_Y")
		f.repo.EXPECT().ListAwaitingOutcome(mock.Anything, mock.Anything, 100).
			Return([]*entity.Transaction{young}, nil).Once()
		f.adapter.EXPECT().QueryStatus(mock.Anything, mock.Anything).
			Return(&entity.Outcome{Kind: entity.OutcomeInconclusive}, nil).Once()
		f.repo.EXPECT().ListCompletedWithoutLedger(mock.Anything, 100).Return(nil, nil).Once()

		report, err := f.sweeper.RunOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, report.Unchanged)
		assert.Equal(t, 0, report.TimedOut)
		f.repo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Gateway failure on one transaction does not block others", func(t *testing.T) {
		f := newSweeperFixture(t)
		f.clock.Advance(2 * time.Minute)

		broken := txnWithCorrelation("txn-x", "ws_CO_X")
		answered := txnWithCorrelation("txn-b", "ws_CO_B")
		f.repo.EXPECT().ListAwaitingOutcome(mock.Anything, mock.Anything, 100).
			Return([]*entity.Transaction{broken, answered}, nil).Once()
		f.adapter.EXPECT().QueryStatus(mock.Anything, broken.CorrelationIDs[0]).
			Return(nil, assert.AnError).Once()
		failure := entity.Outcome{Kind: entity.OutcomeFailure, ResultCode: "1032"}
		f.adapter.EXPECT().QueryStatus(mock.Anything, answered.CorrelationIDs[0]).Return(&failure, nil).Once()
		f.repo.EXPECT().TransitionStatus(mock.Anything, "txn-b", mock.Anything, mock.Anything).Return(true, nil).Once()
		f.repo.EXPECT().ListCompletedWithoutLedger(mock.Anything, 100).Return(nil, nil).Once()

		report, err := f.sweeper.RunOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, report.Resolved)
		assert.Equal(t, 1, report.Unchanged)
		assert.Empty(t, f.ledger.recorded)
	})
}

func TestSweeper_StartStop(t *testing.T) {
	f := newSweeperFixture(t)

	swept := make(chan struct{}, 1)
	f.repo.EXPECT().ListAwaitingOutcome(mock.Anything, mock.Anything, 100).
		Run(func(ctx context.Context, cutoff time.Time, limit int) {
			select {
			case swept <- struct{}{}:
			default:
			}
		}).Return(nil, nil)
	f.repo.EXPECT().ListCompletedWithoutLedger(mock.Anything, 100).Return(nil, nil)

	f.sweeper.Start(context.Background())

	// The ticker is created by the loop goroutine; keep advancing until it fires
	deadline := time.After(2 * time.Second)
	for {
		f.clock.Advance(30 * time.Second)
		select {
		case <-swept:
			f.sweeper.Stop()
			return
		case <-deadline:
			t.Fatal("sweeper did not run")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
