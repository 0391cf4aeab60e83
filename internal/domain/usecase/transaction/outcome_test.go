package transaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/persistence"
	mockpersistence "github.com/amirhossein-jamali/payment-orchestrator/mocks/port/persistence"
)

type applierFixture struct {
	repo    *mockpersistence.MockTransactionRepository
	ledger  *recordingLedger
	applier *OutcomeApplier
}

func newApplierFixture(t *testing.T) *applierFixture {
	f := &applierFixture{
		repo:   mockpersistence.NewMockTransactionRepository(t),
		ledger: &recordingLedger{},
	}
	f.applier = NewOutcomeApplier(f.repo, f.ledger, newClock(), quietMetrics(t), quietLogger(t))
	return f
}

func successOutcome() entity.Outcome {
	return entity.Outcome{
		Kind:              entity.OutcomeSuccess,
		ResultCode:        "0",
		ResultDescription: "The service request is processed successfully.",
		ConfirmedID:       "NLJ7RT61SV",
		ConfirmedAmount:   int64Ptr(1000),
	}
}

func TestOutcomeApplier_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("Success completes processing transaction and writes ledger", func(t *testing.T) {
		f := newApplierFixture(t)
		f.repo.EXPECT().TransitionStatus(ctx, "txn-1", []entity.TransactionStatus{entity.StatusProcessing},
			mock.MatchedBy(func(u persistence.StatusUpdate) bool {
				return u.Status == entity.StatusCompleted && u.ResultCode == "0" && u.CompletedAt != nil &&
					u.Metadata["confirmed_id"] == "NLJ7RT61SV"
			})).Return(true, nil).Once()

		updated, applied, err := f.applier.Apply(ctx, processingTxn(), successOutcome(), entity.SourceCallback)

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, entity.StatusCompleted, updated.Status)
		assert.Equal(t, []string{"txn-1"}, f.ledger.recorded)
	})

	t.Run("Failure from timeout writes no ledger", func(t *testing.T) {
		f := newApplierFixture(t)
		txn := processingTxn()
		txn.Status = entity.StatusTimeout
		f.repo.EXPECT().TransitionStatus(ctx, "txn-1", []entity.TransactionStatus{entity.StatusTimeout},
			mock.MatchedBy(func(u persistence.StatusUpdate) bool { return u.Status == entity.StatusFailed })).
			Return(true, nil).Once()

		updated, applied, err := f.applier.Apply(ctx, txn, entity.Outcome{Kind: entity.OutcomeFailure, ResultCode: "1032"}, entity.SourcePoll)

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, entity.StatusFailed, updated.Status)
		assert.Equal(t, "1032", updated.ResultCode)
		assert.Empty(t, f.ledger.recorded)
	})

	t.Run("Late success after timeout completes", func(t *testing.T) {
		f := newApplierFixture(t)
		txn := processingTxn()
		txn.Status = entity.StatusTimeout
		f.repo.EXPECT().TransitionStatus(ctx, "txn-1", []entity.TransactionStatus{entity.StatusTimeout}, mock.Anything).
			Return(true, nil).Once()

		updated, applied, err := f.applier.Apply(ctx, txn, successOutcome(), entity.SourceCallback)

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, entity.StatusCompleted, updated.Status)
		assert.Len(t, f.ledger.recorded, 1)
	})

	t.Run("Terminal transaction is not mutated but ledger is healed", func(t *testing.T) {
		f := newApplierFixture(t)
		txn := processingTxn()
		txn.Status = entity.StatusCompleted

		updated, applied, err := f.applier.Apply(ctx, txn, successOutcome(), entity.SourceCallback)

		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, entity.StatusCompleted, updated.Status)
		assert.Equal(t, []string{"txn-1"}, f.ledger.recorded)
		f.repo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure after completion is ignored", func(t *testing.T) {
		f := newApplierFixture(t)
		txn := processingTxn()
		txn.Status = entity.StatusFailed

		updated, applied, err := f.applier.Apply(ctx, txn, successOutcome(), entity.SourceCallback)

		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, entity.StatusFailed, updated.Status)
		assert.Empty(t, f.ledger.recorded)
	})

	t.Run("Inconclusive outcome is ambiguous", func(t *testing.T) {
		f := newApplierFixture(t)

		updated, applied, err := f.applier.Apply(ctx, processingTxn(),
			entity.Outcome{Kind: entity.OutcomeInconclusive, ResultCode: "500.001.1001"}, entity.SourcePoll)

		assert.ErrorIs(t, err, errs.ErrAmbiguous)
		assert.False(t, applied)
		assert.Equal(t, entity.StatusProcessing, updated.Status)
	})

	t.Run("Amount mismatch is ambiguous", func(t *testing.T) {
		f := newApplierFixture(t)
		outcome := successOutcome()
		outcome.ConfirmedAmount = int64Ptr(999)

		_, applied, err := f.applier.Apply(ctx, processingTxn(), outcome, entity.SourceCallback)

		assert.ErrorIs(t, err, errs.ErrAmbiguous)
		assert.False(t, applied)
		assert.Empty(t, f.ledger.recorded)
	})

	t.Run("Currency mismatch is ambiguous", func(t *testing.T) {
		f := newApplierFixture(t)
		outcome := successOutcome()
		outcome.ConfirmedCurrency = "USD"

		updated, applied, err := f.applier.Apply(ctx, processingTxn(), outcome, entity.SourceCallback)

		assert.ErrorIs(t, err, errs.ErrAmbiguous)
		assert.False(t, applied)
		assert.Equal(t, entity.StatusProcessing, updated.Status)
		assert.Empty(t, f.ledger.recorded)
		f.repo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Same currency in another case settles", func(t *testing.T) {
		f := newApplierFixture(t)
		outcome := successOutcome()
		outcome.ConfirmedCurrency = "kes"
		f.repo.EXPECT().TransitionStatus(ctx, "txn-1", []entity.TransactionStatus{entity.StatusProcessing}, mock.Anything).
			Return(true, nil).Once()

		updated, applied, err := f.applier.Apply(ctx, processingTxn(), outcome, entity.SourceCallback)

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, entity.StatusCompleted, updated.Status)
	})

	t.Run("Pending transaction cannot take an outcome", func(t *testing.T) {
		f := newApplierFixture(t)
		txn := processingTxn()
		txn.Status = entity.StatusPending

		_, _, err := f.applier.Apply(ctx, txn, successOutcome(), entity.SourceCallback)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("Timeout outcome on timeout is a no-op", func(t *testing.T) {
		f := newApplierFixture(t)
		txn := processingTxn()
		txn.Status = entity.StatusTimeout

		_, applied, err := f.applier.Apply(ctx, txn, entity.Outcome{Kind: entity.OutcomeTimeout}, entity.SourceSweep)

		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("Race loser returns the winner's state", func(t *testing.T) {
		f := newApplierFixture(t)
		winner := processingTxn()
		winner.Status = entity.StatusFailed
		f.repo.EXPECT().TransitionStatus(ctx, "txn-1", mock.Anything, mock.Anything).Return(false, nil).Once()
		f.repo.EXPECT().GetByID(ctx, "txn-1").Return(winner, nil).Once()

		updated, applied, err := f.applier.Apply(ctx, processingTxn(), successOutcome(), entity.SourceCallback)

		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, entity.StatusFailed, updated.Status)
		assert.Empty(t, f.ledger.recorded)
	})

	t.Run("Concurrent timeout still lets final outcome through", func(t *testing.T) {
		f := newApplierFixture(t)
		timedOut := processingTxn()
		timedOut.Status = entity.StatusTimeout
		f.repo.EXPECT().TransitionStatus(ctx, "txn-1", []entity.TransactionStatus{entity.StatusProcessing}, mock.Anything).
			Return(false, nil).Once()
		f.repo.EXPECT().GetByID(ctx, "txn-1").Return(timedOut, nil).Once()
		f.repo.EXPECT().TransitionStatus(ctx, "txn-1", []entity.TransactionStatus{entity.StatusTimeout}, mock.Anything).
			Return(true, nil).Once()

		updated, applied, err := f.applier.Apply(ctx, processingTxn(), successOutcome(), entity.SourceCallback)

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, entity.StatusCompleted, updated.Status)
	})

	t.Run("Ledger failure is reported after the transition", func(t *testing.T) {
		f := newApplierFixture(t)
		f.ledger.err = errs.NewLedgerWriteError("txn-1", 5, errs.ErrDatabaseConnection)
		f.repo.EXPECT().TransitionStatus(ctx, "txn-1", mock.Anything, mock.Anything).Return(true, nil).Once()

		updated, applied, err := f.applier.Apply(ctx, processingTxn(), successOutcome(), entity.SourceCallback)

		assert.ErrorIs(t, err, errs.ErrLedgerWriteFailed)
		assert.True(t, applied)
		assert.Equal(t, entity.StatusCompleted, updated.Status)
	})
}
