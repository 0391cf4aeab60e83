package transaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/persistence"
	mockcore "github.com/amirhossein-jamali/payment-orchestrator/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/payment-orchestrator/mocks/port/persistence"
)

func newTestService(t *testing.T) (*Service, *mockpersistence.MockTransactionRepository) {
	repo := mockpersistence.NewMockTransactionRepository(t)
	uow := mockpersistence.NewMockUnitOfWork(t)
	uow.EXPECT().GetTransactionRepository(mock.Anything).Return(repo).Maybe()

	service := NewTransactionService(Dependencies{
		UnitOfWork:   uow,
		Registry:     gateway.NewRegistry(),
		Ledger:       &recordingLedger{},
		Alerter:      mockcore.NewMockAlerter(t),
		Metrics:      quietMetrics(t),
		TimeProvider: newClock(),
		Logger:       quietLogger(t),
	}, Config{
		DefaultCurrency: "KES",
		GatewayTimeout:  30 * coreport.Second,
		QueryTimeout:    10 * coreport.Second,
		Sweep: SweepConfig{
			Interval:     30 * coreport.Second,
			StaleAfter:   60 * coreport.Second,
			TimeoutAfter: 5 * coreport.Minute,
		},
	})
	t.Cleanup(service.Shutdown)
	return service, repo
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending transaction is cancelled", func(t *testing.T) {
		service, repo := newTestService(t)
		pending := processingTxn()
		pending.Status = entity.StatusPending
		repo.EXPECT().GetByID(ctx, "txn-1").Return(pending, nil).Once()
		repo.EXPECT().TransitionStatus(ctx, "txn-1", []entity.TransactionStatus{entity.StatusPending},
			mock.MatchedBy(func(u persistence.StatusUpdate) bool { return u.Status == entity.StatusCancelled })).
			Return(true, nil).Once()

		txn, err := service.Cancel(ctx, "txn-1")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, txn.Status)
		assert.NotNil(t, txn.CompletedAt)
	})

	t.Run("Processing transaction cannot be cancelled", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetByID(ctx, "txn-1").Return(processingTxn(), nil).Once()

		txn, err := service.Cancel(ctx, "txn-1")

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, entity.StatusProcessing, txn.Status)
	})

	t.Run("Cancel racing with submission loses", func(t *testing.T) {
		service, repo := newTestService(t)
		pending := processingTxn()
		pending.Status = entity.StatusPending
		repo.EXPECT().GetByID(ctx, "txn-1").Return(pending, nil).Once()
		repo.EXPECT().TransitionStatus(ctx, "txn-1", mock.Anything, mock.Anything).Return(false, nil).Once()
		repo.EXPECT().GetByID(ctx, "txn-1").Return(processingTxn(), nil).Once()

		txn, err := service.Cancel(ctx, "txn-1")

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, entity.StatusProcessing, txn.Status)
	})
}

func TestService_ListByOwner(t *testing.T) {
	service, repo := newTestService(t)
	repo.EXPECT().ListByOwner(context.Background(), "owner-1", maxPageSize, 0).
		Return([]*entity.Transaction{processingTxn()}, nil).Once()

	txns, err := service.ListByOwner(context.Background(), "owner-1", 100000, 0)
	require.NoError(t, err)
	assert.Len(t, txns, 1)

	_, err = service.ListByOwner(context.Background(), "", 10, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidOwnerID)
}

func TestService_RejectsEmptyTransactionID(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.GetStatus(context.Background(), " ")
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)

	_, err = service.Reconcile(context.Background(), "")
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}
