package transaction

import (
	"context"
	"errors"
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
	mockgateway "github.com/amirhossein-jamali/payment-orchestrator/mocks/port/gateway"
	mockpersistence "github.com/amirhossein-jamali/payment-orchestrator/mocks/port/persistence"
)

type initiatorFixture struct {
	uow       *mockpersistence.MockUnitOfWork
	repo      *mockpersistence.MockTransactionRepository
	adapter   *mockgateway.MockAdapter
	alerter   *mockcore.MockAlerter
	initiator *Initiator
}

func newInitiatorFixture(t *testing.T) *initiatorFixture {
	registry := gateway.NewRegistry()
	f := &initiatorFixture{
		uow:     mockpersistence.NewMockUnitOfWork(t),
		repo:    mockpersistence.NewMockTransactionRepository(t),
		adapter: stubAdapter(t, registry, entity.TypeCollectionPush),
		alerter: mockcore.NewMockAlerter(t),
	}
	f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.repo).Maybe()

	f.initiator = NewInitiator(
		f.uow,
		NewTransactionValidator(registry, "KES"),
		NewIdempotencyHandler(f.repo),
		f.alerter,
		newClock(),
		quietMetrics(t),
		quietLogger(t),
		30*coreport.Second,
	)
	return f
}

func acceptedAck() *gateway.Ack {
	return &gateway.Ack{
		CorrelationIDs: entity.CorrelationIDs{
			{Kind: entity.CorrelationCheckoutRequestID, Value: "ws_CO_1"},
			{Kind: entity.CorrelationMerchantRequestID, Value: "mr-1"},
		},
		ResponseCode:        "0",
		ResponseDescription: "Success. Request accepted for processing",
	}
}

func (f *initiatorFixture) expectCreate() {
	f.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
		return txn.Status == entity.StatusPending && txn.Amount == 1000
	})).Return(nil).Once()
}

func (f *initiatorFixture) expectFailed() {
	f.repo.EXPECT().TransitionStatus(mock.Anything, mock.Anything, []entity.TransactionStatus{entity.StatusPending},
		mock.MatchedBy(func(u persistence.StatusUpdate) bool { return u.Status == entity.StatusFailed })).
		Return(true, nil).Once()
}

func TestInitiator_Initiate(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepted request moves to processing", func(t *testing.T) {
		f := newInitiatorFixture(t)
		f.expectCreate()
		f.adapter.EXPECT().Initiate(mock.Anything, mock.MatchedBy(func(req gateway.Request) bool {
			return req.Amount == 1000 && req.Params["msisdn"] == "254700000001"
		})).Return(acceptedAck(), nil).Once()
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.repo.EXPECT().AttachCorrelationIDs(ctx, mock.Anything, gateway.MobileMoney, acceptedAck().CorrelationIDs).Return(nil).Once()
		f.repo.EXPECT().TransitionStatus(ctx, mock.Anything, []entity.TransactionStatus{entity.StatusPending},
			mock.MatchedBy(func(u persistence.StatusUpdate) bool { return u.Status == entity.StatusProcessing })).
			Return(true, nil).Once()
		f.uow.EXPECT().Commit(ctx).Return(nil).Once()

		req := validRequest()
		req.GatewayParams = map[string]string{"msisdn": "254700000001"}
		result, err := f.initiator.Initiate(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusProcessing, result.Status)
		assert.NotEmpty(t, result.TransactionID)
		assert.Equal(t, "ws_CO_1", result.CorrelationIDs[0].Value)
	})

	t.Run("Invalid request persists nothing", func(t *testing.T) {
		f := newInitiatorFixture(t)
		req := validRequest()
		req.Amount = 0

		result, err := f.initiator.Initiate(ctx, req)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Gateway rejection fails transaction", func(t *testing.T) {
		f := newInitiatorFixture(t)
		f.expectCreate()
		f.adapter.EXPECT().Initiate(mock.Anything, mock.Anything).
			Return(nil, errors.New("Bad Request - Invalid PhoneNumber")).Once()
		f.expectFailed()

		result, err := f.initiator.Initiate(ctx, validRequest())

		require.ErrorIs(t, err, errs.ErrGatewayRejected)
		var rejected *errs.GatewayRejectedError
		require.True(t, errors.As(err, &rejected))
		assert.Equal(t, result.TransactionID, rejected.TransactionID)
		assert.Equal(t, entity.StatusFailed, result.Status)
		assert.Equal(t, "Bad Request - Invalid PhoneNumber", result.Transaction.ResultDescription)
	})

	t.Run("Empty correlation set fails transaction", func(t *testing.T) {
		f := newInitiatorFixture(t)
		f.expectCreate()
		f.adapter.EXPECT().Initiate(mock.Anything, mock.Anything).Return(&gateway.Ack{ResponseCode: "0"}, nil).Once()
		f.expectFailed()

		result, err := f.initiator.Initiate(ctx, validRequest())

		assert.ErrorIs(t, err, errs.ErrGatewayRejected)
		assert.Equal(t, entity.StatusFailed, result.Status)
	})

	t.Run("Correlation collision fails transaction", func(t *testing.T) {
		f := newInitiatorFixture(t)
		f.expectCreate()
		f.adapter.EXPECT().Initiate(mock.Anything, mock.Anything).Return(acceptedAck(), nil).Once()
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.repo.EXPECT().AttachCorrelationIDs(ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(errs.ErrDuplicateCorrelationID).Once()
		f.uow.EXPECT().Rollback(ctx).Return(nil).Once()
		f.expectFailed()

		result, err := f.initiator.Initiate(ctx, validRequest())

		assert.ErrorIs(t, err, errs.ErrGatewayRejected)
		assert.ErrorIs(t, err, errs.ErrDuplicateCorrelationID)
		assert.Equal(t, entity.StatusFailed, result.Status)
	})

	t.Run("Unrecorded acceptance alerts operator", func(t *testing.T) {
		f := newInitiatorFixture(t)
		f.expectCreate()
		f.adapter.EXPECT().Initiate(mock.Anything, mock.Anything).Return(acceptedAck(), nil).Once()
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.repo.EXPECT().AttachCorrelationIDs(ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(errs.ErrDatabaseConnection).Once()
		f.uow.EXPECT().Rollback(ctx).Return(nil).Once()
		f.alerter.EXPECT().Alert(mock.Anything, mock.MatchedBy(func(a coreport.Alert) bool {
			return a.Severity == coreport.SeverityCritical
		})).Return(nil).Once()
		f.expectFailed()

		result, err := f.initiator.Initiate(ctx, validRequest())

		assert.ErrorIs(t, err, errs.ErrGatewayRejected)
		assert.Equal(t, entity.StatusFailed, result.Status)
	})

	t.Run("Caller cancelling during the gateway call still fails transaction", func(t *testing.T) {
		f := newInitiatorFixture(t)
		callerCtx, cancelCaller := context.WithCancel(ctx)
		f.expectCreate()
		f.adapter.EXPECT().Initiate(mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, gateway.Request) (*gateway.Ack, error) {
				cancelCaller()
				return nil, context.Canceled
			}).Once()
		f.repo.EXPECT().TransitionStatus(mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }),
			mock.Anything, []entity.TransactionStatus{entity.StatusPending},
			mock.MatchedBy(func(u persistence.StatusUpdate) bool { return u.Status == entity.StatusFailed })).
			Return(true, nil).Once()

		result, err := f.initiator.Initiate(callerCtx, validRequest())

		assert.ErrorIs(t, err, errs.ErrGatewayRejected)
		require.NotNil(t, result)
		assert.Equal(t, entity.StatusFailed, result.Status)
	})

	t.Run("Caller cancelling after acceptance still moves to processing", func(t *testing.T) {
		f := newInitiatorFixture(t)
		callerCtx, cancelCaller := context.WithCancel(ctx)
		f.expectCreate()
		f.adapter.EXPECT().Initiate(mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, gateway.Request) (*gateway.Ack, error) {
				cancelCaller()
				return acceptedAck(), nil
			}).Once()
		live := mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil })
		f.uow.EXPECT().Begin(live).RunAndReturn(func(c context.Context) (context.Context, error) { return c, nil }).Once()
		f.repo.EXPECT().AttachCorrelationIDs(live, mock.Anything, gateway.MobileMoney, mock.Anything).Return(nil).Once()
		f.repo.EXPECT().TransitionStatus(live, mock.Anything, []entity.TransactionStatus{entity.StatusPending},
			mock.MatchedBy(func(u persistence.StatusUpdate) bool { return u.Status == entity.StatusProcessing })).
			Return(true, nil).Once()
		f.uow.EXPECT().Commit(live).Return(nil).Once()

		result, err := f.initiator.Initiate(callerCtx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, entity.StatusProcessing, result.Status)
	})

	t.Run("Repeated client reference returns stored transaction", func(t *testing.T) {
		f := newInitiatorFixture(t)
		existing := processingTxn()
		existing.ClientReference = "order-42"
		f.repo.EXPECT().GetByClientReference(ctx, "owner-1", "order-42").Return(existing, nil).Once()

		req := validRequest()
		req.ClientReference = "order-42"
		result, err := f.initiator.Initiate(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "txn-1", result.TransactionID)
		assert.Equal(t, entity.StatusProcessing, result.Status)
		f.adapter.AssertNotCalled(t, "Initiate", mock.Anything, mock.Anything)
	})

	t.Run("Reused client reference with different amount is rejected", func(t *testing.T) {
		f := newInitiatorFixture(t)
		existing := processingTxn()
		existing.Amount = 5000
		f.repo.EXPECT().GetByClientReference(ctx, "owner-1", "order-42").Return(existing, nil).Once()

		req := validRequest()
		req.ClientReference = "order-42"
		_, err := f.initiator.Initiate(ctx, req)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.ErrorIs(t, err, errs.ErrDuplicateClientReference)
	})

	t.Run("Reused client reference for another purpose is rejected", func(t *testing.T) {
		f := newInitiatorFixture(t)
		existing := processingTxn()
		f.repo.EXPECT().GetByClientReference(ctx, "owner-1", "order-42").Return(existing, nil).Once()

		req := validRequest()
		req.ClientReference = "order-42"
		req.Purpose = "contribution"
		_, err := f.initiator.Initiate(ctx, req)

		assert.ErrorIs(t, err, errs.ErrDuplicateClientReference)
		f.adapter.AssertNotCalled(t, "Initiate", mock.Anything, mock.Anything)
	})
}
