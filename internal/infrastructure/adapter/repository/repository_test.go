package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/database"
	timeadapter "github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/time"
)

var start = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	manager *database.Manager
	uow     persistence.UnitOfWork
	txns    persistence.TransactionRepository
	ledger  persistence.LedgerRepository
	clock   *timeadapter.ManualTimeProvider
}

func setup(t *testing.T) *fixture {
	t.Helper()
	clock := timeadapter.NewManualTimeProvider(start)
	manager := database.NewTestManager(t, database.WithTestTimeProvider(clock))
	uow := manager.CreateUnitOfWork()
	return &fixture{
		manager: manager,
		uow:     uow,
		txns:    uow.GetTransactionRepository(context.Background()),
		ledger:  uow.GetLedgerRepository(context.Background()),
		clock:   clock,
	}
}

func (f *fixture) newTxn(t *testing.T, ownerID string, opts ...entity.TransactionOption) *entity.Transaction {
	t.Helper()
	txn, err := entity.NewTransaction(ownerID, "collection", 1000, "KES", "deposit",
		"mobileMoney", entity.TypeCollectionPush, f.clock, opts...)
	require.NoError(t, err)
	require.NoError(t, f.txns.Create(context.Background(), txn))
	return txn
}

func (f *fixture) process(t *testing.T, txn *entity.Transaction, checkoutID string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.txns.AttachCorrelationIDs(ctx, txn.ID, txn.Gateway, entity.CorrelationIDs{
		{Kind: entity.CorrelationCheckoutRequestID, Value: checkoutID},
		{Kind: entity.CorrelationMerchantRequestID, Value: "mr-" + checkoutID},
	}))
	applied, err := f.txns.TransitionStatus(ctx, txn.ID, []entity.TransactionStatus{entity.StatusPending},
		persistence.StatusUpdate{Status: entity.StatusProcessing, UpdatedAt: f.clock.Now()})
	require.NoError(t, err)
	require.True(t, applied)
}

func TestTransactionRepository_CreateAndGet(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	txn := f.newTxn(t, "owner-1",
		entity.WithClientReference("ref-1"),
		entity.WithRelatedItem(&entity.RelatedItem{ID: "loan-1", Type: entity.RelatedLoan}),
		entity.WithMetadata(map[string]any{"channel": "app"}),
	)

	got, err := f.txns.GetByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txn.OwnerID, got.OwnerID)
	assert.Equal(t, int64(1000), got.Amount)
	assert.Equal(t, entity.StatusPending, got.Status)
	assert.Equal(t, "ref-1", got.ClientReference)
	require.NotNil(t, got.RelatedItem)
	assert.Equal(t, entity.RelatedLoan, got.RelatedItem.Type)
	assert.Equal(t, "app", got.Metadata["channel"])

	byRef, err := f.txns.GetByClientReference(ctx, "owner-1", "ref-1")
	require.NoError(t, err)
	assert.Equal(t, txn.ID, byRef.ID)

	_, err = f.txns.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestTransactionRepository_ClientReferenceIsUniquePerOwner(t *testing.T) {
	f := setup(t)

	f.newTxn(t, "owner-1", entity.WithClientReference("ref-1"))
	f.newTxn(t, "owner-2", entity.WithClientReference("ref-1"))
	// No reference never collides
	f.newTxn(t, "owner-1")
	f.newTxn(t, "owner-1")

	dup, err := entity.NewTransaction("owner-1", "collection", 1000, "KES", "deposit",
		"mobileMoney", entity.TypeCollectionPush, f.clock, entity.WithClientReference("ref-1"))
	require.NoError(t, err)
	assert.ErrorIs(t, f.txns.Create(context.Background(), dup), errs.ErrDuplicateClientReference)
}

func TestTransactionRepository_Correlations(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first := f.newTxn(t, "owner-1")
	f.process(t, first, "ws_CO_1")

	found, err := f.txns.GetByCorrelationID(ctx, "mobileMoney", "mr-ws_CO_1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
	primary, ok := found.CorrelationIDs.Primary()
	require.True(t, ok)
	assert.Equal(t, entity.CorrelationCheckoutRequestID, primary.Kind)

	_, err = f.txns.GetByCorrelationID(ctx, "card", "ws_CO_1")
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

	second := f.newTxn(t, "owner-1")
	err = f.txns.AttachCorrelationIDs(ctx, second.ID, "mobileMoney", entity.CorrelationIDs{
		{Kind: entity.CorrelationCheckoutRequestID, Value: "ws_CO_1"},
	})
	assert.ErrorIs(t, err, errs.ErrDuplicateCorrelationID)
}

func TestTransactionRepository_TransitionStatusIsConditional(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	txn := f.newTxn(t, "owner-1")
	f.process(t, txn, "ws_CO_1")

	now := f.clock.Now()
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := f.txns.TransitionStatus(ctx, txn.ID,
				[]entity.TransactionStatus{entity.StatusProcessing, entity.StatusTimeout},
				persistence.StatusUpdate{
					Status:      entity.StatusCompleted,
					ResultCode:  "0",
					UpdatedAt:   now,
					CompletedAt: &now,
					Metadata:    map[string]any{"receipt": "R1"},
				})
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, applied)

	got, err := f.txns.GetByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, got.Status)
	assert.Equal(t, "0", got.ResultCode)
	assert.Equal(t, "R1", got.Metadata["receipt"])
	require.NotNil(t, got.CompletedAt)
}

func TestTransactionRepository_Listings(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	old := f.newTxn(t, "owner-1")
	f.process(t, old, "ws_CO_1")
	f.clock.Advance(5 * time.Minute)
	fresh := f.newTxn(t, "owner-1")
	f.process(t, fresh, "ws_CO_2")
	f.newTxn(t, "owner-2")

	awaiting, err := f.txns.ListAwaitingOutcome(ctx, f.clock.Now().Add(-time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, awaiting, 1)
	assert.Equal(t, old.ID, awaiting[0].ID)

	owned, err := f.txns.ListByOwner(ctx, "owner-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, fresh.ID, owned[0].ID)

	page, err := f.txns.ListByOwner(ctx, "owner-1", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, old.ID, page[0].ID)
}

func TestLedgerRepository(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	collection := f.newTxn(t, "owner-1")
	f.process(t, collection, "ws_CO_1")
	now := f.clock.Now()
	_, err := f.txns.TransitionStatus(ctx, collection.ID, []entity.TransactionStatus{entity.StatusProcessing},
		persistence.StatusUpdate{Status: entity.StatusCompleted, UpdatedAt: now, CompletedAt: &now})
	require.NoError(t, err)

	missing, err := f.txns.ListCompletedWithoutLedger(ctx, 10)
	require.NoError(t, err)
	require.Len(t, missing, 1)

	collection.Status = entity.StatusCompleted
	entry := entity.NewLedgerEntry(collection, f.clock)
	require.NoError(t, f.ledger.Insert(ctx, entry))
	assert.ErrorIs(t, f.ledger.Insert(ctx, entity.NewLedgerEntry(collection, f.clock)), errs.ErrDuplicateLedgerEntry)

	payout := &entity.Transaction{
		ID: "payout-1", OwnerID: "owner-1", Direction: entity.DirectionDisbursement,
		Amount: 400, Currency: "KES", Purpose: entity.PurposeWithdrawal, Status: entity.StatusCompleted,
	}
	require.NoError(t, f.ledger.Insert(ctx, entity.NewLedgerEntry(payout, f.clock)))

	got, err := f.ledger.GetByTransactionID(ctx, collection.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got.Amount)

	_, err = f.ledger.GetByTransactionID(ctx, "unknown")
	assert.ErrorIs(t, err, errs.ErrLedgerEntryNotFound)

	balance, err := f.ledger.BalanceByOwner(ctx, "owner-1", "KES")
	require.NoError(t, err)
	assert.Equal(t, int64(600), balance)

	entries, err := f.ledger.ListByOwner(ctx, "owner-1", 10, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	missing, err = f.txns.ListCompletedWithoutLedger(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestUnitOfWork_RollbackDiscardsWrites(t *testing.T) {
	f := setup(t)

	txCtx, err := f.uow.Begin(context.Background())
	require.NoError(t, err)

	repo := f.uow.GetTransactionRepository(txCtx)
	txn, err := entity.NewTransaction("owner-1", "collection", 1000, "KES", "deposit",
		"mobileMoney", entity.TypeCollectionPush, f.clock)
	require.NoError(t, err)
	require.NoError(t, repo.Create(txCtx, txn))
	require.NoError(t, f.uow.Rollback(txCtx))

	_, err = f.txns.GetByID(context.Background(), txn.ID)
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}
