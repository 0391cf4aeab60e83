package transaction

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
	timeadapter "github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/time"
	mockcore "github.com/amirhossein-jamali/payment-orchestrator/mocks/port/core"
	mockgateway "github.com/amirhossein-jamali/payment-orchestrator/mocks/port/gateway"
)

var testStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func quietLogger(t *testing.T) *mockcore.MockLogger {
	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().With(mock.Anything).Return(logger).Maybe()
	return logger
}

func quietMetrics(t *testing.T) *mockcore.MockMetrics {
	metrics := mockcore.NewMockMetrics(t)
	metrics.EXPECT().TransitionApplied(mock.Anything, mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().OutcomeRejected(mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().CallbackReceived(mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().LedgerWrite(mock.Anything).Maybe()
	metrics.EXPECT().SweepCompleted(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	return metrics
}

func newClock() *timeadapter.ManualTimeProvider {
	return timeadapter.NewManualTimeProvider(testStart)
}

// stubAdapter registers a mock adapter for the mobile money collection push
func stubAdapter(t *testing.T, registry *gateway.Registry, txnType entity.GatewayTransactionType) *mockgateway.MockAdapter {
	adapter := mockgateway.NewMockAdapter(t)
	adapter.EXPECT().Gateway().Return(gateway.MobileMoney).Maybe()
	adapter.EXPECT().TransactionType().Return(txnType).Maybe()
	registry.RegisterAdapter(adapter)
	return adapter
}

func processingTxn() *entity.Transaction {
	return &entity.Transaction{
		ID:        "txn-1",
		OwnerID:   "owner-1",
		Direction: entity.DirectionCollection,
		Amount:    1000,
		Currency:  "KES",
		Purpose:   entity.PurposeDeposit,
		Gateway:   gateway.MobileMoney,
		Type:      entity.TypeCollectionPush,
		CorrelationIDs: entity.CorrelationIDs{
			{Kind: entity.CorrelationCheckoutRequestID, Value: "ws_CO_1"},
			{Kind: entity.CorrelationMerchantRequestID, Value: "mr-1"},
		},
		Status:    entity.StatusProcessing,
		CreatedAt: testStart,
		UpdatedAt: testStart,
		Metadata:  map[string]any{},
	}
}

func int64Ptr(v int64) *int64 { return &v }

// recordingLedger is a LedgerRecorder that remembers what it was asked to record
type recordingLedger struct {
	mu       sync.Mutex
	recorded []string
	err      error
}

func (l *recordingLedger) Record(_ context.Context, txn *entity.Transaction) (*entity.LedgerEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	l.recorded = append(l.recorded, txn.ID)
	return &entity.LedgerEntry{TransactionID: txn.ID, Amount: txn.SignedAmount()}, nil
}
