package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/usecase"
	mockpersistence "github.com/amirhossein-jamali/payment-orchestrator/mocks/port/persistence"
)

func TestIdempotencyHandler_CheckClientReference(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		reference     string
		mockSetup     func(repo *mockpersistence.MockTransactionRepository)
		expectedFound bool
		expectError   bool
	}{
		{
			name:      "no reference skips lookup",
			reference: "",
			mockSetup: func(repo *mockpersistence.MockTransactionRepository) {},
		},
		{
			name:      "reference exists",
			reference: "order-42",
			mockSetup: func(repo *mockpersistence.MockTransactionRepository) {
				repo.EXPECT().GetByClientReference(ctx, "owner-1", "order-42").
					Return(&entity.Transaction{ID: "txn-1"}, nil).Once()
			},
			expectedFound: true,
		},
		{
			name:      "reference unused",
			reference: "order-43",
			mockSetup: func(repo *mockpersistence.MockTransactionRepository) {
				repo.EXPECT().GetByClientReference(ctx, "owner-1", "order-43").
					Return(nil, errs.ErrTransactionNotFound).Once()
			},
		},
		{
			name:      "database error",
			reference: "order-44",
			mockSetup: func(repo *mockpersistence.MockTransactionRepository) {
				repo.EXPECT().GetByClientReference(ctx, "owner-1", "order-44").
					Return(nil, errors.New("database connection error")).Once()
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mockpersistence.NewMockTransactionRepository(t)
			tc.mockSetup(repo)
			handler := NewIdempotencyHandler(repo)

			txn, found, err := handler.CheckClientReference(ctx, "owner-1", tc.reference)

			if tc.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedFound, found)
			assert.Equal(t, tc.expectedFound, txn != nil)
		})
	}
}

func TestSameRequest(t *testing.T) {
	txn := &entity.Transaction{
		Direction:   entity.DirectionCollection,
		Amount:      500,
		Currency:    "KES",
		Purpose:     entity.PurposeLoanRepayment,
		Gateway:     gateway.MobileMoney,
		Type:        entity.TypeCollectionPush,
		RelatedItem: &entity.RelatedItem{ID: "loan-7", Type: entity.RelatedLoan},
	}
	same := func() usecase.InitiateRequest {
		return usecase.InitiateRequest{
			Direction:   "collection",
			Amount:      500,
			Currency:    "KES",
			Purpose:     "loan_repayment",
			Gateway:     gateway.MobileMoney,
			RelatedItem: &entity.RelatedItem{ID: "loan-7", Type: entity.RelatedLoan},
		}
	}

	assert.True(t, SameRequest(txn, same()))

	testCases := []struct {
		name   string
		change func(req *usecase.InitiateRequest)
	}{
		{"amount", func(req *usecase.InitiateRequest) { req.Amount = 501 }},
		{"direction", func(req *usecase.InitiateRequest) { req.Direction = "disbursement" }},
		{"currency", func(req *usecase.InitiateRequest) { req.Currency = "UGX" }},
		{"purpose", func(req *usecase.InitiateRequest) { req.Purpose = "deposit" }},
		{"gateway", func(req *usecase.InitiateRequest) { req.Gateway = gateway.Card }},
		{"transaction type", func(req *usecase.InitiateRequest) { req.TransactionType = string(entity.TypeCardCharge) }},
		{"related item", func(req *usecase.InitiateRequest) {
			req.RelatedItem = &entity.RelatedItem{ID: "loan-8", Type: entity.RelatedLoan}
		}},
		{"missing related item", func(req *usecase.InitiateRequest) { req.RelatedItem = nil }},
	}
	for _, tc := range testCases {
		t.Run("Different "+tc.name, func(t *testing.T) {
			req := same()
			tc.change(&req)
			assert.False(t, SameRequest(txn, req))
		})
	}
}
