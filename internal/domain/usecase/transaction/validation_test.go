package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/usecase"
)

func validRequest() usecase.InitiateRequest {
	return usecase.InitiateRequest{
		OwnerID:   "owner-1",
		Direction: "collection",
		Amount:    1000,
		Purpose:   "deposit",
		Gateway:   gateway.MobileMoney,
	}
}

func TestTransactionValidator_ValidateInitiate(t *testing.T) {
	registry := gateway.NewRegistry()
	stubAdapter(t, registry, entity.TypeCollectionPush)
	validator := NewTransactionValidator(registry, "kes")

	t.Run("Valid request fills defaults", func(t *testing.T) {
		req, adapter, err := validator.ValidateInitiate(validRequest())

		require.NoError(t, err)
		assert.NotNil(t, adapter)
		assert.Equal(t, "KES", req.Currency)
		assert.Equal(t, string(entity.TypeCollectionPush), req.TransactionType)
	})

	testCases := []struct {
		name     string
		mutate   func(*usecase.InitiateRequest)
		expected error
	}{
		{
			name:     "Zero amount",
			mutate:   func(r *usecase.InitiateRequest) { r.Amount = 0 },
			expected: errs.ErrInvalidAmount,
		},
		{
			name:     "Negative amount",
			mutate:   func(r *usecase.InitiateRequest) { r.Amount = -5 },
			expected: errs.ErrInvalidAmount,
		},
		{
			name:     "Missing owner",
			mutate:   func(r *usecase.InitiateRequest) { r.OwnerID = "  " },
			expected: errs.ErrInvalidOwnerID,
		},
		{
			name:     "Unknown direction",
			mutate:   func(r *usecase.InitiateRequest) { r.Direction = "sideways" },
			expected: errs.ErrInvalidDirection,
		},
		{
			name:     "Unknown purpose",
			mutate:   func(r *usecase.InitiateRequest) { r.Purpose = "gift" },
			expected: errs.ErrInvalidPurpose,
		},
		{
			name:     "Bad currency",
			mutate:   func(r *usecase.InitiateRequest) { r.Currency = "K3S" },
			expected: errs.ErrInvalidRequest,
		},
		{
			name: "Unknown related item type",
			mutate: func(r *usecase.InitiateRequest) {
				r.RelatedItem = &entity.RelatedItem{ID: "x", Type: "car"}
			},
			expected: errs.ErrInvalidRequest,
		},
		{
			name:     "Gateway without adapter",
			mutate:   func(r *usecase.InitiateRequest) { r.Gateway = "crypto" },
			expected: errs.ErrUnsupportedGateway,
		},
		{
			name:     "No disbursement adapter registered",
			mutate:   func(r *usecase.InitiateRequest) { r.Direction = "disbursement" },
			expected: errs.ErrUnsupportedGateway,
		},
		{
			name: "Type contradicts direction",
			mutate: func(r *usecase.InitiateRequest) {
				r.TransactionType = string(entity.TypeDisbursementPush)
			},
			expected: errs.ErrUnsupportedGateway,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, _, err := validator.ValidateInitiate(req)

			assert.ErrorIs(t, err, tc.expected)
			assert.True(t, errs.IsInvalidRequestError(err))
		})
	}
}
