package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	coremocks "github.com/amirhossein-jamali/payment-orchestrator/mocks/port/core"
)

func TestNewLedgerEntry(t *testing.T) {
	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime)

	txn := &Transaction{
		ID:          "txn-1",
		OwnerID:     "owner-1",
		Direction:   DirectionDisbursement,
		Amount:      500,
		Currency:    "KES",
		Purpose:     PurposeLoanDisbursement,
		RelatedItem: &RelatedItem{ID: "loan-7", Type: RelatedLoan},
		Status:      StatusCompleted,
	}

	entry := NewLedgerEntry(txn, mockTime)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "txn-1", entry.TransactionID)
	assert.Equal(t, int64(-500), entry.Amount)
	assert.Equal(t, LedgerStatusSuccess, entry.Status)
	assert.Equal(t, fixedTime, entry.CreatedAt)

	resp := entry.ToResponse()
	assert.Equal(t, "-5.00", resp.FormattedAmount)
	assert.Equal(t, "loan-7", resp.RelatedItemID)
	assert.Equal(t, "loan", resp.RelatedItemType)
}
