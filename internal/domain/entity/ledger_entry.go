package entity

import (
	"time"

	"github.com/google/uuid"

	tport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
)

// LedgerStatus is the settlement status of a ledger entry
type LedgerStatus string

// Ledger statuses
const (
	LedgerStatusSuccess LedgerStatus = "success"
	LedgerStatusFailed  LedgerStatus = "failed"
)

// LedgerEntry is the immutable accounting record of a completed transaction
type LedgerEntry struct {
	ID            string
	TransactionID string
	OwnerID       string
	Amount        int64 // Signed minor units: negative for disbursements
	Currency      string
	Purpose       Purpose
	RelatedItem   *RelatedItem
	Status        LedgerStatus
	CreatedAt     time.Time
}

// LedgerEntryResponse represents the API view of a ledger entry
type LedgerEntryResponse struct {
	EntryID         string       `json:"entryId"`
	TransactionID   string       `json:"transactionId"`
	OwnerID         string       `json:"ownerId"`
	Amount          int64        `json:"amount"`
	FormattedAmount string       `json:"formattedAmount"`
	Currency        string       `json:"currency"`
	Purpose         Purpose      `json:"purpose"`
	RelatedItemID   string       `json:"relatedItemId,omitempty"`
	RelatedItemType string       `json:"relatedItemType,omitempty"`
	Status          LedgerStatus `json:"status"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// NewLedgerEntry derives the ledger entry for a completed transaction
func NewLedgerEntry(txn *Transaction, timeProvider tport.TimeProvider) *LedgerEntry {
	return &LedgerEntry{
		ID:            uuid.NewString(),
		TransactionID: txn.ID,
		OwnerID:       txn.OwnerID,
		Amount:        txn.SignedAmount(),
		Currency:      txn.Currency,
		Purpose:       txn.Purpose,
		RelatedItem:   txn.RelatedItem,
		Status:        LedgerStatusSuccess,
		CreatedAt:     timeProvider.Now(),
	}
}

// ToResponse converts the entry to a response object for API
func (e *LedgerEntry) ToResponse() LedgerEntryResponse {
	resp := LedgerEntryResponse{
		EntryID:       e.ID,
		TransactionID: e.TransactionID,
		OwnerID:       e.OwnerID,
		Amount:        e.Amount,
		Currency:      e.Currency,
		Purpose:       e.Purpose,
		Status:        e.Status,
		CreatedAt:     e.CreatedAt,
	}
	resp.FormattedAmount = FormatAmount(e.Amount, e.Currency)
	if e.RelatedItem != nil {
		resp.RelatedItemID = e.RelatedItem.ID
		resp.RelatedItemType = string(e.RelatedItem.Type)
	}
	return resp
}
