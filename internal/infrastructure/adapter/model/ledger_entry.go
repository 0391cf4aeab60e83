package model

import (
	"time"
)

// LedgerEntry represents the database model for ledger entries.
// Rows are insert-only.
type LedgerEntry struct {
	ID              string    `gorm:"primaryKey;size:36"`
	TransactionID   string    `gorm:"not null;size:36;uniqueIndex:idx_ledger_entries_transaction_id"`
	OwnerID         string    `gorm:"not null;size:64;index:idx_ledger_entries_owner_created,priority:1"`
	Amount          int64     `gorm:"not null"`
	Currency        string    `gorm:"not null;size:3"`
	Purpose         string    `gorm:"not null;size:32"`
	RelatedItemID   *string   `gorm:"size:64"`
	RelatedItemType *string   `gorm:"size:20"`
	Status          string    `gorm:"not null;size:20"`
	CreatedAt       time.Time `gorm:"not null;index:idx_ledger_entries_owner_created,priority:2,sort:desc"`
}

// TableName specifies the table name for LedgerEntry
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
