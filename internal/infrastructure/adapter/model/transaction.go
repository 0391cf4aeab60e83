package model

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID                string    `gorm:"primaryKey;size:36"`
	OwnerID           string    `gorm:"not null;size:64;index:idx_transactions_owner_created,priority:1;uniqueIndex:idx_transactions_owner_reference,priority:1"`
	ClientReference   *string   `gorm:"size:128;uniqueIndex:idx_transactions_owner_reference,priority:2"`
	Direction         string    `gorm:"not null;size:20"`
	Amount            int64     `gorm:"not null;check:chk_transactions_amount_positive,amount > 0"`
	Currency          string    `gorm:"not null;size:3"`
	Purpose           string    `gorm:"not null;size:32"`
	RelatedItemID     *string   `gorm:"size:64"`
	RelatedItemType   *string   `gorm:"size:20"`
	Gateway           string    `gorm:"not null;size:32"`
	Type              string    `gorm:"column:gateway_transaction_type;not null;size:32"`
	Status            string    `gorm:"not null;size:20;index:idx_transactions_status_updated,priority:1"`
	ResultCode        string    `gorm:"size:64"`
	ResultDescription string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"not null;index:idx_transactions_owner_created,priority:2,sort:desc"`
	UpdatedAt         time.Time `gorm:"not null;index:idx_transactions_status_updated,priority:2"`
	CompletedAt       *time.Time
	Metadata          datatypes.JSONMap

	// Correlation IDs in the order the gateway returned them
	Correlations []TransactionCorrelation `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionCorrelation binds one gateway-issued identifier to a transaction
type TransactionCorrelation struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	TransactionID string    `gorm:"not null;size:36;index"`
	Gateway       string    `gorm:"not null;size:32;uniqueIndex:idx_correlations_gateway_value,priority:1"`
	Kind          string    `gorm:"not null;size:64"`
	Value         string    `gorm:"not null;size:255;uniqueIndex:idx_correlations_gateway_value,priority:2"`
	Position      int       `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for TransactionCorrelation
func (TransactionCorrelation) TableName() string {
	return "transaction_correlations"
}
