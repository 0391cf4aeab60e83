package dto

import "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"

// LedgerListResponse is one page of an owner's ledger
type LedgerListResponse struct {
	Items  []entity.LedgerEntryResponse `json:"items"`
	Limit  int                          `json:"limit"`
	Offset int                          `json:"offset"`
}

// BalanceResponse represents the API response for an owner's ledger balance
type BalanceResponse struct {
	OwnerID          string `json:"ownerId"`
	Currency         string `json:"currency"`
	Balance          int64  `json:"balance"`
	FormattedBalance string `json:"formattedBalance"`
}
