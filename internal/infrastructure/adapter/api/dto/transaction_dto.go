package dto

import "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"

// InitiateTransactionRequest represents the API request for moving money.
// Amount is a decimal string in major units, e.g. "150.00".
type InitiateTransactionRequest struct {
	OwnerID         string            `json:"ownerId" binding:"required"`
	ClientReference string            `json:"clientReference"`
	Direction       string            `json:"direction" binding:"required,oneof=collection disbursement"`
	Amount          string            `json:"amount" binding:"required"`
	Currency        string            `json:"currency" binding:"omitempty,len=3"`
	Purpose         string            `json:"purpose" binding:"required"`
	RelatedItemID   string            `json:"relatedItemId"`
	RelatedItemType string            `json:"relatedItemType" binding:"required_with=RelatedItemID"`
	Gateway         string            `json:"gateway" binding:"required"`
	TransactionType string            `json:"transactionType"`
	GatewayParams   map[string]string `json:"gatewayParams"`
}

// TransactionResponse wraps a transaction view, with the initiation error when the gateway refused it
type TransactionResponse struct {
	entity.TransactionResponse
	FormattedAmount string         `json:"formattedAmount"`
	Error           *ErrorResponse `json:"error,omitempty"`
}

// TransactionListResponse is one page of an owner's transactions
type TransactionListResponse struct {
	Items  []TransactionResponse `json:"items"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// CallbackResponse acknowledges a gateway callback
type CallbackResponse struct {
	TransactionID string `json:"transactionId,omitempty"`
	Status        string `json:"status,omitempty"`
	Applied       bool   `json:"applied"`
	Message       string `json:"message,omitempty"`
}

// NewTransactionResponse builds the API view of a transaction
func NewTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionResponse: txn.ToResponse(),
		FormattedAmount:     entity.FormatAmount(txn.Amount, txn.Currency),
	}
}
