package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	tport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
)

// Direction is the way money moves relative to the platform
type Direction string

// Directions
const (
	DirectionCollection   Direction = "collection"
	DirectionDisbursement Direction = "disbursement"
)

// Purpose describes why money is moving
type Purpose string

// Purposes
const (
	PurposeDeposit          Purpose = "deposit"
	PurposeWithdrawal       Purpose = "withdrawal"
	PurposeLoanRepayment    Purpose = "loan_repayment"
	PurposeLoanDisbursement Purpose = "loan_disbursement"
	PurposeContribution     Purpose = "contribution"
	PurposeSalary           Purpose = "salary"
	PurposeBusinessPayment  Purpose = "business_payment"
	PurposeOrderPayment     Purpose = "order_payment"
)

// RelatedItemType is the kind of business object a transaction is attached to
type RelatedItemType string

// Related item types
const (
	RelatedLoan   RelatedItemType = "loan"
	RelatedGroup  RelatedItemType = "group"
	RelatedWallet RelatedItemType = "wallet"
	RelatedOrder  RelatedItemType = "order"
)

// GatewayTransactionType identifies the gateway operation used for a transaction
type GatewayTransactionType string

// Gateway transaction types
const (
	TypeCollectionPush   GatewayTransactionType = "collection_push"
	TypeDisbursementPush GatewayTransactionType = "disbursement_push"
	TypeCardCharge       GatewayTransactionType = "card_charge"
	TypePayout           GatewayTransactionType = "payout"
)

// Direction returns the money direction implied by the gateway operation
func (t GatewayTransactionType) Direction() Direction {
	switch t {
	case TypeDisbursementPush, TypePayout:
		return DirectionDisbursement
	default:
		return DirectionCollection
	}
}

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending    TransactionStatus = "pending"
	StatusProcessing TransactionStatus = "processing"
	StatusCompleted  TransactionStatus = "completed"
	StatusFailed     TransactionStatus = "failed"
	StatusTimeout    TransactionStatus = "timeout"
	StatusCancelled  TransactionStatus = "cancelled"
)

// transitions lists every legal status change
var transitions = map[TransactionStatus][]TransactionStatus{
	StatusPending:    {StatusProcessing, StatusFailed, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusFailed, StatusTimeout},
	StatusTimeout:    {StatusCompleted, StatusFailed},
}

// CanTransition reports whether the status graph allows moving from s to next
func (s TransactionStatus) CanTransition(next TransactionStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// AwaitsOutcome reports whether a callback or poll may still resolve the transaction
func (s TransactionStatus) AwaitsOutcome() bool {
	return s == StatusProcessing || s == StatusTimeout
}

// CorrelationKind names the gateway-issued identifier
type CorrelationKind string

// Correlation kinds
const (
	CorrelationMerchantRequestID CorrelationKind = "merchant_request_id"
	CorrelationCheckoutRequestID CorrelationKind = "checkout_request_id"
	CorrelationConversationID    CorrelationKind = "conversation_id"
	CorrelationOriginatorConvID  CorrelationKind = "originator_conversation_id"
	CorrelationTxRef             CorrelationKind = "tx_ref"
	CorrelationGatewayReference  CorrelationKind = "gateway_reference"
)

// CorrelationID is one gateway-issued identifier of a transaction
type CorrelationID struct {
	Kind  CorrelationKind
	Value string
}

// CorrelationIDs is the ordered correlation set; the first entry is the status-query key
type CorrelationIDs []CorrelationID

// Primary returns the identifier used for status queries
func (c CorrelationIDs) Primary() (CorrelationID, bool) {
	if len(c) == 0 {
		return CorrelationID{}, false
	}
	return c[0], true
}

// Find returns the value of the given kind
func (c CorrelationIDs) Find(kind CorrelationKind) (string, bool) {
	for _, id := range c {
		if id.Kind == kind {
			return id.Value, true
		}
	}
	return "", false
}

// Values returns the raw identifier values
func (c CorrelationIDs) Values() []string {
	values := make([]string, 0, len(c))
	for _, id := range c {
		values = append(values, id.Value)
	}
	return values
}

// RelatedItem points at the business object a transaction settles
type RelatedItem struct {
	ID   string
	Type RelatedItemType
}

// TransactionResponse represents the API view of a transaction
type TransactionResponse struct {
	TransactionID     string            `json:"transactionId"`
	OwnerID           string            `json:"ownerId"`
	Direction         Direction         `json:"direction"`
	Amount            int64             `json:"amount"`
	Currency          string            `json:"currency"`
	Purpose           Purpose           `json:"purpose"`
	Gateway           string            `json:"gateway"`
	Status            TransactionStatus `json:"status"`
	CorrelationIDs    map[string]string `json:"correlationIds,omitempty"`
	ResultCode        string            `json:"resultCode,omitempty"`
	ResultDescription string            `json:"resultDescription,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	CompletedAt       *time.Time        `json:"completedAt,omitempty"`
}

// Transaction is one attempt to move money through a gateway
type Transaction struct {
	ID                string                 // System-assigned UUID
	OwnerID           string                 // Account or user the money belongs to
	ClientReference   string                 // Optional caller idempotency key, unique per owner
	Direction         Direction              // Collection or disbursement
	Amount            int64                  // Minor units, always positive
	Currency          string                 // ISO 4217 code
	Purpose           Purpose                // Business reason
	RelatedItem       *RelatedItem           // Optional business object
	Gateway           string                 // Gateway name, e.g. mobileMoney
	Type              GatewayTransactionType // Gateway operation
	CorrelationIDs    CorrelationIDs         // Gateway identifiers, set once
	Status            TransactionStatus      // Current status
	ResultCode        string                 // Gateway result code, verbatim
	ResultDescription string                 // Gateway result description, verbatim
	CreatedAt         time.Time              // When the transaction was created
	UpdatedAt         time.Time              // Last status change
	CompletedAt       *time.Time             // When a final outcome was recorded
	Metadata          map[string]any         // Gateway response details
}

// TransactionOption customizes a new transaction
type TransactionOption func(*Transaction)

// WithRelatedItem attaches the transaction to a business object
func WithRelatedItem(item *RelatedItem) TransactionOption {
	return func(t *Transaction) {
		t.RelatedItem = item
	}
}

// WithClientReference sets the caller's idempotency key
func WithClientReference(reference string) TransactionOption {
	return func(t *Transaction) {
		t.ClientReference = strings.TrimSpace(reference)
	}
}

// WithMetadata seeds the metadata map
func WithMetadata(metadata map[string]any) TransactionOption {
	return func(t *Transaction) {
		for k, v := range metadata {
			t.Metadata[k] = v
		}
	}
}

// NewTransaction creates a new pending transaction with basic validation
func NewTransaction(
	ownerID string,
	direction string,
	amount int64,
	currency string,
	purpose string,
	gateway string,
	txnType GatewayTransactionType,
	timeProvider tport.TimeProvider,
	opts ...TransactionOption,
) (*Transaction, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, errs.ErrInvalidOwnerID
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if !IsValidDirection(direction) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidDirection, direction)
	}
	if !IsValidPurpose(purpose) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidPurpose, purpose)
	}
	if txnType.Direction() != Direction(direction) {
		return nil, fmt.Errorf("%w: %s cannot carry a %s", errs.ErrUnsupportedGateway, txnType, direction)
	}

	now := timeProvider.Now()
	txn := &Transaction{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Direction: Direction(direction),
		Amount:    amount,
		Currency:  strings.ToUpper(currency),
		Purpose:   Purpose(purpose),
		Gateway:   gateway,
		Type:      txnType,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
		Metadata:  map[string]any{},
	}
	for _, opt := range opts {
		opt(txn)
	}

	if txn.RelatedItem != nil && !IsValidRelatedItemType(string(txn.RelatedItem.Type)) {
		return nil, fmt.Errorf("%w: related item type %s", errs.ErrInvalidRequest, txn.RelatedItem.Type)
	}

	return txn, nil
}

// SignedAmount returns the ledger amount: negative for money leaving the platform
func (t *Transaction) SignedAmount() int64 {
	if t.Direction == DirectionDisbursement {
		return -t.Amount
	}
	return t.Amount
}

// Age returns how long ago the transaction last changed status
func (t *Transaction) Age(timeProvider tport.TimeProvider) tport.Duration {
	return timeProvider.Since(t.UpdatedAt)
}

// ToResponse converts the transaction to a response object for API
func (t *Transaction) ToResponse() TransactionResponse {
	var correlations map[string]string
	if len(t.CorrelationIDs) > 0 {
		correlations = make(map[string]string, len(t.CorrelationIDs))
		for _, id := range t.CorrelationIDs {
			correlations[string(id.Kind)] = id.Value
		}
	}

	return TransactionResponse{
		TransactionID:     t.ID,
		OwnerID:           t.OwnerID,
		Direction:         t.Direction,
		Amount:            t.Amount,
		Currency:          t.Currency,
		Purpose:           t.Purpose,
		Gateway:           t.Gateway,
		Status:            t.Status,
		CorrelationIDs:    correlations,
		ResultCode:        t.ResultCode,
		ResultDescription: t.ResultDescription,
		CreatedAt:         t.CreatedAt,
		CompletedAt:       t.CompletedAt,
	}
}

// IsValidDirection validates if the direction is allowed
func IsValidDirection(direction string) bool {
	return direction == string(DirectionCollection) || direction == string(DirectionDisbursement)
}

// IsValidPurpose validates if the purpose is allowed
func IsValidPurpose(purpose string) bool {
	switch Purpose(purpose) {
	case PurposeDeposit, PurposeWithdrawal, PurposeLoanRepayment, PurposeLoanDisbursement,
		PurposeContribution, PurposeSalary, PurposeBusinessPayment, PurposeOrderPayment:
		return true
	}
	return false
}

// IsValidRelatedItemType validates if the related item type is allowed
func IsValidRelatedItemType(itemType string) bool {
	switch RelatedItemType(itemType) {
	case RelatedLoan, RelatedGroup, RelatedWallet, RelatedOrder:
		return true
	}
	return false
}

// DefaultTransactionType picks the gateway operation for a direction when the caller doesn't name one
func DefaultTransactionType(gateway string, direction Direction) GatewayTransactionType {
	card := strings.EqualFold(gateway, "card")
	switch {
	case card && direction == DirectionDisbursement:
		return TypePayout
	case card:
		return TypeCardCharge
	case direction == DirectionDisbursement:
		return TypeDisbursementPush
	default:
		return TypeCollectionPush
	}
}
