package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest       = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidOwnerID       = 4003
	CodeUnauthenticated      = 4010
	CodeTransactionNotFound  = 4040
	CodeUnknownTransaction   = 4041
	CodeInvalidTransition    = 4090
	CodeDuplicateCorrelation = 4091
	CodeAmbiguousOutcome     = 4220

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeGatewayRejected    = 5020
	CodeGatewayUnavailable = 5030
	CodeLedgerWriteFailed  = 5100
)

// Base error types
var (
	// ErrInvalidRequest is returned when an initiation request fails validation; nothing is persisted
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidAmount is returned when the amount is not a positive number of minor units
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidOwnerID is returned when the owner ID is missing
	ErrInvalidOwnerID = errors.New("owner ID cannot be empty")

	// ErrInvalidPurpose is returned when the purpose is not one of the allowed values
	ErrInvalidPurpose = errors.New("invalid purpose")

	// ErrInvalidDirection is returned when the direction is neither collection nor disbursement
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrUnsupportedGateway is returned when no adapter is registered for a gateway and transaction type
	ErrUnsupportedGateway = errors.New("unsupported gateway or transaction type")

	// ErrGatewayRejected is returned when the gateway refused or failed the initiation leg
	ErrGatewayRejected = errors.New("gateway rejected the request")

	// ErrGatewayUnavailable is returned when the circuit breaker for a gateway is open
	ErrGatewayUnavailable = errors.New("gateway unavailable")

	// ErrUnauthenticated is returned when a callback signature does not verify
	ErrUnauthenticated = errors.New("callback authentication failed")

	// ErrUnknownTransaction is returned when a callback correlation ID matches no transaction
	ErrUnknownTransaction = errors.New("no transaction matches correlation ID")

	// ErrAmbiguous is returned when an outcome cannot be mapped to success or failure
	ErrAmbiguous = errors.New("ambiguous gateway outcome")

	// ErrLedgerWriteFailed is returned when the ledger entry could not be written after retries
	ErrLedgerWriteFailed = errors.New("ledger write failed")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrLedgerEntryNotFound is returned when no ledger entry exists for a transaction
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")

	// ErrInvalidTransition is returned when a status change is not allowed from the current status
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrDuplicateCorrelationID is returned when a correlation ID is already bound to another transaction
	ErrDuplicateCorrelationID = errors.New("correlation ID already in use")

	// ErrDuplicateLedgerEntry is returned by the store when a ledger entry already exists for a transaction
	ErrDuplicateLedgerEntry = errors.New("ledger entry already exists for transaction")

	// ErrDuplicateClientReference is returned when a client reference was already used by the owner
	ErrDuplicateClientReference = errors.New("client reference already used")

	// ErrInvalidCallback is returned when a callback payload cannot be parsed
	ErrInvalidCallback = errors.New("invalid callback payload")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidOwnerID):
		return CodeInvalidOwnerID
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrInvalidPurpose),
		errors.Is(err, ErrInvalidDirection),
		errors.Is(err, ErrUnsupportedGateway),
		errors.Is(err, ErrInvalidCallback):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrUnknownTransaction):
		return CodeUnknownTransaction
	case errors.Is(err, ErrTransactionNotFound), errors.Is(err, ErrLedgerEntryNotFound), errors.Is(err, ErrNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrDuplicateClientReference):
		return CodeInvalidTransition
	case errors.Is(err, ErrDuplicateCorrelationID):
		return CodeDuplicateCorrelation
	case errors.Is(err, ErrAmbiguous):
		return CodeAmbiguousOutcome
	case errors.Is(err, ErrGatewayUnavailable):
		return CodeGatewayUnavailable
	case errors.Is(err, ErrGatewayRejected):
		return CodeGatewayRejected
	case errors.Is(err, ErrLedgerWriteFailed):
		return CodeLedgerWriteFailed
	default:
		return CodeInternalServer
	}
}

// GatewayRejectedError carries the failed transaction when the initiation leg is refused
type GatewayRejectedError struct {
	TransactionID string
	Gateway       string
	Reason        string
	Err           error
}

// Error implements the error interface for GatewayRejectedError
func (e *GatewayRejectedError) Error() string {
	return fmt.Sprintf("gateway %s rejected transaction %s: %s", e.Gateway, e.TransactionID, e.Reason)
}

// Is matches ErrGatewayRejected
func (e *GatewayRejectedError) Is(target error) bool {
	return target == ErrGatewayRejected
}

// Unwrap returns the underlying adapter error
func (e *GatewayRejectedError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *GatewayRejectedError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":     "gateway_rejected",
		"transaction_id": e.TransactionID,
		"gateway":        e.Gateway,
		"reason":         e.Reason,
		"error_code":     CodeGatewayRejected,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewGatewayRejectedError creates a gateway rejection error for a transaction
func NewGatewayRejectedError(transactionID, gateway, reason string, err error) error {
	return &GatewayRejectedError{
		TransactionID: transactionID,
		Gateway:       gateway,
		Reason:        reason,
		Err:           err,
	}
}

// OutcomeError describes why an outcome from a callback or poll was not applied
type OutcomeError struct {
	TransactionID string
	Source        string
	ResultCode    string
	Reason        string
	Err           error
}

// Error implements the error interface for OutcomeError
func (e *OutcomeError) Error() string {
	return fmt.Sprintf("outcome from %s for transaction %s not applied (result code %q): %s - %v",
		e.Source, e.TransactionID, e.ResultCode, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *OutcomeError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *OutcomeError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "outcome_error",
		"transaction_id": e.TransactionID,
		"source":         e.Source,
		"result_code":    e.ResultCode,
		"reason":         e.Reason,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewAmbiguousOutcomeError creates an OutcomeError wrapping ErrAmbiguous
func NewAmbiguousOutcomeError(transactionID, source, resultCode, reason string) error {
	return &OutcomeError{
		TransactionID: transactionID,
		Source:        source,
		ResultCode:    resultCode,
		Reason:        reason,
		Err:           ErrAmbiguous,
	}
}

// LedgerWriteError is raised after the ledger writer gives up on a completed transaction
type LedgerWriteError struct {
	TransactionID string
	Attempts      int
	Err           error
}

// Error implements the error interface for LedgerWriteError
func (e *LedgerWriteError) Error() string {
	return fmt.Sprintf("ledger write for transaction %s failed after %d attempts: %v",
		e.TransactionID, e.Attempts, e.Err)
}

// Is matches ErrLedgerWriteFailed
func (e *LedgerWriteError) Is(target error) bool {
	return target == ErrLedgerWriteFailed
}

// Unwrap returns the last store error
func (e *LedgerWriteError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerWriteError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "ledger_write_failed",
		"transaction_id": e.TransactionID,
		"attempts":       e.Attempts,
		"error":          e.Err.Error(),
		"error_code":     CodeLedgerWriteFailed,
	}
}

// NewLedgerWriteError creates a ledger write failure error
func NewLedgerWriteError(transactionID string, attempts int, err error) error {
	return &LedgerWriteError{
		TransactionID: transactionID,
		Attempts:      attempts,
		Err:           err,
	}
}

// IsInvalidRequestError reports validation failures of any kind
func IsInvalidRequestError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidOwnerID) ||
		errors.Is(err, ErrInvalidPurpose) ||
		errors.Is(err, ErrInvalidDirection) ||
		errors.Is(err, ErrUnsupportedGateway)
}

// IsAmbiguousError checks if the error is an ambiguous outcome
func IsAmbiguousError(err error) bool {
	return errors.Is(err, ErrAmbiguous)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrLedgerEntryNotFound)
}
