package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidRequest", ErrInvalidRequest, 4001},
		{"InvalidPurpose", ErrInvalidPurpose, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidOwnerID", ErrInvalidOwnerID, 4003},
		{"Unauthenticated", ErrUnauthenticated, 4010},
		{"TransactionNotFound", ErrTransactionNotFound, 4040},
		{"UnknownTransaction", ErrUnknownTransaction, 4041},
		{"InvalidTransition", ErrInvalidTransition, 4090},
		{"Ambiguous", ErrAmbiguous, 4220},
		{"GatewayRejected", ErrGatewayRejected, 5020},
		{"GatewayUnavailable", ErrGatewayUnavailable, 5030},
		{"LedgerWriteFailed", ErrLedgerWriteFailed, 5100},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidOwnerID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestGatewayRejectedError(t *testing.T) {
	cause := errors.New("insufficient float")
	err := NewGatewayRejectedError("tx-1", "mobileMoney", "request refused", cause)

	assert.True(t, errors.Is(err, ErrGatewayRejected))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "gateway mobileMoney rejected transaction tx-1: request refused", err.Error())

	var rejected *GatewayRejectedError
	assert.True(t, errors.As(err, &rejected))
	fields := rejected.LogFields()
	assert.Equal(t, "tx-1", fields["transaction_id"])
	assert.Equal(t, CodeGatewayRejected, fields["error_code"])
	assert.Equal(t, "insufficient float", fields["error"])
}

func TestOutcomeError(t *testing.T) {
	err := NewAmbiguousOutcomeError("tx-2", "poll", "500.001.1001", "status query inconclusive")

	assert.True(t, IsAmbiguousError(err))
	assert.Equal(t, CodeAmbiguousOutcome, ErrorCode(err))

	var outcome *OutcomeError
	assert.True(t, errors.As(err, &outcome))
	assert.Equal(t, "poll", outcome.LogFields()["source"])
}

func TestLedgerWriteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewLedgerWriteError("tx-3", 5, cause)

	assert.True(t, errors.Is(err, ErrLedgerWriteFailed))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "after 5 attempts")
}

func TestHelperFunctions(t *testing.T) {
	assert.True(t, IsInvalidRequestError(fmt.Errorf("%w: x", ErrInvalidPurpose)))
	assert.True(t, IsInvalidRequestError(ErrUnsupportedGateway))
	assert.False(t, IsInvalidRequestError(ErrAmbiguous))

	assert.True(t, IsNotFoundError(ErrTransactionNotFound))
	assert.True(t, IsNotFoundError(ErrLedgerEntryNotFound))
	assert.False(t, IsNotFoundError(ErrUnknownTransaction))
}
