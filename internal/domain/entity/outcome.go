package entity

import (
	"strings"
	"time"
)

// OutcomeKind is a gateway result normalized by the adapter
type OutcomeKind string

// Outcome kinds
const (
	OutcomeSuccess      OutcomeKind = "success"
	OutcomeFailure      OutcomeKind = "failure"
	OutcomeTimeout      OutcomeKind = "timeout"
	OutcomeInconclusive OutcomeKind = "inconclusive"
)

// OutcomeSource records which signal produced an outcome
type OutcomeSource string

// Outcome sources
const (
	SourceCallback OutcomeSource = "callback"
	SourcePoll     OutcomeSource = "poll"
	SourceSweep    OutcomeSource = "sweep"
)

// Outcome is a final or partial answer about a transaction from a callback or status query
type Outcome struct {
	Kind              OutcomeKind
	ResultCode        string
	ResultDescription string
	ConfirmedID       string // Gateway receipt, e.g. a mobile money receipt number
	ConfirmedAmount   *int64 // Minor units confirmed by the gateway, when reported
	ConfirmedCurrency string // Currency of ConfirmedAmount, when reported
	OccurredAt        time.Time
	Metadata          map[string]any
}

// TargetStatus maps the outcome onto the transaction status graph.
// The second result is false when the outcome doesn't settle anything.
func (o Outcome) TargetStatus() (TransactionStatus, bool) {
	switch o.Kind {
	case OutcomeSuccess:
		return StatusCompleted, true
	case OutcomeFailure:
		return StatusFailed, true
	case OutcomeTimeout:
		return StatusTimeout, true
	default:
		return "", false
	}
}

// AmountMatches reports whether the confirmed amount, if any, equals the requested amount
func (o Outcome) AmountMatches(txn *Transaction) bool {
	return o.ConfirmedAmount == nil || *o.ConfirmedAmount == txn.Amount
}

// CurrencyMatches reports whether the confirmed currency, if any, equals the transaction currency
func (o Outcome) CurrencyMatches(txn *Transaction) bool {
	return o.ConfirmedCurrency == "" || strings.EqualFold(o.ConfirmedCurrency, txn.Currency)
}
