package core

// Metrics records engine-level measurements
type Metrics interface {
	// TransitionApplied counts a committed status change
	TransitionApplied(from, to, source string)
	// OutcomeRejected counts outcomes that were not applied, by reason
	OutcomeRejected(source, reason string)
	// CallbackReceived counts callback deliveries per gateway and result
	CallbackReceived(gateway, result string)
	// LedgerWrite counts ledger write attempts by result
	LedgerWrite(result string)
	// SweepCompleted records one reconciliation sweep
	SweepCompleted(examined, resolved, timedOut int, duration Duration)
}
