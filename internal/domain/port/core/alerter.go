package core

import "context"

// AlertSeverity ranks operator alerts
type AlertSeverity string

// Alert severities
const (
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is a message that needs a human to look at it
type Alert struct {
	Severity AlertSeverity
	Title    string
	Message  string
	Fields   map[string]any
}

// Alerter delivers operator alerts out of band
type Alerter interface {
	// Alert sends the alert. Implementations must not block past ctx.
	Alert(ctx context.Context, alert Alert) error
}
