package alert

import (
	"context"
	"errors"

	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
)

// LogAlerter writes alerts to the application log
type LogAlerter struct {
	logger coreport.Logger
}

// NewLogAlerter creates an alerter backed by the logger
func NewLogAlerter(logger coreport.Logger) *LogAlerter {
	return &LogAlerter{logger: logger}
}

// Alert logs the alert at error level for critical alerts, warn otherwise
func (a *LogAlerter) Alert(_ context.Context, alert coreport.Alert) error {
	fields := make(map[string]any, len(alert.Fields)+3)
	for k, v := range alert.Fields {
		fields[k] = v
	}
	fields["alert_title"] = alert.Title
	fields["alert_severity"] = string(alert.Severity)
	fields["alert_message"] = alert.Message

	if alert.Severity == coreport.SeverityCritical {
		a.logger.Error("Operator alert", fields)
	} else {
		a.logger.Warn("Operator alert", fields)
	}
	return nil
}

// MultiAlerter fans an alert out to every delivery channel
type MultiAlerter []coreport.Alerter

// Alert delivers to all channels and joins their errors
func (m MultiAlerter) Alert(ctx context.Context, alert coreport.Alert) error {
	var errs []error
	for _, a := range m {
		if err := a.Alert(ctx, alert); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
