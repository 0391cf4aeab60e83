package database

import (
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
)

const startedAtKey = "po:query_started_at"

// QueryRecorder receives the latency of every GORM statement
type QueryRecorder interface {
	QueryObserved(operation, table string, elapsed time.Duration)
}

// MetricsCollector is a GORM plugin that times statements and reports slow ones
type MetricsCollector struct {
	recorder      QueryRecorder
	logger        coreport.Logger
	slowThreshold time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(recorder QueryRecorder, logger coreport.Logger, slowThreshold time.Duration) *MetricsCollector {
	return &MetricsCollector{
		recorder:      recorder,
		logger:        logger,
		slowThreshold: slowThreshold,
	}
}

// Name implements gorm.Plugin
func (c *MetricsCollector) Name() string {
	return "payments:query_metrics"
}

// Initialize implements gorm.Plugin
func (c *MetricsCollector) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		operation string
		before    func(string, func(*gorm.DB)) error
		after     func(string, func(*gorm.DB)) error
	}{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}

	for _, h := range hooks {
		if err := h.before(c.Name()+":before_"+h.operation, c.before); err != nil {
			return err
		}
		if err := h.after(c.Name()+":after_"+h.operation, c.after(h.operation)); err != nil {
			return err
		}
	}
	return nil
}

func (c *MetricsCollector) before(db *gorm.DB) {
	db.InstanceSet(startedAtKey, time.Now())
}

func (c *MetricsCollector) after(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		value, ok := db.InstanceGet(startedAtKey)
		if !ok {
			return
		}
		startedAt, ok := value.(time.Time)
		if !ok {
			return
		}

		elapsed := time.Since(startedAt)
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		c.recorder.QueryObserved(operation, table, elapsed)

		if c.slowThreshold > 0 && elapsed > c.slowThreshold {
			c.logger.Warn("Slow database query detected", map[string]any{
				"operation":     operation,
				"table":         table,
				"duration_ms":   elapsed.Milliseconds(),
				"rows_affected": db.Statement.RowsAffected,
			})
		}
	}
}
