package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
)

// BackfillCompletedAt sets completed_at on settled transactions written before 1.1.0,
// which only stamped updated_at
type BackfillCompletedAt struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBackfillCompletedAt creates a new migration instance
func NewBackfillCompletedAt(db *gorm.DB, logger coreport.Logger) *BackfillCompletedAt {
	return &BackfillCompletedAt{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *BackfillCompletedAt) Run(ctx context.Context) error {
	m.logger.Info("Backfilling completed_at on settled transactions", nil)

	if !m.db.Migrator().HasColumn("transactions", "completed_at") {
		if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions ADD COLUMN completed_at TIMESTAMP NULL`).Error; err != nil {
			m.logger.Error("Failed to add completed_at column", map[string]any{"error": err.Error()})
			return err
		}
	}

	result := m.db.WithContext(ctx).Exec(`
		UPDATE transactions
		SET completed_at = updated_at
		WHERE completed_at IS NULL AND status IN ('completed', 'failed', 'timeout')
	`)
	if result.Error != nil {
		m.logger.Error("Failed to backfill completed_at", map[string]any{"error": result.Error.Error()})
		return result.Error
	}

	m.logger.Info("Backfilled completed_at", map[string]any{"rows": result.RowsAffected})
	return nil
}
