package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
)

// AdvancedIndexManager creates indexes that model tags can't express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

func (m *AdvancedIndexManager) isPostgres() bool {
	return m.db.Dialector.Name() == "postgres"
}

// CreateAdvancedIndexes creates partial and BRIN indexes. Both postgres and sqlite support partial indexes.
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced indexes", nil)
	db := m.db.WithContext(ctx)

	// The sweeper only ever scans transactions still waiting on the gateway
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_awaiting_outcome
		ON transactions (updated_at)
		WHERE status IN ('processing', 'timeout')
	`).Error; err != nil {
		m.logger.Error("Failed to create awaiting-outcome partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Ledger repair joins completed transactions against ledger entries
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_completed
		ON transactions (completed_at)
		WHERE status = 'completed'
	`).Error; err != nil {
		m.logger.Error("Failed to create completed transactions partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if !m.isPostgres() {
		return nil
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_ledger_entries_created_at_brin
		ON ledger_entries USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on ledger_entries.created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage settings. Failures are logged, not returned.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	if !m.isPostgres() {
		return
	}
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)
	db := m.db.WithContext(ctx)

	// Status rows are updated in place several times each
	if err := db.Exec(`ALTER TABLE transactions SET (fillfactor = 85)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec(`ALTER TABLE ledger_entries ALTER COLUMN owner_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for ledger_entries.owner_id", map[string]any{
			"error": err.Error(),
		})
	}
}
