package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/model"
)

// LedgerRepository stores ledger entries using GORM. It never updates or deletes rows.
type LedgerRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.LedgerRepository = (*LedgerRepository)(nil)

// Insert stores a new entry; the unique index on transaction_id rejects a second one
func (r *LedgerRepository) Insert(ctx context.Context, entry *entity.LedgerEntry) error {
	entryModel := ledgerEntryToModel(entry)
	if err := r.db.WithContext(ctx).Create(&entryModel).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Debug("Ledger entry already exists", map[string]any{
				"transaction_id": entry.TransactionID,
			})
			return errs.ErrDuplicateLedgerEntry
		}

		r.logger.Error("Failed to insert ledger entry", map[string]any{
			"transaction_id": entry.TransactionID,
			"owner_id":       entry.OwnerID,
			"error":          err.Error(),
		})
		return r.errorClassifier.MapError(err, nil, nil)
	}

	r.logger.Info("Ledger entry recorded", map[string]any{
		"entry_id":       entry.ID,
		"transaction_id": entry.TransactionID,
		"owner_id":       entry.OwnerID,
		"amount":         entry.Amount,
		"currency":       entry.Currency,
	})
	return nil
}

// GetByTransactionID returns the entry of a transaction
func (r *LedgerRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entity.LedgerEntry, error) {
	var entryModel model.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&entryModel).Error
	if err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrLedgerEntryNotFound, nil)
	}
	return ledgerEntryToEntity(&entryModel), nil
}

// ListByOwner returns an owner's entries, newest first
func (r *LedgerRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	var models []model.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, r.errorClassifier.MapError(err, nil, nil)
	}

	entries := make([]*entity.LedgerEntry, 0, len(models))
	for i := range models {
		entries = append(entries, ledgerEntryToEntity(&models[i]))
	}
	return entries, nil
}

// BalanceByOwner sums an owner's successful entries in one currency
func (r *LedgerRepository) BalanceByOwner(ctx context.Context, ownerID, currency string) (int64, error) {
	var balance int64
	err := r.db.WithContext(ctx).Model(&model.LedgerEntry{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("owner_id = ? AND currency = ? AND status = ?", ownerID, currency, string(entity.LedgerStatusSuccess)).
		Scan(&balance).Error
	if err != nil {
		return 0, r.errorClassifier.MapError(err, nil, nil)
	}
	return balance, nil
}
