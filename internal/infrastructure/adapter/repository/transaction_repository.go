package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/model"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// Create saves a new pending transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"transaction_id": transaction.ID,
		"owner_id":       transaction.OwnerID,
	})

	transactionModel := transactionToModel(transaction)
	if err := r.db.WithContext(ctx).Omit("Correlations").Create(&transactionModel).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate client reference detected", map[string]any{
				"transaction_id":   transaction.ID,
				"owner_id":         transaction.OwnerID,
				"client_reference": transaction.ClientReference,
			})
			return errs.ErrDuplicateClientReference
		}

		r.logger.Error("Failed to create transaction", map[string]any{
			"transaction_id": transaction.ID,
			"owner_id":       transaction.OwnerID,
			"error":          err.Error(),
		})
		return r.errorClassifier.MapError(err, nil, nil)
	}

	r.logger.Info("Transaction created successfully", map[string]any{
		"transaction_id": transaction.ID,
		"owner_id":       transaction.OwnerID,
		"gateway":        transaction.Gateway,
	})
	return nil
}

// GetByID retrieves a transaction with its correlation IDs
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	err := r.db.WithContext(ctx).
		Preload("Correlations").
		Where("id = ?", id).
		First(&transactionModel).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Error("Failed to get transaction", map[string]any{
				"transaction_id": id,
				"error":          err.Error(),
			})
		}
		return nil, r.errorClassifier.MapError(err, errs.ErrTransactionNotFound, nil)
	}

	return transactionToEntity(&transactionModel), nil
}

// GetByClientReference retrieves a transaction by the owner's idempotency key
func (r *TransactionRepository) GetByClientReference(ctx context.Context, ownerID, reference string) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	err := r.db.WithContext(ctx).
		Preload("Correlations").
		Where("owner_id = ? AND client_reference = ?", ownerID, reference).
		First(&transactionModel).Error
	if err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrTransactionNotFound, nil)
	}

	return transactionToEntity(&transactionModel), nil
}

// GetByCorrelationID resolves a gateway identifier through the correlation table
func (r *TransactionRepository) GetByCorrelationID(ctx context.Context, gateway, value string) (*entity.Transaction, error) {
	var correlation model.TransactionCorrelation
	err := r.db.WithContext(ctx).
		Where("gateway = ? AND value = ?", gateway, value).
		First(&correlation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debug("No transaction for correlation ID", map[string]any{
				"gateway":        gateway,
				"correlation_id": value,
			})
		}
		return nil, r.errorClassifier.MapError(err, errs.ErrTransactionNotFound, nil)
	}

	return r.GetByID(ctx, correlation.TransactionID)
}

// AttachCorrelationIDs inserts the correlation rows of a transaction
func (r *TransactionRepository) AttachCorrelationIDs(
	ctx context.Context,
	transactionID, gateway string,
	ids entity.CorrelationIDs,
) error {
	if len(ids) == 0 {
		return nil
	}

	rows := make([]model.TransactionCorrelation, 0, len(ids))
	for i, id := range ids {
		rows = append(rows, model.TransactionCorrelation{
			TransactionID: transactionID,
			Gateway:       gateway,
			Kind:          string(id.Kind),
			Value:         id.Value,
			Position:      i,
		})
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		r.logger.Error("Failed to attach correlation IDs", map[string]any{
			"transaction_id":  transactionID,
			"gateway":         gateway,
			"correlation_ids": ids.Values(),
			"error":           err.Error(),
		})
		return r.errorClassifier.MapError(err, nil, errs.ErrDuplicateCorrelationID)
	}

	r.logger.Debug("Correlation IDs attached", map[string]any{
		"transaction_id":  transactionID,
		"correlation_ids": ids.Values(),
	})
	return nil
}

// TransitionStatus performs a conditional update keyed on the current status
func (r *TransactionRepository) TransitionStatus(
	ctx context.Context,
	id string,
	from []entity.TransactionStatus,
	update persistence.StatusUpdate,
) (bool, error) {
	fromValues := make([]string, 0, len(from))
	for _, status := range from {
		fromValues = append(fromValues, string(status))
	}

	updates := map[string]any{
		"status":     string(update.Status),
		"updated_at": update.UpdatedAt,
	}
	if update.ResultCode != "" {
		updates["result_code"] = update.ResultCode
	}
	if update.ResultDescription != "" {
		updates["result_description"] = update.ResultDescription
	}
	if update.CompletedAt != nil {
		updates["completed_at"] = update.CompletedAt
	}
	if update.Metadata != nil {
		updates["metadata"] = datatypes.JSONMap(update.Metadata)
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status IN ?", id, fromValues).
		Updates(updates)
	if result.Error != nil {
		r.logger.Error("Failed to transition transaction status", map[string]any{
			"transaction_id": id,
			"from":           fromValues,
			"to":             update.Status,
			"error":          result.Error.Error(),
		})
		return false, r.errorClassifier.MapError(result.Error, nil, nil)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Conditional status update matched no row", map[string]any{
			"transaction_id": id,
			"from":           fromValues,
			"to":             update.Status,
		})
		return false, nil
	}

	r.logger.Debug("Transaction status updated", map[string]any{
		"transaction_id": id,
		"to":             update.Status,
	})
	return true, nil
}

// ListAwaitingOutcome returns in-flight transactions that have not changed since cutoff
func (r *TransactionRepository) ListAwaitingOutcome(ctx context.Context, cutoff time.Time, limit int) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Preload("Correlations").
		Where("status IN ? AND updated_at < ?",
			[]string{string(entity.StatusProcessing), string(entity.StatusTimeout)}, cutoff).
		Order("updated_at ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		r.logger.Error("Failed to list transactions awaiting outcome", map[string]any{
			"cutoff": cutoff,
			"error":  err.Error(),
		})
		return nil, r.errorClassifier.MapError(err, nil, nil)
	}

	return toTransactionEntities(models), nil
}

// ListCompletedWithoutLedger finds completed transactions whose ledger entry is missing
func (r *TransactionRepository) ListCompletedWithoutLedger(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Preload("Correlations").
		Where("status = ?", string(entity.StatusCompleted)).
		Where("NOT EXISTS (SELECT 1 FROM ledger_entries le WHERE le.transaction_id = transactions.id)").
		Order("completed_at ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, r.errorClassifier.MapError(err, nil, nil)
	}

	return toTransactionEntities(models), nil
}

// ListByOwner returns an owner's transactions, newest first
func (r *TransactionRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Preload("Correlations").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, r.errorClassifier.MapError(err, nil, nil)
	}

	return toTransactionEntities(models), nil
}

func toTransactionEntities(models []model.Transaction) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, transactionToEntity(&models[i]))
	}
	return transactions
}
