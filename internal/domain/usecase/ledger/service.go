package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/usecase"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// Service serves ledger reads to downstream consumers
type Service struct {
	repo persistence.LedgerRepository
}

// NewService creates a new ledger read service
func NewService(repo persistence.LedgerRepository) *Service {
	return &Service{repo: repo}
}

var _ usecase.LedgerUseCase = (*Service)(nil)

// GetByTransaction returns the entry of a completed transaction
func (s *Service) GetByTransaction(ctx context.Context, transactionID string) (*entity.LedgerEntry, error) {
	if strings.TrimSpace(transactionID) == "" {
		return nil, fmt.Errorf("%w: transaction ID is required", errs.ErrInvalidRequest)
	}
	return s.repo.GetByTransactionID(ctx, transactionID)
}

// ListByOwner returns a page of an owner's entries
func (s *Service) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, errs.ErrInvalidOwnerID
	}
	limit, offset = NormalizePage(limit, offset)
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

// Balance sums an owner's entries in one currency
func (s *Service) Balance(ctx context.Context, ownerID, currency string) (int64, error) {
	if strings.TrimSpace(ownerID) == "" {
		return 0, errs.ErrInvalidOwnerID
	}
	if len(currency) != 3 {
		return 0, fmt.Errorf("%w: currency must be a 3-letter code", errs.ErrInvalidRequest)
	}
	return s.repo.BalanceByOwner(ctx, ownerID, strings.ToUpper(currency))
}

// NormalizePage clamps paging parameters
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
