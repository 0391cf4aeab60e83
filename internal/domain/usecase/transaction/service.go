package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/usecase"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// Config holds the engine settings the transaction service needs
type Config struct {
	DefaultCurrency   string
	GatewayTimeout    coreport.Duration // Bound on one initiation call
	QueryTimeout      coreport.Duration // Bound on one status query
	Sweep             SweepConfig
	WorkersPerGateway int
	QueueSize         int
}

// Dependencies groups the collaborators of the transaction service
type Dependencies struct {
	UnitOfWork   persistence.UnitOfWork
	Registry     *gateway.Registry
	Ledger       LedgerRecorder
	Alerter      coreport.Alerter
	Metrics      coreport.Metrics
	TimeProvider coreport.TimeProvider
	Logger       coreport.Logger
}

// Service ties together all the components of the transaction engine
type Service struct {
	transactionRepo persistence.TransactionRepository
	initiator       *Initiator
	callbacks       *CallbackProcessor
	reconciler      *Reconciler
	sweeper         *Sweeper
	timeProvider    coreport.TimeProvider
	metrics         coreport.Metrics
	logger          coreport.Logger
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// NewTransactionService creates a new transaction service
func NewTransactionService(deps Dependencies, cfg Config) *Service {
	txnRepo := deps.UnitOfWork.GetTransactionRepository(context.Background())

	validator := NewTransactionValidator(deps.Registry, cfg.DefaultCurrency)
	idempotencyHandler := NewIdempotencyHandler(txnRepo)
	applier := NewOutcomeApplier(txnRepo, deps.Ledger, deps.TimeProvider, deps.Metrics, deps.Logger)

	initiator := NewInitiator(deps.UnitOfWork, validator, idempotencyHandler, deps.Alerter,
		deps.TimeProvider, deps.Metrics, deps.Logger, cfg.GatewayTimeout)
	callbacks := NewCallbackProcessor(deps.Registry, txnRepo, applier, deps.Metrics, deps.Logger)
	reconciler := NewReconciler(deps.Registry, txnRepo, applier, deps.TimeProvider, deps.Logger,
		cfg.Sweep.StaleAfter, cfg.QueryTimeout)

	queues := NewQueueManager(deps.Logger, cfg.WorkersPerGateway, cfg.QueueSize)
	sweeper := NewSweeper(txnRepo, reconciler, applier, deps.Ledger, queues,
		deps.TimeProvider, deps.Metrics, deps.Logger, cfg.Sweep)

	deps.Logger.Info("Transaction engine initialized", map[string]any{
		"gateways":        deps.Registry.Gateways(),
		"gateway_timeout": cfg.GatewayTimeout.Std().String(),
		"stale_after":     cfg.Sweep.StaleAfter.Std().String(),
	})

	return &Service{
		transactionRepo: txnRepo,
		initiator:       initiator,
		callbacks:       callbacks,
		reconciler:      reconciler,
		sweeper:         sweeper,
		timeProvider:    deps.TimeProvider,
		metrics:         deps.Metrics,
		logger:          deps.Logger,
	}
}

// Initiate validates, persists and submits a transaction to its gateway
func (s *Service) Initiate(ctx context.Context, req usecase.InitiateRequest) (*usecase.InitiateResult, error) {
	return s.initiator.Initiate(ctx, req)
}

// GetStatus returns the transaction, reconciling it first when it has gone stale
func (s *Service) GetStatus(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	if strings.TrimSpace(transactionID) == "" {
		return nil, fmt.Errorf("%w: transaction ID is required", errs.ErrInvalidRequest)
	}
	return s.reconciler.GetStatus(ctx, transactionID)
}

// Reconcile queries the gateway for an in-flight transaction and applies the answer
func (s *Service) Reconcile(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	if strings.TrimSpace(transactionID) == "" {
		return nil, fmt.Errorf("%w: transaction ID is required", errs.ErrInvalidRequest)
	}
	return s.reconciler.Reconcile(ctx, transactionID)
}

// Cancel cancels a transaction that has not reached the gateway
func (s *Service) Cancel(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	txn, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status != entity.StatusPending {
		return txn, fmt.Errorf("%w: cannot cancel a %s transaction", errs.ErrInvalidTransition, txn.Status)
	}

	now := s.timeProvider.Now()
	update := persistence.StatusUpdate{
		Status:            entity.StatusCancelled,
		ResultDescription: "cancelled by caller",
		UpdatedAt:         now,
		CompletedAt:       &now,
	}
	applied, err := s.transactionRepo.TransitionStatus(ctx, txn.ID, []entity.TransactionStatus{entity.StatusPending}, update)
	if err != nil {
		return nil, err
	}
	if !applied {
		current, err := s.transactionRepo.GetByID(ctx, txn.ID)
		if err != nil {
			return nil, err
		}
		return current, fmt.Errorf("%w: cannot cancel a %s transaction", errs.ErrInvalidTransition, current.Status)
	}

	s.metrics.TransitionApplied(string(entity.StatusPending), string(entity.StatusCancelled), "cancel")
	s.logger.Info("Transaction cancelled", map[string]any{"transaction_id": txn.ID})
	return applyUpdate(txn, update), nil
}

// HandleCallback authenticates and applies an asynchronous gateway notification
func (s *Service) HandleCallback(ctx context.Context, gatewayName string, payload []byte, signature string) (*usecase.CallbackAck, error) {
	return s.callbacks.Handle(ctx, gatewayName, payload, signature)
}

// ListByOwner returns an owner's transactions, newest first
func (s *Service) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Transaction, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, errs.ErrInvalidOwnerID
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.transactionRepo.ListByOwner(ctx, ownerID, limit, offset)
}

// Sweeper returns the background reconciliation sweeper
func (s *Service) Sweeper() *Sweeper {
	return s.sweeper
}

// Shutdown stops the sweeper and its workers
func (s *Service) Shutdown() {
	s.sweeper.Stop()
}
