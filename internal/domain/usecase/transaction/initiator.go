package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/usecase"
)

const sourceInitiate = "initiate"

// recordTimeout bounds the writes that store the gateway's answer
const recordTimeout = 10 * coreport.Second

// errNoCorrelationIDs is returned when a gateway accepts a request without identifying it
var errNoCorrelationIDs = errors.New("gateway accepted the request without correlation IDs")

// Initiator validates, persists and submits new transactions
type Initiator struct {
	uow                persistence.UnitOfWork
	validator          *TransactionValidator
	idempotencyHandler *IdempotencyHandler
	alerter            coreport.Alerter
	timeProvider       coreport.TimeProvider
	metrics            coreport.Metrics
	logger             coreport.Logger
	gatewayTimeout     coreport.Duration
}

// NewInitiator creates a new Initiator
func NewInitiator(
	uow persistence.UnitOfWork,
	validator *TransactionValidator,
	idempotencyHandler *IdempotencyHandler,
	alerter coreport.Alerter,
	timeProvider coreport.TimeProvider,
	metrics coreport.Metrics,
	logger coreport.Logger,
	gatewayTimeout coreport.Duration,
) *Initiator {
	return &Initiator{
		uow:                uow,
		validator:          validator,
		idempotencyHandler: idempotencyHandler,
		alerter:            alerter,
		timeProvider:       timeProvider,
		metrics:            metrics,
		logger:             logger,
		gatewayTimeout:     gatewayTimeout,
	}
}

// Initiate runs the initiation leg. On return the transaction is processing or failed,
// except for a replayed client reference, which returns the earlier transaction as stored.
func (i *Initiator) Initiate(ctx context.Context, req usecase.InitiateRequest) (*usecase.InitiateResult, error) {
	req, adapter, err := i.validator.ValidateInitiate(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidRequest, err)
	}

	repo := i.uow.GetTransactionRepository(ctx)

	existing, found, err := i.idempotencyHandler.CheckClientReference(ctx, req.OwnerID, req.ClientReference)
	if err != nil {
		return nil, err
	}
	if found {
		return i.replay(existing, req)
	}

	opts := []entity.TransactionOption{
		entity.WithClientReference(req.ClientReference),
		entity.WithRelatedItem(req.RelatedItem),
	}
	txn, err := entity.NewTransaction(
		req.OwnerID,
		req.Direction,
		req.Amount,
		req.Currency,
		req.Purpose,
		req.Gateway,
		entity.GatewayTransactionType(req.TransactionType),
		i.timeProvider,
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidRequest, err)
	}

	if err := repo.Create(ctx, txn); err != nil {
		if errors.Is(err, errs.ErrDuplicateClientReference) {
			// A concurrent request with the same reference won the insert
			existing, found, lookupErr := i.idempotencyHandler.CheckClientReference(ctx, req.OwnerID, req.ClientReference)
			if lookupErr == nil && found {
				return i.replay(existing, req)
			}
		}
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	log := i.logger.With(map[string]any{
		"transaction_id": txn.ID,
		"owner_id":       txn.OwnerID,
		"gateway":        txn.Gateway,
		"type":           string(txn.Type),
	})
	log.Info("Transaction created", map[string]any{
		"amount":    txn.Amount,
		"currency":  txn.Currency,
		"direction": string(txn.Direction),
		"purpose":   string(txn.Purpose),
	})

	gatewayCtx, cancel := i.timeProvider.WithTimeout(ctx, i.gatewayTimeout)
	ack, err := adapter.Initiate(gatewayCtx, gateway.Request{
		TransactionID: txn.ID,
		OwnerID:       txn.OwnerID,
		Direction:     txn.Direction,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Purpose:       txn.Purpose,
		Params:        req.GatewayParams,
	})
	cancel()

	// The gateway may already have acted, so its answer is stored even when the caller has gone away
	recordCtx, cancelRecord := i.timeProvider.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancelRecord()

	if err == nil && (ack == nil || len(ack.CorrelationIDs) == 0) {
		err = errNoCorrelationIDs
	}
	if err != nil {
		log.Warn("Gateway did not accept transaction", map[string]any{"error": err.Error()})
		return i.fail(recordCtx, txn, err)
	}

	if err := i.markProcessing(recordCtx, txn, ack); err != nil {
		if errors.Is(err, errs.ErrDuplicateCorrelationID) {
			log.Error("Gateway returned a correlation ID already bound to another transaction", map[string]any{
				"correlation_ids": ack.CorrelationIDs.Values(),
			})
			return i.fail(recordCtx, txn, err)
		}
		return i.orphaned(recordCtx, txn, ack, err)
	}

	log.Info("Transaction submitted to gateway", map[string]any{
		"correlation_ids": ack.CorrelationIDs.Values(),
		"response_code":   ack.ResponseCode,
	})

	return &usecase.InitiateResult{
		TransactionID:  txn.ID,
		CorrelationIDs: txn.CorrelationIDs,
		Status:         txn.Status,
		Transaction:    txn,
	}, nil
}

// markProcessing stores the correlation IDs and the status change together
func (i *Initiator) markProcessing(ctx context.Context, txn *entity.Transaction, ack *gateway.Ack) (err error) {
	txCtx, err := i.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := i.uow.Rollback(txCtx); rbErr != nil {
				i.logger.Error("Failed to roll back initiation", map[string]any{
					"transaction_id": txn.ID,
					"error":          rbErr.Error(),
				})
			}
		}
	}()

	repo := i.uow.GetTransactionRepository(txCtx)
	if err = repo.AttachCorrelationIDs(txCtx, txn.ID, txn.Gateway, ack.CorrelationIDs); err != nil {
		return err
	}

	update := persistence.StatusUpdate{
		Status:            entity.StatusProcessing,
		ResultCode:        ack.ResponseCode,
		ResultDescription: ack.ResponseDescription,
		UpdatedAt:         i.timeProvider.Now(),
		Metadata:          ack.Metadata,
	}
	applied, err := repo.TransitionStatus(txCtx, txn.ID, []entity.TransactionStatus{entity.StatusPending}, update)
	if err != nil {
		return err
	}
	if !applied {
		err = fmt.Errorf("%w: transaction %s left pending while at the gateway", errs.ErrInvalidTransition, txn.ID)
		return err
	}

	if err = i.uow.Commit(txCtx); err != nil {
		return err
	}

	i.metrics.TransitionApplied(string(entity.StatusPending), string(entity.StatusProcessing), sourceInitiate)
	txn.CorrelationIDs = ack.CorrelationIDs
	*txn = *applyUpdate(txn, update)
	return nil
}

// fail records the initiation failure and returns the failed transaction with a GatewayRejectedError
func (i *Initiator) fail(ctx context.Context, txn *entity.Transaction, cause error) (*usecase.InitiateResult, error) {
	now := i.timeProvider.Now()
	update := persistence.StatusUpdate{
		Status:            entity.StatusFailed,
		ResultDescription: cause.Error(),
		UpdatedAt:         now,
		CompletedAt:       &now,
	}

	repo := i.uow.GetTransactionRepository(ctx)
	applied, err := repo.TransitionStatus(ctx, txn.ID, []entity.TransactionStatus{entity.StatusPending}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to record gateway rejection: %w", err)
	}
	if applied {
		i.metrics.TransitionApplied(string(entity.StatusPending), string(entity.StatusFailed), sourceInitiate)
		*txn = *applyUpdate(txn, update)
	} else if current, err := repo.GetByID(ctx, txn.ID); err == nil {
		txn = current
	}

	result := &usecase.InitiateResult{
		TransactionID: txn.ID,
		Status:        txn.Status,
		Transaction:   txn,
	}
	return result, errs.NewGatewayRejectedError(txn.ID, txn.Gateway, cause.Error(), cause)
}

// orphaned handles a gateway acceptance that could not be recorded. The gateway may move money
// for a transaction whose callbacks can't be matched, so an operator is told.
func (i *Initiator) orphaned(ctx context.Context, txn *entity.Transaction, ack *gateway.Ack, cause error) (*usecase.InitiateResult, error) {
	fields := map[string]any{
		"transaction_id":  txn.ID,
		"gateway":         txn.Gateway,
		"correlation_ids": ack.CorrelationIDs.Values(),
		"error":           cause.Error(),
	}
	i.logger.Error("Gateway accepted transaction but acceptance could not be stored", fields)

	alertCtx, cancel := i.timeProvider.WithTimeout(context.WithoutCancel(ctx), 10*coreport.Second)
	defer cancel()
	if err := i.alerter.Alert(alertCtx, coreport.Alert{
		Severity: coreport.SeverityCritical,
		Title:    "Unrecorded gateway acceptance",
		Message: fmt.Sprintf("Gateway %s accepted transaction %s (%s) but it could not be marked processing",
			txn.Gateway, txn.ID, entity.FormatAmount(txn.Amount, txn.Currency)+" "+txn.Currency),
		Fields: fields,
	}); err != nil {
		i.logger.Error("Failed to deliver alert", map[string]any{"error": err.Error()})
	}

	return i.fail(ctx, txn, cause)
}

// replay answers a repeated client reference with the stored transaction
func (i *Initiator) replay(existing *entity.Transaction, req usecase.InitiateRequest) (*usecase.InitiateResult, error) {
	if !SameRequest(existing, req) {
		return nil, fmt.Errorf("%w: %w: reference %q belongs to transaction %s",
			errs.ErrInvalidRequest, errs.ErrDuplicateClientReference, req.ClientReference, existing.ID)
	}

	i.logger.Info("Returning transaction for repeated client reference", map[string]any{
		"transaction_id":   existing.ID,
		"client_reference": req.ClientReference,
		"status":           string(existing.Status),
	})

	return &usecase.InitiateResult{
		TransactionID:  existing.ID,
		CorrelationIDs: existing.CorrelationIDs,
		Status:         existing.Status,
		Transaction:    existing,
	}, nil
}
