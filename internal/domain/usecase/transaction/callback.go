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

// Callback results reported to metrics
const (
	callbackApplied         = "applied"
	callbackDuplicate       = "duplicate"
	callbackUnauthenticated = "unauthenticated"
	callbackMalformed       = "malformed"
	callbackUnknown         = "unknown"
	callbackAmbiguous       = "ambiguous"
	callbackError           = "error"
)

// CallbackProcessor ingests asynchronous gateway notifications
type CallbackProcessor struct {
	registry        *gateway.Registry
	transactionRepo persistence.TransactionRepository
	applier         *OutcomeApplier
	metrics         coreport.Metrics
	logger          coreport.Logger
}

// NewCallbackProcessor creates a new CallbackProcessor
func NewCallbackProcessor(
	registry *gateway.Registry,
	transactionRepo persistence.TransactionRepository,
	applier *OutcomeApplier,
	metrics coreport.Metrics,
	logger coreport.Logger,
) *CallbackProcessor {
	return &CallbackProcessor{
		registry:        registry,
		transactionRepo: transactionRepo,
		applier:         applier,
		metrics:         metrics,
		logger:          logger,
	}
}

// Handle authenticates the payload before anything touches the store, then applies its outcome
func (p *CallbackProcessor) Handle(
	ctx context.Context,
	gatewayName string,
	payload []byte,
	signature string,
) (*usecase.CallbackAck, error) {
	handler, err := p.registry.CallbackHandler(gatewayName)
	if err != nil {
		return nil, err
	}

	if err := handler.Verify(payload, signature); err != nil {
		p.logger.Warn("Rejected unauthenticated callback", map[string]any{
			"gateway":      gatewayName,
			"payload_size": len(payload),
		})
		p.metrics.CallbackReceived(gatewayName, callbackUnauthenticated)
		if !errors.Is(err, errs.ErrUnauthenticated) {
			err = fmt.Errorf("%w: %w", errs.ErrUnauthenticated, err)
		}
		return nil, err
	}

	note, err := handler.Parse(payload)
	if err != nil {
		p.logger.Warn("Malformed callback", map[string]any{
			"gateway": gatewayName,
			"error":   err.Error(),
		})
		p.metrics.CallbackReceived(gatewayName, callbackMalformed)
		return nil, err
	}

	txn, err := p.transactionRepo.GetByCorrelationID(ctx, gatewayName, note.CorrelationID)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			p.logger.Warn("Callback for unknown correlation ID", map[string]any{
				"gateway":        gatewayName,
				"correlation_id": note.CorrelationID,
				"result_code":    note.Outcome.ResultCode,
			})
			p.metrics.CallbackReceived(gatewayName, callbackUnknown)
			return nil, fmt.Errorf("%w: %s", errs.ErrUnknownTransaction, note.CorrelationID)
		}
		p.metrics.CallbackReceived(gatewayName, callbackError)
		return nil, err
	}

	updated, applied, err := p.applier.Apply(ctx, txn, note.Outcome, entity.SourceCallback)
	ack := &usecase.CallbackAck{
		TransactionID: updated.ID,
		Status:        updated.Status,
		Applied:       applied,
	}

	switch {
	case errs.IsAmbiguousError(err):
		p.metrics.CallbackReceived(gatewayName, callbackAmbiguous)
	case err != nil:
		p.metrics.CallbackReceived(gatewayName, callbackError)
	case applied:
		p.metrics.CallbackReceived(gatewayName, callbackApplied)
	default:
		p.metrics.CallbackReceived(gatewayName, callbackDuplicate)
	}

	return ack, err
}
