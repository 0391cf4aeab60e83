package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/api/dto"
)

const (
	maxCallbackBytes       = 256 << 10
	defaultSignatureHeader = "X-Signature"
)

// CallbackHandler receives asynchronous gateway notifications
type CallbackHandler struct {
	transactions     usecase.TransactionUseCase
	signatureHeaders map[string]string
	logger           coreport.Logger
}

// NewCallbackHandler creates a callback handler. signatureHeaders names the header each gateway
// signs with; gateways not listed use X-Signature.
func NewCallbackHandler(transactions usecase.TransactionUseCase, signatureHeaders map[string]string, logger coreport.Logger) *CallbackHandler {
	return &CallbackHandler{
		transactions:     transactions,
		signatureHeaders: signatureHeaders,
		logger:           logger,
	}
}

// Handle handles the POST /callbacks/:gateway endpoint.
// Duplicates and lost races are acknowledged with 200 so the gateway stops retrying;
// an ambiguous outcome is 202 and a ledger failure 500 so that it retries.
func (h *CallbackHandler) Handle(c *gin.Context) {
	gatewayName := c.Param("gateway")

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCallbackBytes+1))
	if err != nil {
		respondError(c, h.logger, domainerr.ErrInvalidCallback, map[string]any{"gateway": gatewayName})
		return
	}
	if len(payload) > maxCallbackBytes {
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse(c, http.StatusRequestEntityTooLarge, domainerr.ErrInvalidCallback))
		return
	}

	header := defaultSignatureHeader
	if name, ok := h.signatureHeaders[gatewayName]; ok {
		header = name
	}

	ack, err := h.transactions.HandleCallback(c.Request.Context(), gatewayName, payload, c.GetHeader(header))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.CallbackResponse{
			TransactionID: ack.TransactionID,
			Status:        string(ack.Status),
			Applied:       ack.Applied,
		})
	case errors.Is(err, domainerr.ErrUnsupportedGateway):
		c.JSON(http.StatusNotFound, errorResponse(c, http.StatusNotFound, err))
	case errors.Is(err, domainerr.ErrAmbiguous) && ack != nil:
		h.logger.Warn("Callback outcome left transaction unchanged", map[string]any{
			"gateway":        gatewayName,
			"transaction_id": ack.TransactionID,
			"error":          err.Error(),
		})
		c.JSON(http.StatusAccepted, dto.CallbackResponse{
			TransactionID: ack.TransactionID,
			Status:        string(ack.Status),
			Message:       err.Error(),
		})
	default:
		respondError(c, h.logger, err, map[string]any{"gateway": gatewayName})
	}
}
