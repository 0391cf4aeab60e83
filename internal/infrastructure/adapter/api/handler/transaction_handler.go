package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/api/middleware"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactions    usecase.TransactionUseCase
	defaultCurrency string
	logger          coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactions usecase.TransactionUseCase,
	defaultCurrency string,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactions:    transactions,
		defaultCurrency: strings.ToUpper(defaultCurrency),
		logger:          logger,
	}
}

// Initiate handles the POST /transactions endpoint.
// A gateway refusal is still a recorded transaction: it comes back as 200 with status failed
// and the refusal in the error member.
func (h *TransactionHandler) Initiate(c *gin.Context) {
	var req dto.InitiateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:      domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message:   "Invalid request format: " + err.Error(),
			RequestID: middleware.GetRequestID(c),
		})
		return
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = h.defaultCurrency
	}
	amount, err := entity.ParseAmount(req.Amount, currency)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"owner_id": req.OwnerID})
		return
	}

	var related *entity.RelatedItem
	if req.RelatedItemID != "" {
		related = &entity.RelatedItem{ID: req.RelatedItemID, Type: entity.RelatedItemType(req.RelatedItemType)}
	}

	result, err := h.transactions.Initiate(c.Request.Context(), usecase.InitiateRequest{
		OwnerID:         req.OwnerID,
		ClientReference: req.ClientReference,
		Direction:       req.Direction,
		Amount:          amount,
		Currency:        currency,
		Purpose:         req.Purpose,
		RelatedItem:     related,
		Gateway:         req.Gateway,
		TransactionType: req.TransactionType,
		GatewayParams:   req.GatewayParams,
	})

	var rejected *domainerr.GatewayRejectedError
	switch {
	case errors.As(err, &rejected) && result != nil && result.Transaction != nil:
		h.logger.Warn("Gateway refused transaction", rejected.LogFields())
		resp := dto.NewTransactionResponse(result.Transaction)
		errResp := errorResponse(c, http.StatusBadGateway, err)
		resp.Error = &errResp
		c.JSON(http.StatusOK, resp)
	case err != nil:
		respondError(c, h.logger, err, map[string]any{
			"owner_id": req.OwnerID,
			"gateway":  req.Gateway,
		})
	default:
		c.JSON(http.StatusCreated, dto.NewTransactionResponse(result.Transaction))
	}
}

// Get handles the GET /transactions/:id endpoint
func (h *TransactionHandler) Get(c *gin.Context) {
	txn, err := h.transactions.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"transaction_id": c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

// Reconcile handles the POST /transactions/:id/reconcile endpoint.
// An inconclusive answer returns 202 with the unchanged transaction.
func (h *TransactionHandler) Reconcile(c *gin.Context) {
	txn, err := h.transactions.Reconcile(c.Request.Context(), c.Param("id"))
	if err != nil && txn != nil && errors.Is(err, domainerr.ErrAmbiguous) {
		resp := dto.NewTransactionResponse(txn)
		errResp := errorResponse(c, http.StatusAccepted, err)
		resp.Error = &errResp
		c.JSON(http.StatusAccepted, resp)
		return
	}
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"transaction_id": c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

// Cancel handles the POST /transactions/:id/cancel endpoint
func (h *TransactionHandler) Cancel(c *gin.Context) {
	txn, err := h.transactions.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"transaction_id": c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

// ListByOwner handles the GET /owners/:ownerId/transactions endpoint
func (h *TransactionHandler) ListByOwner(c *gin.Context) {
	limit, offset, err := pagination(c)
	if err != nil {
		respondError(c, h.logger, err, nil)
		return
	}

	txns, err := h.transactions.ListByOwner(c.Request.Context(), c.Param("ownerId"), limit, offset)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"owner_id": c.Param("ownerId")})
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		items = append(items, dto.NewTransactionResponse(txn))
	}
	c.JSON(http.StatusOK, dto.TransactionListResponse{Items: items, Limit: limit, Offset: offset})
}
