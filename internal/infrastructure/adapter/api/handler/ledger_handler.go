package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/api/dto"
)

// LedgerHandler serves read access to the ledger
type LedgerHandler struct {
	ledger          usecase.LedgerUseCase
	defaultCurrency string
	logger          coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledger usecase.LedgerUseCase, defaultCurrency string, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, defaultCurrency: strings.ToUpper(defaultCurrency), logger: logger}
}

// ListByOwner handles the GET /owners/:ownerId/ledger endpoint
func (h *LedgerHandler) ListByOwner(c *gin.Context) {
	limit, offset, err := pagination(c)
	if err != nil {
		respondError(c, h.logger, err, nil)
		return
	}

	entries, err := h.ledger.ListByOwner(c.Request.Context(), c.Param("ownerId"), limit, offset)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"owner_id": c.Param("ownerId")})
		return
	}

	items := make([]entity.LedgerEntryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, entry.ToResponse())
	}
	c.JSON(http.StatusOK, dto.LedgerListResponse{Items: items, Limit: limit, Offset: offset})
}

// GetByTransaction handles the GET /transactions/:id/ledger endpoint
func (h *LedgerHandler) GetByTransaction(c *gin.Context) {
	entry, err := h.ledger.GetByTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"transaction_id": c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, entry.ToResponse())
}

// Balance handles the GET /owners/:ownerId/balance endpoint
func (h *LedgerHandler) Balance(c *gin.Context) {
	ownerID := c.Param("ownerId")
	currency := strings.ToUpper(c.DefaultQuery("currency", h.defaultCurrency))

	balance, err := h.ledger.Balance(c.Request.Context(), ownerID, currency)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"owner_id": ownerID})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		OwnerID:          ownerID,
		Currency:         currency,
		Balance:          balance,
		FormattedBalance: entity.FormatAmount(balance, currency),
	})
}
