package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/api/middleware"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// httpStatus maps domain errors to HTTP status codes
func httpStatus(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrTransactionNotFound),
		errors.Is(err, domainerr.ErrLedgerEntryNotFound),
		errors.Is(err, domainerr.ErrUnknownTransaction),
		errors.Is(err, domainerr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrInvalidTransition),
		errors.Is(err, domainerr.ErrDuplicateClientReference),
		errors.Is(err, domainerr.ErrDuplicateCorrelationID):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrAmbiguous):
		return http.StatusAccepted
	case errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrInvalidOwnerID),
		errors.Is(err, domainerr.ErrInvalidPurpose),
		errors.Is(err, domainerr.ErrInvalidDirection),
		errors.Is(err, domainerr.ErrUnsupportedGateway),
		errors.Is(err, domainerr.ErrInvalidCallback):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrGatewayUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domainerr.ErrGatewayRejected):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse builds the error body. Server errors never leak their cause.
func errorResponse(c *gin.Context, status int, err error) dto.ErrorResponse {
	message := err.Error()
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway && status != http.StatusServiceUnavailable {
		message = "Internal server error"
	}
	return dto.ErrorResponse{
		Code:      domainerr.ErrorCode(err),
		Message:   message,
		RequestID: middleware.GetRequestID(c),
	}
}

// respondError logs the error at a level fitting its status and writes the error body
func respondError(c *gin.Context, logger coreport.Logger, err error, fields map[string]any) {
	status := httpStatus(err)
	logFields := map[string]any{
		"error":      err.Error(),
		"status":     status,
		"request_id": middleware.GetRequestID(c),
	}
	for k, v := range fields {
		logFields[k] = v
	}
	var lf interface{ LogFields() map[string]any }
	if errors.As(err, &lf) {
		for k, v := range lf.LogFields() {
			logFields[k] = v
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", logFields)
	} else {
		logger.Warn("Request rejected", logFields)
	}
	_ = c.Error(err)
	c.JSON(status, errorResponse(c, status, err))
}

// pagination reads limit and offset query parameters
func pagination(c *gin.Context) (int, int, error) {
	limit, offset := defaultPageLimit, 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return 0, 0, domainerr.ErrInvalidRequest
		}
		limit = min(v, maxPageLimit)
	}
	if raw := c.Query("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, 0, domainerr.ErrInvalidRequest
		}
		offset = v
	}
	return limit, offset, nil
}
