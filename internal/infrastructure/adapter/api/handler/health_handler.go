package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/gateway/transport"
)

// Pinger checks database reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerSnapshotter reports gateway breaker states
type BreakerSnapshotter interface {
	Snapshot() []transport.BreakerStatus
}

// HealthHandler reports liveness of the engine's dependencies
type HealthHandler struct {
	db       Pinger
	breakers BreakerSnapshotter
}

// NewHealthHandler creates a health handler
func NewHealthHandler(db Pinger, breakers BreakerSnapshotter) *HealthHandler {
	return &HealthHandler{db: db, breakers: breakers}
}

// Health handles the GET /healthz endpoint. An open breaker degrades the status
// but only an unreachable database fails it.
func (h *HealthHandler) Health(c *gin.Context) {
	resp := dto.HealthResponse{Status: "ok", Database: "up", Breakers: h.breakers.Snapshot()}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		resp.Status = "unavailable"
		resp.Database = "down"
		resp.DatabaseError = err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	for _, b := range resp.Breakers {
		if b.State != "closed" {
			resp.Status = "degraded"
			break
		}
	}
	c.JSON(http.StatusOK, resp)
}
