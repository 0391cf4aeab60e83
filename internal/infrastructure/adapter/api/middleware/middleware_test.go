package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	domainerr "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/logger"
)

func TestMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.DebugLevel)
	log := logger.NewZapLoggerFromCore(core)

	router := gin.New()
	router.Use(RequestID(), ErrorHandler(log), Logger(log), CORS())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })
	router.POST("/callbacks/:gateway", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/ctx", func(c *gin.Context) {
		c.String(http.StatusOK, logger.RequestIDFromContext(c.Request.Context()))
	})

	t.Run("Echoes the caller's request ID onto the context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ctx", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Body.String())
		assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	})

	t.Run("Recovers panics as 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), fmt.Sprintf(`"code":%d`, domainerr.CodeInternalServer))
		assert.NotEmpty(t, logs.FilterMessage("Panic recovered in API request").All())
	})

	t.Run("Request log carries the gateway name", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/callbacks/card", nil))

		entries := logs.FilterMessage("Request processed").FilterField(zap.String("gateway", "card")).All()
		assert.Len(t, entries, 1)
	})

	t.Run("Preflight short-circuits", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ctx", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
