package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Transactions *handler.TransactionHandler
	Callbacks    *handler.CallbackHandler
	Ledger       *handler.LedgerHandler
	Health       *handler.HealthHandler
	Metrics      http.Handler // Optional
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	// Transaction routes
	transactions := router.Group("/transactions")
	{
		transactions.POST("", h.Transactions.Initiate)
		transactions.GET("/:id", h.Transactions.Get)
		transactions.POST("/:id/cancel", h.Transactions.Cancel)
		transactions.POST("/:id/reconcile", h.Transactions.Reconcile)
		transactions.GET("/:id/ledger", h.Ledger.GetByTransaction)
	}

	// Owner routes
	owners := router.Group("/owners/:ownerId")
	{
		owners.GET("/transactions", h.Transactions.ListByOwner)
		owners.GET("/ledger", h.Ledger.ListByOwner)
		owners.GET("/balance", h.Ledger.Balance)
	}

	// Gateway callbacks
	router.POST("/callbacks/:gateway", h.Callbacks.Handle)

	router.GET("/healthz", h.Health.Health)
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
