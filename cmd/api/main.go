package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/bootstrap"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	if warnings := cfg.Warnings(); len(warnings) > 0 {
		log.Printf("Warning: potential issues in production configuration: %v", warnings)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to start payment engine: %v", err)
	}
	appLogger := container.Logger

	if cfg.Reconciliation.Enabled {
		container.Transactions.Sweeper().Start(ctx)
	}

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           container.Router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"gateways": container.Registry.Gateways(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting callbacks before the sweeper goes away
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if err := container.Close(); err != nil {
		appLogger.Error("Failed to close payment engine", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	appLogger.Info("Server exited gracefully", nil)
}
