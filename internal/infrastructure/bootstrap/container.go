// Package bootstrap assembles the engine from configuration: storage, gateways,
// alerting, the transaction service and the HTTP router.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/usecase/transaction"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/alert"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/gateway/card"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/gateway/mobilemoney"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/gateway/transport"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/metrics"
	timeprovider "github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/config"
)

// Option overrides a collaborator the container would otherwise build itself
type Option func(*Container)

// WithLogger sets the application logger
func WithLogger(l coreport.Logger) Option {
	return func(c *Container) { c.Logger = l }
}

// WithTimeProvider sets the clock shared by every component
func WithTimeProvider(tp coreport.TimeProvider) Option {
	return func(c *Container) { c.TimeProvider = tp }
}

// WithDatabase uses an already connected and migrated database manager
func WithDatabase(m *database.Manager) Option {
	return func(c *Container) {
		c.Database = m
		c.ownsDatabase = false
	}
}

// WithHTTPClient sets the client used for gateway calls
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) { c.httpClient = client }
}

// WithAlerter replaces the configured operator alerter
func WithAlerter(a coreport.Alerter) Option {
	return func(c *Container) { c.Alerter = a }
}

// Container holds the wired engine
type Container struct {
	Config       *config.Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
	Metrics      *metrics.PrometheusMetrics
	Database     *database.Manager
	Breakers     *transport.BreakerSet
	Registry     *gateway.Registry
	Alerter      coreport.Alerter
	LedgerWriter *ledger.Writer
	Ledger       *ledger.Service
	Transactions *transaction.Service
	Router       *gin.Engine

	httpClient   *http.Client
	ownsDatabase bool
}

// New builds the container. The database is connected and migrated unless WithDatabase is given.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Container, error) {
	c := &Container{Config: cfg, ownsDatabase: true}
	for _, opt := range opts {
		opt(c)
	}

	if c.Logger == nil {
		c.Logger = logger.NewZapLogger(cfg.Environment == config.Production)
		c.Logger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	}
	if c.TimeProvider == nil {
		c.TimeProvider = timeprovider.NewRealTimeProvider()
	}
	c.Metrics = metrics.NewPrometheusMetrics(cfg.Metrics.RuntimeCollectors)

	if c.Database == nil {
		c.Database = database.NewManager(database.CreateConfigFromViperConfig(cfg), c.Logger, c.TimeProvider, c.Metrics)
		if _, err := c.Database.Connect(ctx); err != nil {
			return nil, err
		}
		if err := c.Database.Migrate(ctx); err != nil {
			_ = c.Database.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	c.Breakers = transport.NewBreakerSet(transport.BreakerConfig{
		MaxRequests:         cfg.Breaker.MaxRequests,
		Interval:            cfg.Breaker.Interval,
		Timeout:             cfg.Breaker.Timeout,
		ConsecutiveFailures: cfg.Breaker.ConsecutiveFailures,
	}, c.Metrics, c.Logger, c.TimeProvider)

	registry, err := c.buildRegistry()
	if err != nil {
		c.closeDatabase()
		return nil, err
	}
	c.Registry = registry

	if c.Alerter == nil {
		if c.Alerter, err = c.buildAlerter(); err != nil {
			c.closeDatabase()
			return nil, err
		}
	}

	uow := c.Database.CreateUnitOfWork()
	ledgerRepo := uow.GetLedgerRepository(context.Background())
	c.LedgerWriter = ledger.NewWriter(ledgerRepo, c.Alerter, c.Metrics, c.TimeProvider, c.Logger, ledger.RetryPolicy{
		MaxAttempts:     cfg.Ledger.MaxAttempts,
		InitialInterval: cfg.Ledger.InitialInterval,
		MaxInterval:     cfg.Ledger.MaxInterval,
		JitterFactor:    cfg.Ledger.JitterFactor,
	})
	c.Ledger = ledger.NewService(ledgerRepo)

	c.Transactions = transaction.NewTransactionService(transaction.Dependencies{
		UnitOfWork:   uow,
		Registry:     c.Registry,
		Ledger:       c.LedgerWriter,
		Alerter:      c.Alerter,
		Metrics:      c.Metrics,
		TimeProvider: c.TimeProvider,
		Logger:       c.Logger,
	}, transaction.Config{
		DefaultCurrency: cfg.Transaction.DefaultCurrency,
		GatewayTimeout:  coreport.Duration(cfg.Transaction.GatewayTimeout),
		QueryTimeout:    coreport.Duration(cfg.Transaction.QueryTimeout),
		Sweep: transaction.SweepConfig{
			Interval:     coreport.Duration(cfg.Reconciliation.SweepInterval),
			StaleAfter:   coreport.Duration(cfg.Reconciliation.StaleAfter),
			TimeoutAfter: coreport.Duration(cfg.Reconciliation.TimeoutAfter),
			BatchSize:    cfg.Reconciliation.SweepBatchSize,
		},
		WorkersPerGateway: cfg.Transaction.WorkersPerGateway,
		QueueSize:         cfg.Transaction.QueueSize,
	})

	c.Router = c.buildRouter()
	return c, nil
}

// buildRegistry registers the adapters and callback handlers of every enabled gateway
func (c *Container) buildRegistry() (*gateway.Registry, error) {
	registry := gateway.NewRegistry()
	gws := c.Config.Gateways

	if gws.MobileMoney.Enabled {
		mmCfg := mobilemoney.Config{
			BaseURL:            gws.MobileMoney.BaseURL,
			ConsumerKey:        gws.MobileMoney.ConsumerKey,
			ConsumerSecret:     gws.MobileMoney.ConsumerSecret,
			ShortCode:          gws.MobileMoney.ShortCode,
			PassKey:            gws.MobileMoney.PassKey,
			InitiatorName:      gws.MobileMoney.InitiatorName,
			SecurityCredential: gws.MobileMoney.SecurityCredential,
			CallbackURL:        gws.MobileMoney.CallbackURL,
			ResultURL:          gws.MobileMoney.ResultURL,
			QueueTimeoutURL:    gws.MobileMoney.QueueTimeoutURL,
			CallbackSecret:     gws.MobileMoney.CallbackSecret,
			Currency:           gws.MobileMoney.Currency,
			Timeout:            gws.MobileMoney.Timeout,
		}
		if err := mmCfg.Validate(); err != nil {
			return nil, fmt.Errorf("gateway %s: %w", gateway.MobileMoney, err)
		}
		client := transport.NewClient(gateway.MobileMoney, c.gatewayHTTPClient(mmCfg.Timeout), c.Breakers, c.Metrics, c.Logger)
		api := mobilemoney.NewAPI(mmCfg, client, c.TimeProvider)
		registry.RegisterAdapter(mobilemoney.NewCollectionAdapter(api))
		registry.RegisterAdapter(mobilemoney.NewDisbursementAdapter(api))
		registry.RegisterCallbackHandler(mobilemoney.NewCallbackHandler(mmCfg, c.TimeProvider))
	}

	if gws.Card.Enabled {
		cardCfg := card.Config{
			BaseURL:     gws.Card.BaseURL,
			SecretKey:   gws.Card.SecretKey,
			SecretHash:  gws.Card.SecretHash,
			CallbackURL: gws.Card.CallbackURL,
			Currency:    gws.Card.Currency,
			Timeout:     gws.Card.Timeout,
		}
		if err := cardCfg.Validate(); err != nil {
			return nil, fmt.Errorf("gateway %s: %w", gateway.Card, err)
		}
		client := transport.NewClient(gateway.Card, c.gatewayHTTPClient(cardCfg.Timeout), c.Breakers, c.Metrics, c.Logger)
		api := card.NewAPI(cardCfg, client, c.TimeProvider)
		registry.RegisterAdapter(card.NewChargeAdapter(api))
		registry.RegisterAdapter(card.NewPayoutAdapter(api))
		registry.RegisterCallbackHandler(card.NewWebhookHandler(cardCfg, c.TimeProvider))
	}

	if len(registry.Gateways()) == 0 {
		return nil, errors.New("no payment gateway is enabled")
	}
	return registry, nil
}

func (c *Container) gatewayHTTPClient(timeout time.Duration) *http.Client {
	if c.httpClient != nil {
		return c.httpClient
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// buildAlerter always logs alerts and also sends them to Telegram when configured
func (c *Container) buildAlerter() (coreport.Alerter, error) {
	alerters := alert.MultiAlerter{alert.NewLogAlerter(c.Logger)}

	tg := c.Config.Alerting.Telegram
	if tg.Enabled {
		telegram, err := alert.NewTelegramAlerter(alert.TelegramConfig{
			Token:   tg.Token,
			ChatID:  tg.ChatID,
			Timeout: tg.Timeout,
		}, c.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create telegram alerter: %w", err)
		}
		alerters = append(alerters, telegram)
	}
	return alerters, nil
}

// buildRouter mounts the API on a new gin engine
func (c *Container) buildRouter() *gin.Engine {
	router := gin.New()
	routes.SetupMiddlewares(router, c.Logger)

	h := routes.Handlers{
		Transactions: handler.NewTransactionHandler(c.Transactions, c.Config.Transaction.DefaultCurrency, c.Logger),
		Callbacks: handler.NewCallbackHandler(c.Transactions, map[string]string{
			gateway.MobileMoney: mobilemoney.SignatureHeader,
			gateway.Card:        card.SignatureHeader,
		}, c.Logger),
		Ledger: handler.NewLedgerHandler(c.Ledger, c.Config.Transaction.DefaultCurrency, c.Logger),
		Health: handler.NewHealthHandler(c.Database, c.Breakers),
	}
	if c.Config.Metrics.Enabled {
		h.Metrics = c.Metrics.Handler()
	}
	routes.SetupRoutes(router, h)
	return router
}

// Close stops the engine and releases the database it opened
func (c *Container) Close() error {
	c.Transactions.Shutdown()
	if err := c.Logger.Flush(); err != nil {
		c.Logger.Debug("Logger flush failed", map[string]any{"error": err.Error()})
	}
	if c.ownsDatabase {
		return c.Database.Close()
	}
	return nil
}

func (c *Container) closeDatabase() {
	if c.ownsDatabase {
		_ = c.Database.Close()
	}
}
