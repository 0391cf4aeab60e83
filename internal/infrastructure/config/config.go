package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment    string               `mapstructure:"environment"`
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Logger         LoggerConfig         `mapstructure:"logger"`
	Transaction    TransactionConfig    `mapstructure:"transaction"`
	Reconciliation ReconciliationConfig `mapstructure:"reconciliation"`
	Ledger         LedgerConfig         `mapstructure:"ledger"`
	Breaker        BreakerConfig        `mapstructure:"breaker"`
	Gateways       GatewaysConfig       `mapstructure:"gateways"`
	Alerting       AlertingConfig       `mapstructure:"alerting"`
	Metrics        MetricsConfig        `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	Path            string        `mapstructure:"path"` // sqlite file
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"`
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`
	SlowQuery       time.Duration `mapstructure:"slowQuery"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// TransactionConfig contains initiation settings
type TransactionConfig struct {
	DefaultCurrency   string        `mapstructure:"defaultCurrency"`
	GatewayTimeout    time.Duration `mapstructure:"gatewayTimeout"`
	QueryTimeout      time.Duration `mapstructure:"queryTimeout"`
	WorkersPerGateway int           `mapstructure:"workersPerGateway"`
	QueueSize         int           `mapstructure:"queueSize"`
}

// ReconciliationConfig controls status polling and the background sweep
type ReconciliationConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	SweepInterval  time.Duration `mapstructure:"sweepInterval"`
	StaleAfter     time.Duration `mapstructure:"staleAfter"`
	TimeoutAfter   time.Duration `mapstructure:"timeoutAfter"`
	SweepBatchSize int           `mapstructure:"sweepBatchSize"`
}

// LedgerConfig controls ledger write retries
type LedgerConfig struct {
	MaxAttempts     int           `mapstructure:"maxAttempts"`
	InitialInterval time.Duration `mapstructure:"initialInterval"`
	MaxInterval     time.Duration `mapstructure:"maxInterval"`
	JitterFactor    float64       `mapstructure:"jitterFactor"`
}

// BreakerConfig controls the per-gateway circuit breakers
type BreakerConfig struct {
	MaxRequests         uint32        `mapstructure:"maxRequests"`
	Interval            time.Duration `mapstructure:"interval"`
	Timeout             time.Duration `mapstructure:"timeout"`
	ConsecutiveFailures uint32        `mapstructure:"consecutiveFailures"`
}

// GatewaysConfig holds the settings of every gateway
type GatewaysConfig struct {
	MobileMoney MobileMoneyConfig `mapstructure:"mobileMoney"`
	Card        CardConfig        `mapstructure:"card"`
}

// MobileMoneyConfig contains the mobile money API credentials
type MobileMoneyConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	BaseURL            string        `mapstructure:"baseUrl"`
	ConsumerKey        string        `mapstructure:"consumerKey"`
	ConsumerSecret     string        `mapstructure:"consumerSecret"`
	ShortCode          string        `mapstructure:"shortCode"`
	PassKey            string        `mapstructure:"passKey"`
	InitiatorName      string        `mapstructure:"initiatorName"`
	SecurityCredential string        `mapstructure:"securityCredential"`
	CallbackURL        string        `mapstructure:"callbackUrl"`
	ResultURL          string        `mapstructure:"resultUrl"`
	QueueTimeoutURL    string        `mapstructure:"queueTimeoutUrl"`
	CallbackSecret     string        `mapstructure:"callbackSecret"`
	Currency           string        `mapstructure:"currency"`
	Timeout            time.Duration `mapstructure:"timeout"`
}

// CardConfig contains the card gateway credentials
type CardConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	BaseURL     string        `mapstructure:"baseUrl"`
	SecretKey   string        `mapstructure:"secretKey"`
	SecretHash  string        `mapstructure:"secretHash"`
	CallbackURL string        `mapstructure:"callbackUrl"`
	Currency    string        `mapstructure:"currency"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// AlertingConfig controls operator alerts
type AlertingConfig struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
}

// TelegramConfig contains the alert bot settings
type TelegramConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Token   string        `mapstructure:"token"`
	ChatID  int64         `mapstructure:"chatId"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RuntimeCollectors bool `mapstructure:"runtimeCollectors"`
}
