package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "PO"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from configs/<PO_ENV>.yaml
func LoadConfig() (*Config, error) {
	return load("")
}

// LoadConfigFile loads configuration from an explicit YAML file
func LoadConfigFile(path string) (*Config, error) {
	return load(path)
}

func load(file string) (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(env)
		for _, path := range ConfigPaths {
			v.AddConfigPath(path)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Environment variables override config, e.g. PO_SERVER_PORT for server.port
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		err := godotenv.Load(path)
		if err == nil {
			return nil
		}
		lastError = err
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return nil
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", "15s")
	v.SetDefault("server.writeTimeout", "15s")
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("server.readHeaderTimeout", "10s")
	v.SetDefault("server.shutdownTimeout", "15s")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.path", "payment-orchestrator.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", "30m")
	v.SetDefault("database.connMaxIdleTime", "15m")
	v.SetDefault("database.queryTimeout", "5s")
	v.SetDefault("database.slowQuery", "200ms")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", "1s")

	v.SetDefault("logger.level", "info")

	v.SetDefault("transaction.defaultCurrency", "KES")
	v.SetDefault("transaction.gatewayTimeout", "30s")
	v.SetDefault("transaction.queryTimeout", "15s")
	v.SetDefault("transaction.workersPerGateway", 4)
	v.SetDefault("transaction.queueSize", 256)

	v.SetDefault("reconciliation.enabled", true)
	v.SetDefault("reconciliation.sweepInterval", "30s")
	v.SetDefault("reconciliation.staleAfter", "60s")
	v.SetDefault("reconciliation.timeoutAfter", "10m")
	v.SetDefault("reconciliation.sweepBatchSize", 100)

	v.SetDefault("ledger.maxAttempts", 5)
	v.SetDefault("ledger.initialInterval", "100ms")
	v.SetDefault("ledger.maxInterval", "2s")
	v.SetDefault("ledger.jitterFactor", 0.2)

	v.SetDefault("breaker.maxRequests", 1)
	v.SetDefault("breaker.interval", "1m")
	v.SetDefault("breaker.timeout", "30s")
	v.SetDefault("breaker.consecutiveFailures", 5)

	v.SetDefault("gateways.mobileMoney.currency", "KES")
	v.SetDefault("gateways.mobileMoney.timeout", "30s")
	v.SetDefault("gateways.card.timeout", "30s")

	v.SetDefault("alerting.telegram.timeout", "10s")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.runtimeCollectors", true)
}

// getEnvironment determines the environment to use based on PO_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the conventional secret variables onto their keys.
// AutomaticEnv only covers keys viper already knows, so secrets absent from the YAML need this.
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"PO_DB_DRIVER":                 "database.driver",
		"PO_DB_HOST":                   "database.host",
		"PO_DB_PORT":                   "database.port",
		"PO_DB_USERNAME":               "database.username",
		"PO_DB_PASSWORD":               "database.password",
		"PO_DB_NAME":                   "database.database",
		"PO_DB_SSL_MODE":               "database.sslMode",
		"PO_DB_PATH":                   "database.path",
		"PO_MOBILE_MONEY_CONSUMER_KEY": "gateways.mobileMoney.consumerKey",
		"PO_MOBILE_MONEY_SECRET":       "gateways.mobileMoney.consumerSecret",
		"PO_MOBILE_MONEY_PASS_KEY":     "gateways.mobileMoney.passKey",
		"PO_MOBILE_MONEY_CREDENTIAL":   "gateways.mobileMoney.securityCredential",
		"PO_MOBILE_MONEY_CALLBACK_KEY": "gateways.mobileMoney.callbackSecret",
		"PO_CARD_SECRET_KEY":           "gateways.card.secretKey",
		"PO_CARD_SECRET_HASH":          "gateways.card.secretHash",
		"PO_TELEGRAM_TOKEN":            "alerting.telegram.token",
		"PO_LOGGER_LEVEL":              "logger.level",
		"PO_SERVER_PORT":               "server.port",
	}
	for env, key := range overrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if chatID := getEnvInt64("PO_TELEGRAM_CHAT_ID", 0); chatID != 0 {
		v.Set("alerting.telegram.chatId", chatID)
	}
}

// Helper function to get environment variable as int64
func getEnvInt64(name string, defaultVal int64) int64 {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil {
		return defaultVal
	}
	return val
}

// Validate ensures all required configuration values are present and consistent
func (c *Config) Validate() error {
	var missing []string

	if c.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if c.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	switch c.Database.Driver {
	case "postgres":
		for key, value := range map[string]string{
			"database.host (or PO_DB_HOST)":         c.Database.Host,
			"database.username (or PO_DB_USERNAME)": c.Database.Username,
			"database.password (or PO_DB_PASSWORD)": c.Database.Password,
			"database.database (or PO_DB_NAME)":     c.Database.Database,
		} {
			if value == "" {
				missing = append(missing, key)
			}
		}
	case "sqlite":
		if c.Database.Path == "" {
			missing = append(missing, "database.path")
		}
	default:
		return fmt.Errorf("invalid database.driver %q, must be postgres or sqlite", c.Database.Driver)
	}

	if c.Transaction.DefaultCurrency == "" {
		missing = append(missing, "transaction.defaultCurrency")
	}
	if c.Transaction.GatewayTimeout <= 0 {
		missing = append(missing, "transaction.gatewayTimeout")
	}
	if c.Reconciliation.Enabled && c.Reconciliation.SweepInterval <= 0 {
		missing = append(missing, "reconciliation.sweepInterval")
	}
	if c.Alerting.Telegram.Enabled && (c.Alerting.Telegram.Token == "" || c.Alerting.Telegram.ChatID == 0) {
		missing = append(missing, "alerting.telegram.token and chatId (or PO_TELEGRAM_TOKEN, PO_TELEGRAM_CHAT_ID)")
	}
	if !c.Gateways.MobileMoney.Enabled && !c.Gateways.Card.Enabled {
		missing = append(missing, "gateways: at least one gateway must be enabled")
	}

	switch c.Environment {
	case Development, Production, Test:
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	if c.Reconciliation.TimeoutAfter > 0 && c.Reconciliation.TimeoutAfter < c.Reconciliation.StaleAfter {
		return fmt.Errorf("reconciliation.timeoutAfter (%s) must not be shorter than staleAfter (%s)",
			c.Reconciliation.TimeoutAfter, c.Reconciliation.StaleAfter)
	}
	return nil
}

// Warnings returns production settings worth a second look
func (c *Config) Warnings() []string {
	if c.Environment != Production {
		return nil
	}
	var warnings []string
	switch strings.ToLower(c.Database.SSLMode) {
	case "require", "verify-ca", "verify-full":
	default:
		if c.Database.Driver == "postgres" {
			warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca', or 'verify-full' in production")
		}
	}
	if c.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if c.Database.Driver == "sqlite" {
		warnings = append(warnings, "sqlite is meant for local runs, use postgres in production")
	}
	return warnings
}
