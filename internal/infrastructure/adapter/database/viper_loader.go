package database

import (
	"fmt"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/config"
)

// CreateConfigFromViperConfig adapts the application configuration to database configuration.
// PO_DB_* variables already read by DefaultConfig win over the YAML values.
func CreateConfigFromViperConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()
	db := conf.Database

	if configEnv("PO_DB_DRIVER") == "" && db.Driver != "" {
		dbConf.Driver = db.Driver
	}
	if configEnv("PO_DB_PATH") == "" && db.Path != "" {
		dbConf.Path = db.Path
	}
	if dbConf.Host == "" {
		dbConf.Host = db.Host
	}
	if configEnv("PO_DB_PORT") == "" {
		if port := ParsePort(db.Port); port > 0 {
			dbConf.Port = port
		}
	}
	if dbConf.Username == "" {
		dbConf.Username = db.Username
	}
	if dbConf.Password == "" {
		dbConf.Password = db.Password
	}
	if dbConf.Database == "" {
		dbConf.Database = db.Database
	}

	if db.SSLMode != "" {
		dbConf.SSLMode = db.SSLMode
	}
	if db.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = db.MaxOpenConns
	}
	if db.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = db.MaxIdleConns
	}
	if db.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = db.ConnMaxLifetime
	}
	if db.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = db.ConnMaxIdleTime
	}
	if db.QueryTimeout > 0 {
		dbConf.QueryTimeout = db.QueryTimeout
	}
	if db.SlowQuery > 0 {
		dbConf.SlowQuery = db.SlowQuery
	}
	if db.RetryAttempts >= 0 {
		dbConf.RetryAttempts = db.RetryAttempts
	}
	if db.RetryDelay > 0 {
		dbConf.RetryDelay = int(db.RetryDelay.Seconds())
	}
	if conf.Logger.Level != "" {
		dbConf.LogLevel = conf.Logger.Level
	}

	return dbConf
}

// ParsePort converts a port string to an int
func ParsePort(port string) int {
	var p int
	_, err := fmt.Sscanf(port, "%d", &p)
	if err != nil || p <= 0 || p > 65535 {
		return 0 // Return 0 to signal not set instead of defaulting
	}
	return p
}
