package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/bootstrap"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/config"
)

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default configs/<PO_ENV>.yaml)")
}

var rootCmd = &cobra.Command{
	Use:           "paymentctl",
	Short:         "Operate the payment orchestrator",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// loadConfig reads and validates the configuration named by --config or PO_ENV
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configFile != "" {
		cfg, err = config.LoadConfigFile(configFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openEngine builds the engine without serving HTTP
func openEngine(ctx context.Context) (*bootstrap.Container, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg)
}
