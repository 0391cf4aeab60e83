package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/config"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().Bool("version", false, "Print the current schema version and exit")
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Bring the database schema to the current version",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	onlyVersion, _ := cmd.Flags().GetBool("version")

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	manager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, timeprovider.NewRealTimeProvider(), nil)
	if _, err := manager.Connect(cmd.Context()); err != nil {
		return err
	}
	defer func() { _ = manager.Close() }()

	if !onlyVersion {
		if err := manager.Migrate(cmd.Context()); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	version, err := manager.MigrationManager().GetCurrentVersion(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Schema version: %s\n", version)
	return nil
}
