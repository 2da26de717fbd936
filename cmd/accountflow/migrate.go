package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/accountflow_ledger/internal/platform/config"
	"github.com/SscSPs/accountflow_ledger/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand(logger *slog.Logger, getConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the Postgres schema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("PGSQL_URL is required to run migrations")
			}
			logger.Info("Running database migrations...", slog.String("direction", args[0]), slog.String("source", cfg.MigrationsPath))
			return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrationDirection(args[0]), logger)
		},
	}
}
