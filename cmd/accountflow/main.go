package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/accountflow_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

// @title Accountflow Ledger API
// @version 1.0
// @description Chart of accounts, payable/receivable titles and the journal derived from them.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := newRootCommand(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand creates the root CLI command with all subcommands registered.
func newRootCommand(logger *slog.Logger) *cobra.Command {
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:   "accountflow",
		Short: "Accounting ledger engine: chart of accounts, titles and derived journals",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadConfig()
			if err != nil {
				logger.Error("Failed to load config", slog.String("error", err.Error()))
			}
			return err
		},
	}

	// Subcommands read cfg lazily: it is only populated once PersistentPreRunE ran.
	getConfig := func() *config.Config { return cfg }
	rootCmd.AddCommand(newServeCommand(logger, getConfig))
	rootCmd.AddCommand(newMigrateCommand(logger, getConfig))

	return rootCmd
}
