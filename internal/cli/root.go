package cli

import (
	"fmt"
	"os"

	"erp_vendas/internal/logger"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "erp-vendas",
	Short: "Commission ledger API for sales representatives",
	Long: `erp-vendas tracks clients, materials, orders and invoices and derives the
representative's commission per installment.

Without a subcommand it starts the HTTP API (same as "serve").`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log := logger.WithComponent("cmd")
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupDefaultLogger is used by commands that do not need the full API
// configuration.
func setupDefaultLogger() error {
	cfg := logger.DefaultConfig()
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	return logger.Setup(cfg)
}
