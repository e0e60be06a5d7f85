package cli

import (
	"os/signal"
	"syscall"

	"erp_vendas/internal/adapter/http/routes"
	"erp_vendas/internal/config"
	"erp_vendas/internal/logger"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API under /api.

Required environment variables:
  JWT_SECRET - HS256 key used to verify bearer tokens

Optional:
  PORT, GIN_MODE, CORS_ALLOWED_ORIGINS, REQUEST_TIMEOUT, STORAGE_TIMEOUT,
  DYNAMODB_ENDPOINT, AWS_REGION and the *_TABLE overrides`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return routes.Run(ctx, cfg)
}

