package cli

import (
	"erp_vendas/internal/adapter/persistence/repository"
	"erp_vendas/internal/infrastructure/database"
	"erp_vendas/internal/logger"

	"github.com/spf13/cobra"
)

var createTablesCmd = &cobra.Command{
	Use:   "create-tables",
	Short: "Create the DynamoDB tables and indexes",
	Long: `Create every table the API uses, with its secondary indexes, and wait until
they are active. Tables that already exist are left untouched, so the command
is safe to run on every deploy.`,
	Example: `  # Against DynamoDB Local
  DYNAMODB_ENDPOINT=http://localhost:8000 erp-vendas create-tables`,
	RunE: runCreateTables,
}

func init() {
	rootCmd.AddCommand(createTablesCmd)
}

func runCreateTables(cmd *cobra.Command, _ []string) error {
	if err := setupDefaultLogger(); err != nil {
		return err
	}
	log := logger.WithComponent("create-tables")

	ddb, err := database.ConnectDynamoDB(cmd.Context())
	if err != nil {
		return err
	}
	tables := repository.TablesFromEnv()
	if err := repository.EnsureTables(cmd.Context(), ddb, tables, log); err != nil {
		return err
	}
	log.Info().Int("tables", len(repository.Schema(tables))).Msg("schema ready")
	return nil
}
