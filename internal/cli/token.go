package cli

import (
	"fmt"
	"os"
	"time"

	"erp_vendas/internal/adapter/http/middleware"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token <subject>",
	Short: "Issue a bearer token signed with JWT_SECRET",
	Long: `Issue an HS256 bearer token for local use and print it to stdout.

Required environment variables:
  JWT_SECRET - the key the API verifies tokens with`,
	Example: `  erp-vendas token ana --role admin --ttl 8h`,
	Args:    cobra.ExactArgs(1),
	RunE:    runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().String("role", middleware.RoleVendedor, "Role claim: admin or vendedor")
	tokenCmd.Flags().Duration("ttl", 12*time.Hour, "Token lifetime")
}

func runToken(cmd *cobra.Command, args []string) error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	role, _ := cmd.Flags().GetString("role")
	ttl, _ := cmd.Flags().GetDuration("ttl")

	tok, err := middleware.IssueToken(secret, args[0], role, ttl, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
