package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/restoration-backend/internal/auth"
	"github.com/heartmarshall/restoration-backend/internal/domain"
)

var tokenRole string

var issueTokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Mint a dashboard access token for an operator",
	Long: `Print a signed access token for --operator. Admin tokens may archive items.

Example:
  opsctl issue-token --operator 7d3e... --role admin`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(operatorID)
		if err != nil {
			return fmt.Errorf("--operator must be a UUID: %w", err)
		}

		jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		token, expiresAt, err := jwt.IssueToken(id, domain.UserRole(tokenRole))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expiresAt.UTC().Format("2006-01-02 15:04:05Z"))
		return nil
	},
}

func init() {
	issueTokenCmd.Flags().StringVar(&tokenRole, "role", string(domain.UserRoleOperator), "operator or admin")
	rootCmd.AddCommand(issueTokenCmd)
}
