package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/restoration-backend/internal/app"
	"github.com/heartmarshall/restoration-backend/internal/domain"
)

var repairStatus string

var repairCmd = &cobra.Command{
	Use:   "repair-status <id>",
	Short: "Force a valid status onto an item whose stored status is corrupt",
	Long: `Items whose stored status is not a known value reject every mutation with a
data integrity error. repair-status overwrites the status, stamps the matching
timestamp and records a "status_repaired" event. Items with a valid status
are refused.

Example:
  opsctl repair-status 1f0c... --status received --operator 7d3e...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}
		return withDeps(cmd, func(ctx context.Context, deps *app.Deps) error {
			item, err := deps.Restorations.RepairStatus(ctx, id, domain.RestorationStatus(repairStatus))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", item.ID, item.Status)
			return nil
		})
	},
}

func init() {
	repairCmd.Flags().StringVar(&repairStatus, "status", "", "status to write")
	_ = repairCmd.MarkFlagRequired("status")
	rootCmd.AddCommand(repairCmd)
}
