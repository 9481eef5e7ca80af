package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/restoration-backend/internal/app"
)

var archiveOlderThanDays int

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive finished items past the retention period",
	Long: `Archive every delivered, cancelled or trashed item whose terminal timestamp
is older than the retention period, in one transaction. Each archived item
gets an "archived" audit event.

Examples:
  opsctl archive
  opsctl archive --older-than 90`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if archiveOlderThanDays > 0 {
			cfg.Restoration.ArchiveAfterDays = archiveOlderThanDays
		}
		return withDeps(cmd, func(ctx context.Context, deps *app.Deps) error {
			n, err := deps.Restorations.ArchiveFinished(ctx)
			if err != nil {
				return err
			}
			logger.Info("archive completed",
				slog.Int("archived", n),
				slog.Int("older_than_days", cfg.Restoration.ArchiveAfterDays),
			)
			return nil
		})
	},
}

func init() {
	archiveCmd.Flags().IntVar(&archiveOlderThanDays, "older-than", 0,
		"retention in days (default: restoration.archive_after_days)")
	rootCmd.AddCommand(archiveCmd)
}
