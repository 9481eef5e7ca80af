package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/restoration-backend/internal/app"
	"github.com/heartmarshall/restoration-backend/internal/domain"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print an item and its audit history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}
		return withDeps(cmd, func(ctx context.Context, deps *app.Deps) error {
			detail, err := deps.Restorations.GetDetail(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(detail)
			}

			item := detail.Item
			fmt.Fprintf(out, "%s  %s  order=%s sku=%s\n", item.ID, item.Status, item.OrderRef, item.SKU)
			for _, f := range domain.TimestampFields {
				if ts := item.Timestamp(f); ts != nil {
					fmt.Fprintf(out, "  %-26s %s\n", f, ts.Format("2006-01-02 15:04:05Z07:00"))
				}
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "\nWHEN\tEVENT\tSOURCE\tACTOR\tDATA")
			for _, ev := range detail.Events {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					ev.EventTimestamp.Format("2006-01-02 15:04:05"), ev.EventType, ev.Source, ev.Actor, ev.EventData)
			}
			return tw.Flush()
		})
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print JSON")
	rootCmd.AddCommand(showCmd)
}
