// Command opsctl is the operator CLI for maintenance tasks that have no
// dashboard surface: schema migrations, bulk archiving, status repair and
// token issuing. Jobs like archive are meant to be run from cron.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/restoration-backend/internal/app"
	"github.com/heartmarshall/restoration-backend/internal/config"
	"github.com/heartmarshall/restoration-backend/pkg/ctxutil"
)

const source = "opsctl"

var (
	cfg        *config.Config
	logger     *slog.Logger
	configPath string
	operatorID string
)

var rootCmd = &cobra.Command{
	Use:           "opsctl",
	Short:         "Restoration pipeline maintenance",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadFile(configPath)
		if err != nil {
			return err
		}
		logger = app.NewLogger(cfg.Log).With("source", source)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"),
		"path to config.yaml (default: $CONFIG_PATH or ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&operatorID, "operator", "",
		"operator UUID recorded as the actor of audit events (default: system)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "opsctl:", err)
		os.Exit(1)
	}
}

// auditContext tags ctx so events written by opsctl are attributed to it.
func auditContext(ctx context.Context) (context.Context, error) {
	ctx = ctxutil.WithSource(ctx, source)
	if operatorID == "" {
		return ctx, nil
	}
	id, err := uuid.Parse(operatorID)
	if err != nil {
		return nil, fmt.Errorf("--operator: %w", err)
	}
	return ctxutil.WithUserID(ctx, id), nil
}

// withDeps runs fn against a freshly wired restoration service.
func withDeps(cmd *cobra.Command, fn func(ctx context.Context, deps *app.Deps) error) error {
	ctx, err := auditContext(cmd.Context())
	if err != nil {
		return err
	}

	deps, err := app.NewDeps(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	return fn(ctx, deps)
}
