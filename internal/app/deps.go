package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/restoration-backend/internal/adapter/notify/webhook"
	"github.com/heartmarshall/restoration-backend/internal/adapter/postgres"
	restorationrepo "github.com/heartmarshall/restoration-backend/internal/adapter/postgres/restoration"
	"github.com/heartmarshall/restoration-backend/internal/adapter/postgres/restorationevent"
	"github.com/heartmarshall/restoration-backend/internal/adapter/storage/s3photos"
	"github.com/heartmarshall/restoration-backend/internal/config"
	"github.com/heartmarshall/restoration-backend/internal/domain"
	"github.com/heartmarshall/restoration-backend/internal/service/restoration"
)

type notifier interface {
	Notify(ctx context.Context, restorationID uuid.UUID, text string) error
}

// Deps holds the process-wide collaborators shared by the HTTP server and
// opsctl. Close releases them.
type Deps struct {
	Pool         *pgxpool.Pool
	Photos       *s3photos.Presigner // nil when storage is not configured
	Restorations *restoration.Service
}

// NewDeps connects to the database and wires the restoration service.
func NewDeps(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Deps, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	deps, err := Wire(ctx, cfg, pool, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return deps, nil
}

// Wire builds the restoration service on an existing pool.
func Wire(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*Deps, error) {
	var n notifier = webhook.Noop{}
	if cfg.Notification.WebhookURL != "" {
		n = webhook.New(cfg.Notification.WebhookURL, cfg.Notification.Timeout, logger)
	}

	svcCfg := restoration.Config{
		Photos: domain.PhotoPolicy{
			Origin:     cfg.Restoration.PhotoOrigin,
			PathPrefix: cfg.Restoration.PhotoPathPrefix,
		},
		ArchiveAfter:     cfg.Restoration.ArchiveAfter(),
		ArchiveBatchSize: cfg.Restoration.ArchiveBatchSize,
		NotifyTimeout:    cfg.Notification.Timeout,
	}
	items := restorationrepo.New(pool)
	events := restorationevent.New(pool)
	tx := postgres.NewTxManager(pool)

	deps := &Deps{Pool: pool}
	if cfg.Storage.Enabled() {
		photos, err := s3photos.New(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("photo storage: %w", err)
		}
		deps.Photos = photos
		deps.Restorations = restoration.NewService(logger, items, events, tx, n, photos, svcCfg)
	} else {
		deps.Restorations = restoration.NewService(logger, items, events, tx, n, nil, svcCfg)
	}

	return deps, nil
}

// Close waits for in-flight notifications and closes the pool.
func (d *Deps) Close() {
	d.Restorations.Wait()
	d.Pool.Close()
}
