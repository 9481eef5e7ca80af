// Package restoration implements the restoration item lifecycle: reading an
// item with its history, and mutating it through the status rules in the
// lifecycle package with a status-conditional write and an audit event.
package restoration

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

//go:generate moq -out restoration_repo_mock_test.go -pkg restoration . restorationRepo
//go:generate moq -out event_repo_mock_test.go -pkg restoration . eventRepo
//go:generate moq -out tx_manager_mock_test.go -pkg restoration . txManager
//go:generate moq -out notifier_mock_test.go -pkg restoration . notifier
//go:generate moq -out photo_presigner_mock_test.go -pkg restoration . photoPresigner

type restorationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RestorationItem, error)
	List(ctx context.Context, filter domain.RestorationFilter) ([]domain.RestorationItem, int, error)
	ListArchivable(ctx context.Context, cutoff time.Time, limit int) ([]domain.RestorationItem, error)
	Create(ctx context.Context, item domain.RestorationItem) (*domain.RestorationItem, error)
	UpdateIfStatus(ctx context.Context, id uuid.UUID, expected domain.RestorationStatus, update domain.RestorationUpdate) (*domain.RestorationItem, error)
}

type eventRepo interface {
	Create(ctx context.Context, event domain.RestorationEvent) (*domain.RestorationEvent, error)
	ListByRestoration(ctx context.Context, restorationID uuid.UUID) ([]domain.RestorationEvent, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	Notify(ctx context.Context, restorationID uuid.UUID, text string) error
}

type photoPresigner interface {
	PresignPut(ctx context.Context, key, contentType string) (url string, expiresAt time.Time, err error)
}

// ErrStorageDisabled is returned by photo operations when no bucket is configured.
var ErrStorageDisabled = errors.New("photo storage is not configured")

const (
	// SourceDashboard is the default event source for mutations.
	SourceDashboard = "dashboard"
	// ActorSystem is recorded when no operator is attached to the context.
	ActorSystem = "system"
)

// Config holds the restoration settings the service needs.
type Config struct {
	Photos           domain.PhotoPolicy
	ArchiveAfter     time.Duration
	ArchiveBatchSize int
	NotifyTimeout    time.Duration
}

// Service provides restoration item operations.
type Service struct {
	items    restorationRepo
	events   eventRepo
	tx       txManager
	notifier notifier
	photos   photoPresigner
	cfg      Config
	metrics  *metrics
	log      *slog.Logger

	now      func() time.Time
	inflight sync.WaitGroup
}

// NewService creates a new restoration service. photos may be nil when photo
// storage is not configured.
func NewService(
	log *slog.Logger,
	items restorationRepo,
	events eventRepo,
	tx txManager,
	n notifier,
	photos photoPresigner,
	cfg Config,
) *Service {
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = 5 * time.Second
	}
	return &Service{
		items:    items,
		events:   events,
		tx:       tx,
		notifier: n,
		photos:   photos,
		cfg:      cfg,
		metrics:  newMetrics(),
		log:      log.With("service", "restoration"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Wait blocks until every in-flight notification has finished.
func (s *Service) Wait() {
	s.inflight.Wait()
}
