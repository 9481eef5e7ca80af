package restoration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/restoration-backend/internal/domain"
	"github.com/heartmarshall/restoration-backend/internal/service/restoration/lifecycle"
	"github.com/heartmarshall/restoration-backend/pkg/ctxutil"
)

// Archive hides a finished item from the board (admin only).
func (s *Service) Archive(ctx context.Context, id uuid.UUID) (*domain.RestorationItem, error) {
	return s.setArchived(ctx, id, true)
}

// Unarchive puts an archived item back on the board (admin only).
func (s *Service) Unarchive(ctx context.Context, id uuid.UUID) (*domain.RestorationItem, error) {
	return s.setArchived(ctx, id, false)
}

func (s *Service) setArchived(ctx context.Context, id uuid.UUID, archive bool) (*domain.RestorationItem, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	current, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get restoration: %w", err)
	}
	if !current.Status.IsValid() {
		return nil, domain.NewDataIntegrityError(current.Status)
	}

	now := s.now()
	var update domain.RestorationUpdate
	eventType := domain.EventUnarchived
	switch {
	case archive && !lifecycle.IsTerminal(current.Status):
		return nil, domain.NewValidationError("status", "only delivered, cancelled or trashed items can be archived")
	case archive && current.ArchivedAt != nil:
		return nil, domain.NewValidationError("archived_at", "already archived")
	case !archive && current.ArchivedAt == nil:
		return nil, domain.NewValidationError("archived_at", "not archived")
	case archive:
		update.SetTime(domain.FieldArchivedAt, now)
		eventType = domain.EventArchived
	default:
		update.ClearTime(domain.FieldArchivedAt)
	}

	updated, err := s.items.UpdateIfStatus(ctx, id, current.Status, update)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.metrics.conflicts.Add(ctx, 1)
		}
		return nil, fmt.Errorf("update restoration: %w", err)
	}

	s.recordEvent(ctx, id, eventType, map[string]any{
		"previous_status": current.Status,
		"new_status":      updated.Status,
	}, now)
	s.metrics.mutation(ctx, eventType)

	s.log.InfoContext(ctx, "restoration archive state changed",
		slog.String("restoration_id", id.String()),
		slog.Bool("archived", archive),
	)

	return updated, nil
}

// ArchiveFinished archives up to the configured batch size of terminal items
// that reached their terminal status more than the configured retention ago.
// The whole batch, events included, is written in one transaction. It
// returns the number of items archived.
func (s *Service) ArchiveFinished(ctx context.Context) (int, error) {
	now := s.now()
	cutoff := now.Add(-s.cfg.ArchiveAfter)

	archived := 0
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		items, err := s.items.ListArchivable(txCtx, cutoff, s.cfg.ArchiveBatchSize)
		if err != nil {
			return fmt.Errorf("list archivable: %w", err)
		}

		for _, item := range items {
			var update domain.RestorationUpdate
			update.SetTime(domain.FieldArchivedAt, now)

			if _, err := s.items.UpdateIfStatus(txCtx, item.ID, item.Status, update); err != nil {
				return fmt.Errorf("archive %s: %w", item.ID, err)
			}

			event, err := newEvent(txCtx, item.ID, domain.EventArchived, map[string]any{
				"previous_status": item.Status,
				"new_status":      item.Status,
				"retention_days":  int(s.cfg.ArchiveAfter.Hours() / 24),
			}, now)
			if err != nil {
				return fmt.Errorf("build archived event: %w", err)
			}
			if _, err := s.events.Create(txCtx, event); err != nil {
				return fmt.Errorf("record archived event: %w", err)
			}
			archived++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "finished restorations archived",
		slog.Int("count", archived),
		slog.Time("cutoff", cutoff),
	)
	return archived, nil
}
