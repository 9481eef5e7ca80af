package restoration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/restoration-backend/internal/domain"
	"github.com/heartmarshall/restoration-backend/internal/service/restoration/lifecycle"
)

// RepairStatus force-writes a valid status over a stored status that is not
// in the enum. It is the only way out of the data-integrity state and is
// refused for items whose status is already valid. The target's timestamp is
// stamped; other timestamps are left for the operator to correct.
func (s *Service) RepairStatus(ctx context.Context, id uuid.UUID, to domain.RestorationStatus) (*domain.RestorationItem, error) {
	if !to.IsValid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	current, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get restoration: %w", err)
	}
	if current.Status.IsValid() {
		return nil, domain.NewValidationError("status", "stored status is valid, use a regular status change")
	}

	now := s.now()
	update := domain.RestorationUpdate{Status: &to}
	if f, ok := lifecycle.TimestampField(to); ok {
		update.SetTime(f, now)
	}

	updated, err := s.items.UpdateIfStatus(ctx, id, current.Status, update)
	if err != nil {
		return nil, fmt.Errorf("repair restoration status: %w", err)
	}

	s.recordEvent(ctx, id, domain.EventStatusRepaired, map[string]any{
		"previous_status": current.Status,
		"new_status":      to,
	}, now)
	s.metrics.mutation(ctx, domain.EventStatusRepaired)

	s.log.WarnContext(ctx, "restoration status repaired",
		slog.String("restoration_id", id.String()),
		slog.String("from", string(current.Status)),
		slog.String("to", to.String()),
	)

	return updated, nil
}
