package restoration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/restoration-backend/internal/domain"
	"github.com/heartmarshall/restoration-backend/internal/service/restoration/lifecycle"
)

// Update applies one PATCH-style mutation to an item. The item is read once,
// every rule is checked against that read, and the write only succeeds if the
// stored status is still the one that was read. An event is recorded and the
// notification channel informed only after the write, and only when the
// status moved or a damage action was requested.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.RestorationItem, error) {
	if err := input.Validate(); err != nil {
		s.metrics.rejection(ctx, "invalid_input")
		return nil, err
	}

	current, err := s.items.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get restoration: %w", err)
	}
	if !current.Status.IsValid() {
		s.metrics.rejection(ctx, "data_integrity")
		return nil, domain.NewDataIntegrityError(current.Status)
	}

	now := s.now()
	plan, err := lifecycle.Resolve(lifecycle.Request{
		Current:      current.Status,
		Transition:   input.Transition,
		DamageReason: input.DamageReason,
		StoredReason: current.DamageReason,
		Now:          now,
	})
	if err != nil {
		s.metrics.rejection(ctx, rejectionReason(err))
		return nil, err
	}

	fields := s.fieldUpdate(current, input)
	if input.DamageReason != nil && !isDamageBranch(plan.To) {
		if !sameReason(input.DamageReason, current.DamageReason) {
			s.metrics.rejection(ctx, "invalid_input")
			return nil, domain.NewValidationError("damage_reason", "can only be set on damaged items")
		}
		// Echoing the stored reason is a no-op.
		input.DamageReason = nil
	}
	if input.DamageReason != nil {
		r := *input.DamageReason
		fields.DamageReason = &r
	}
	update := merge(fields, plan.Update)

	updated, err := s.items.UpdateIfStatus(ctx, current.ID, current.Status, update)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.metrics.conflicts.Add(ctx, 1)
		}
		return nil, fmt.Errorf("update restoration: %w", err)
	}

	if !plan.StatusChanged() && plan.Action == "" {
		s.log.InfoContext(ctx, "restoration fields updated",
			slog.String("restoration_id", updated.ID.String()),
		)
		return updated, nil
	}

	eventType := classify(plan)
	s.recordEvent(ctx, updated.ID, eventType, mutationPayload(plan, input, update), now)
	s.metrics.mutation(ctx, eventType)
	s.notifyAsync(ctx, updated, eventType, plan.From)

	s.log.InfoContext(ctx, "restoration status changed",
		slog.String("restoration_id", updated.ID.String()),
		slog.String("from", plan.From.String()),
		slog.String("to", plan.To.String()),
		slog.String("event_type", eventType.String()),
	)

	return updated, nil
}

func rejectionReason(err error) string {
	var te *domain.TransitionError
	var pe *domain.PreconditionError
	switch {
	case errors.As(err, &te):
		return "illegal_transition"
	case errors.As(err, &pe):
		return "precondition"
	case errors.Is(err, domain.ErrDataIntegrity):
		return "data_integrity"
	default:
		return "invalid_input"
	}
}
