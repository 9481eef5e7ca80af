package restoration

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

// Create opens a restoration case in pending_label and records the created
// event in the same transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.RestorationItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	item := domain.RestorationItem{
		ID:          uuid.New(),
		Status:      domain.StatusPendingLabel,
		OrderRef:    strings.TrimSpace(input.OrderRef),
		SKU:         strings.TrimSpace(input.SKU),
		TagNumbers:  []string{},
		Photos:      []string{},
		InitiatedAt: &now,
		LocalPickup: input.LocalPickup,
	}
	if input.CustomerEmail != nil {
		if email := domain.NormalizeText(*input.CustomerEmail); email != "" {
			item.CustomerEmail = &email
		}
	}
	if input.Notes != nil {
		notes := domain.Truncate(strings.TrimSpace(*input.Notes), domain.MaxNotesLen)
		item.Notes = &notes
	}

	var created *domain.RestorationItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.items.Create(txCtx, item)
		if createErr != nil {
			return fmt.Errorf("create restoration: %w", createErr)
		}

		event, eventErr := newEvent(txCtx, created.ID, domain.EventCreated, map[string]any{
			"new_status": created.Status,
			"order_ref":  created.OrderRef,
			"sku":        created.SKU,
		}, now)
		if eventErr != nil {
			return fmt.Errorf("build created event: %w", eventErr)
		}
		if _, eventErr = s.events.Create(txCtx, event); eventErr != nil {
			return fmt.Errorf("record created event: %w", eventErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.mutation(ctx, domain.EventCreated)
	s.log.InfoContext(ctx, "restoration created",
		slog.String("restoration_id", created.ID.String()),
		slog.String("order_ref", created.OrderRef),
	)

	return created, nil
}
