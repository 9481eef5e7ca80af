package restoration

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

// Detail is an item together with its full event history, newest first.
type Detail struct {
	Item   domain.RestorationItem
	Events []domain.RestorationEvent
}

// GetDetail returns the item and its history. A missing item is
// domain.ErrNotFound; an item without events has an empty, non-nil history.
func (s *Service) GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get restoration: %w", err)
	}

	events, err := s.events.ListByRestoration(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list restoration events: %w", err)
	}
	if events == nil {
		events = []domain.RestorationEvent{}
	}

	return &Detail{Item: *item, Events: events}, nil
}
