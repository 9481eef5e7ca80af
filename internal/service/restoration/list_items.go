package restoration

import (
	"context"
	"fmt"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

// ListResult is one page of the board.
type ListResult struct {
	Items []domain.RestorationItem
	Total int
}

// List returns the board view, most recently updated first.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.RestorationFilter{
		IncludeArchived: input.IncludeArchived,
		Limit:           input.Limit,
		Offset:          input.Offset,
	}
	for _, st := range input.Statuses {
		filter.Statuses = append(filter.Statuses, domain.RestorationStatus(st))
	}

	items, total, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list restorations: %w", err)
	}
	return &ListResult{Items: items, Total: total}, nil
}
