package restoration

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// filter is a normalized domain.RestorationFilter.
type filter struct {
	statuses        []string
	includeArchived bool
	limit           int
	offset          int
}

// newFilter applies defaults and clamps values.
func newFilter(in domain.RestorationFilter) filter {
	f := filter{
		includeArchived: in.IncludeArchived,
		limit:           in.Limit,
		offset:          in.Offset,
	}
	for _, s := range in.Statuses {
		f.statuses = append(f.statuses, string(s))
	}

	if f.limit <= 0 {
		f.limit = defaultLimit
	}
	if f.limit > maxLimit {
		f.limit = maxLimit
	}
	if f.offset < 0 {
		f.offset = 0
	}
	return f
}

// apply adds the WHERE conditions to a select.
func (f filter) apply(b sq.SelectBuilder) sq.SelectBuilder {
	if len(f.statuses) > 0 {
		b = b.Where(sq.Eq{"status": f.statuses})
	}
	if !f.includeArchived {
		b = b.Where(sq.Eq{"archived_at": nil})
	}
	return b
}
