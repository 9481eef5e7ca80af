// Package restoration implements the restoration item repository using
// PostgreSQL. Status writes are conditional on the status the caller read.
package restoration

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/restoration-backend/internal/adapter/postgres"
	"github.com/heartmarshall/restoration-backend/internal/domain"
)

const (
	tableName = "restorations"
	entity    = "restoration"
)

// Repo provides restoration item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new restoration repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a restoration item by primary key.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RestorationItem, error) {
	query, args, err := builder().
		Select(columns...).
		From(tableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get restoration: %w", err)
	}

	item, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &item, nil
}

// List returns items for the board ordered by updated_at DESC, plus the total
// number of matching items.
func (r *Repo) List(ctx context.Context, filter domain.RestorationFilter) ([]domain.RestorationItem, int, error) {
	f := newFilter(filter)
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := f.apply(builder().Select("count(*)").From(tableName)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count restorations: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count restorations: %w", err)
	}

	listSQL, listArgs, err := f.apply(builder().Select(columns...).From(tableName)).
		OrderBy("updated_at DESC", "id").
		Limit(uint64(f.limit)).
		Offset(uint64(f.offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list restorations: %w", err)
	}

	items, err := r.queryItems(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list restorations: %w", err)
	}
	return items, total, nil
}

// terminalTimestamps pairs each terminal status with the column recording when
// the item got there.
var terminalTimestamps = []struct {
	status domain.RestorationStatus
	field  domain.TimestampField
}{
	{domain.StatusDelivered, domain.FieldDeliveredAt},
	{domain.StatusCancelled, domain.FieldCancelledAt},
	{domain.StatusTrashed, domain.FieldTrashedAt},
}

// ListArchivable returns unarchived items in a terminal status that reached it
// before cutoff, oldest first.
func (r *Repo) ListArchivable(ctx context.Context, cutoff time.Time, limit int) ([]domain.RestorationItem, error) {
	or := sq.Or{}
	for _, tt := range terminalTimestamps {
		or = append(or, sq.And{
			sq.Eq{"status": string(tt.status)},
			sq.Lt{string(tt.field): cutoff},
		})
	}

	query, args, err := builder().
		Select(columns...).
		From(tableName).
		Where(sq.Eq{"archived_at": nil}).
		Where(or).
		OrderBy("updated_at ASC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list archivable: %w", err)
	}

	items, err := r.queryItems(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list archivable restorations: %w", err)
	}
	return items, nil
}

func (r *Repo) queryItems(ctx context.Context, query string, args ...any) ([]domain.RestorationItem, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.RestorationItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new restoration item and returns the persisted row.
func (r *Repo) Create(ctx context.Context, item domain.RestorationItem) (*domain.RestorationItem, error) {
	if item.TagNumbers == nil {
		item.TagNumbers = []string{}
	}
	if item.Photos == nil {
		item.Photos = []string{}
	}

	query, args, err := builder().
		Insert(tableName).
		SetMap(map[string]any{
			"id":             item.ID,
			"status":         string(item.Status),
			"order_ref":      item.OrderRef,
			"sku":            item.SKU,
			"customer_email": item.CustomerEmail,
			"tag_numbers":    item.TagNumbers,
			"magnet_number":  domain.MagnetFromTags(item.TagNumbers),
			"initiated_at":   item.InitiatedAt,
			"local_pickup":   item.LocalPickup,
			"notes":          nullIfEmpty(item.Notes),
			"photos":         item.Photos,
		}).
		Suffix("RETURNING " + columnList).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert restoration: %w", err)
	}

	created, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, item.ID)
	}
	return &created, nil
}

// UpdateIfStatus applies update to the item only if its stored status still
// equals expected, in a single UPDATE ... WHERE id = ? AND status = ?.
// No row matching means another writer moved the item after it was read:
// domain.ErrConflict is returned and nothing is written.
func (r *Repo) UpdateIfStatus(
	ctx context.Context,
	id uuid.UUID,
	expected domain.RestorationStatus,
	update domain.RestorationUpdate,
) (*domain.RestorationItem, error) {
	set, err := setClause(update)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = sq.Expr("now()")

	query, args, err := builder().
		Update(tableName).
		SetMap(set).
		Where(sq.Eq{"id": id, "status": string(expected)}).
		Suffix("RETURNING " + columnList).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build conditional update: %w", err)
	}

	item, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: status is no longer %s: %w", entity, id, expected, domain.ErrConflict)
	}
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &item, nil
}

// setClause converts an update into column assignments.
func setClause(u domain.RestorationUpdate) (map[string]any, error) {
	set := make(map[string]any)

	if u.Status != nil {
		set["status"] = string(*u.Status)
	}
	for field, v := range u.Times {
		if !isTimestampColumn(field) {
			return nil, fmt.Errorf("unknown timestamp column %q", field)
		}
		set[string(field)] = v
	}
	if u.DamageReason != nil {
		set["damage_reason"] = string(*u.DamageReason)
	}
	if u.WasDamaged != nil {
		set["was_damaged"] = *u.WasDamaged
	}
	if u.TagNumbers != nil {
		set["tag_numbers"] = *u.TagNumbers
		set["magnet_number"] = domain.MagnetFromTags(*u.TagNumbers)
	}
	if u.Notes != nil {
		set["notes"] = nullIfEmpty(u.Notes)
	}
	if u.CancellationReason != nil {
		set["cancellation_reason"] = nullIfEmpty(u.CancellationReason)
	}
	if u.Photos != nil {
		set["photos"] = *u.Photos
	}
	if u.LocalPickup != nil {
		set["local_pickup"] = *u.LocalPickup
	}
	return set, nil
}

func isTimestampColumn(f domain.TimestampField) bool {
	for _, known := range domain.TimestampFields {
		if f == known {
			return true
		}
	}
	return false
}

func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
