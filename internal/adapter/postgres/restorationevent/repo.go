// Package restorationevent implements the restoration event repository using
// PostgreSQL. Events are append-only.
package restorationevent

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/restoration-backend/internal/adapter/postgres"
	"github.com/heartmarshall/restoration-backend/internal/domain"
)

// Repo provides restoration event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new restoration event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createEventSQL = `
INSERT INTO restoration_events (id, restoration_id, event_type, event_timestamp, event_data, source, actor)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, restoration_id, event_type, event_timestamp, event_data, source, actor`

// Create appends an event and returns the persisted row.
func (r *Repo) Create(ctx context.Context, event domain.RestorationEvent) (*domain.RestorationEvent, error) {
	data := event.EventData
	if len(data) == 0 {
		data = []byte("{}")
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createEventSQL,
		event.ID, event.RestorationID, string(event.EventType), event.EventTimestamp, data, event.Source, event.Actor,
	)

	created, err := scanEvent(row)
	if err != nil {
		return nil, postgres.MapError(err, "restoration_event", event.ID)
	}
	return &created, nil
}

const listByRestorationSQL = `
SELECT id, restoration_id, event_type, event_timestamp, event_data, source, actor
FROM restoration_events
WHERE restoration_id = $1
ORDER BY event_timestamp DESC, id DESC`

// ListByRestoration returns the full event history of an item, newest first.
// An item with no events yields an empty slice.
func (r *Repo) ListByRestoration(ctx context.Context, restorationID uuid.UUID) ([]domain.RestorationEvent, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByRestorationSQL, restorationID)
	if err != nil {
		return nil, fmt.Errorf("list restoration_events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.RestorationEvent, 0)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan restoration_event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list restoration_events: %w", err)
	}
	return events, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (domain.RestorationEvent, error) {
	var (
		ev        domain.RestorationEvent
		eventType string
		data      []byte
	)
	if err := row.Scan(&ev.ID, &ev.RestorationID, &eventType, &ev.EventTimestamp, &data, &ev.Source, &ev.Actor); err != nil {
		return domain.RestorationEvent{}, err
	}
	ev.EventType = domain.EventType(eventType)
	ev.EventData = data
	return ev, nil
}
