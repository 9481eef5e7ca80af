package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedRestoration inserts a restoration item in the given status with its
// initiated_at set, and returns it as read back from the database. status is
// written verbatim, so unknown values can be seeded too.
func SeedRestoration(t *testing.T, pool *pgxpool.Pool, status domain.RestorationStatus) domain.RestorationItem {
	t.Helper()
	ctx := context.Background()

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(ctx,
		`INSERT INTO restorations (id, status, order_ref, sku, initiated_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5, $5)`,
		id, string(status), "ORD-"+uniqueSuffix(), "SKU-PAN-10", now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRestoration insert: %v", err)
	}

	return readRestoration(t, pool, id)
}

// SeedDamagedRestoration inserts an item at damaged with the given reason and
// damaged_at set.
func SeedDamagedRestoration(t *testing.T, pool *pgxpool.Pool, reason domain.DamageReason) domain.RestorationItem {
	t.Helper()

	item := SeedRestoration(t, pool, domain.StatusDamaged)
	_, err := pool.Exec(context.Background(),
		`UPDATE restorations SET damage_reason = $2, damaged_at = now() WHERE id = $1`,
		item.ID, string(reason),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDamagedRestoration update: %v", err)
	}
	return readRestoration(t, pool, item.ID)
}

// SetTimestamp overwrites one timestamp column of a seeded item.
func SetTimestamp(t *testing.T, pool *pgxpool.Pool, id uuid.UUID, field domain.TimestampField, v time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE restorations SET `+string(field)+` = $2 WHERE id = $1`, id, v,
	)
	if err != nil {
		t.Fatalf("testhelper: SetTimestamp %s: %v", field, err)
	}
}

// CountEvents returns the number of events recorded for an item.
func CountEvents(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM restoration_events WHERE restoration_id = $1`, id,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountEvents: %v", err)
	}
	return n
}

func readRestoration(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) domain.RestorationItem {
	t.Helper()

	var (
		item   domain.RestorationItem
		status string
		reason *string
	)
	err := pool.QueryRow(context.Background(),
		`SELECT id, status, order_ref, sku, initiated_at, damaged_at, damage_reason, created_at, updated_at
		 FROM restorations WHERE id = $1`, id,
	).Scan(&item.ID, &status, &item.OrderRef, &item.SKU, &item.InitiatedAt, &item.DamagedAt, &reason,
		&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: read restoration: %v", err)
	}
	item.Status = domain.RestorationStatus(status)
	if reason != nil {
		r := domain.DamageReason(*reason)
		item.DamageReason = &r
	}
	return item
}
