package testhelper

import (
	"context"
	"testing"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	item := SeedRestoration(t, pool, domain.StatusReceived)

	var status string
	err := pool.QueryRow(
		context.Background(),
		`SELECT status FROM restorations WHERE id = $1`,
		item.ID,
	).Scan(&status)
	if err != nil {
		t.Fatalf("expected restoration in DB, got error: %v", err)
	}

	if status != string(domain.StatusReceived) {
		t.Fatalf("expected status %q, got %q", domain.StatusReceived, status)
	}
	if n := CountEvents(t, pool, item.ID); n != 0 {
		t.Fatalf("expected no events for seeded item, got %d", n)
	}
}
