//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/restoration-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/restoration-backend/internal/app"
	authpkg "github.com/heartmarshall/restoration-backend/internal/auth"
	"github.com/heartmarshall/restoration-backend/internal/config"
	"github.com/heartmarshall/restoration-backend/internal/domain"
	"github.com/heartmarshall/restoration-backend/internal/transport/middleware"
)

const photoOrigin = "https://cdn.example.com"

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Deps   *app.Deps
	Hook   *webhookRecorder
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// webhookRecorder captures notification posts.
type webhookRecorder struct {
	mu     sync.Mutex
	bodies []map[string]string
}

func (h *webhookRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	_ = json.NewDecoder(r.Body).Decode(&body)
	h.mu.Lock()
	h.bodies = append(h.bodies, body)
	h.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (h *webhookRecorder) forItem(id string) []map[string]string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []map[string]string
	for _, b := range h.bodies {
		if b["restoration_id"] == id {
			out = append(out, b)
		}
	}
	return out
}

// setupTestServer bootstraps the application stack as cmd/server wires it,
// backed by a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	hook := &webhookRecorder{}
	hookSrv := httptest.NewServer(hook)
	t.Cleanup(hookSrv.Close)

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "e2e-secret-at-least-32-characters-long",
			JWTIssuer:      "restoration-e2e",
			AccessTokenTTL: time.Hour,
		},
		CORS: config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PATCH,DELETE", AllowedHeaders: "Authorization,Content-Type"},
		RateLimit: config.RateLimitConfig{
			MutationsPerMinute: 1000,
			CleanupInterval:    time.Minute,
		},
		Restoration: config.RestorationConfig{
			PhotoOrigin:      photoOrigin,
			PhotoPathPrefix:  "/restorations/",
			ArchiveAfterDays: 60,
			ArchiveBatchSize: 100,
		},
		Notification: config.NotificationConfig{WebhookURL: hookSrv.URL, Timeout: 2 * time.Second},
	}

	deps, err := app.Wire(t.Context(), cfg, pool, logger)
	require.NoError(t, err)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(app.NewHandler(cfg, logger, deps, limiter))
	t.Cleanup(func() {
		srv.Close()
		deps.Restorations.Wait()
	})

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Deps:   deps,
		Hook:   hook,
		jwt:    authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
}

// token mints a bearer token for a fresh operator with role.
func (ts *testServer) token(t *testing.T, role domain.UserRole) string {
	t.Helper()
	tok, _, err := ts.jwt.IssueToken(uuid.New(), role)
	require.NoError(t, err)
	return tok
}

// do sends a JSON request and returns the status and decoded body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return resp.StatusCode, out
}

// createItem opens a restoration case through the API and returns its id.
func (ts *testServer) createItem(t *testing.T, token string) string {
	t.Helper()
	status, body := ts.do(t, http.MethodPost, "/api/restorations",
		map[string]any{"order_ref": "ORD-" + uuid.NewString()[:8], "sku": "PAN-10"}, token)
	require.Equal(t, http.StatusCreated, status, "create: %v", body)
	return body["id"].(string)
}

// patch sends a PATCH and requires 200.
func (ts *testServer) patch(t *testing.T, id string, body map[string]any, token string) map[string]any {
	t.Helper()
	status, resp := ts.do(t, http.MethodPatch, "/api/restorations/"+id, body, token)
	require.Equal(t, http.StatusOK, status, "patch %v: %v", body, resp)
	return resp
}

// eventTypes returns the event types of an item, newest first.
func (ts *testServer) eventTypes(t *testing.T, id, token string) []string {
	t.Helper()
	status, body := ts.do(t, http.MethodGet, "/api/restorations/"+id, nil, token)
	require.Equal(t, http.StatusOK, status)

	events := body["events"].([]any)
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.(map[string]any)["event_type"].(string)
	}
	return out
}
