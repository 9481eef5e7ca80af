//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

func TestE2E_HealthEndpoints(t *testing.T) {
	ts := setupTestServer(t)

	for _, path := range []string{"/live", "/ready", "/health"} {
		status, body := ts.do(t, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, status, path)
		assert.Equal(t, "ok", body["status"], path)
	}

	_, body := ts.do(t, http.MethodGet, "/health", nil, "")
	components, ok := body["components"].(map[string]any)
	require.True(t, ok, "expected components object")
	db, ok := components["database"].(map[string]any)
	require.True(t, ok, "expected database component")
	assert.Equal(t, "ok", db["status"])
	assert.NotContains(t, components, "storage")
}

func TestE2E_APIRequiresOperator(t *testing.T) {
	ts := setupTestServer(t)

	status, _ := ts.do(t, http.MethodGet, "/api/restorations", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = ts.do(t, http.MethodGet, "/api/restorations", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = ts.do(t, http.MethodGet, "/api/restorations", nil, ts.token(t, domain.UserRoleOperator))
	assert.Equal(t, http.StatusOK, status)
}
