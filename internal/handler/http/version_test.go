package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/config"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// mockHealthService implements service.HealthService for testing.
type mockHealthService struct {
	err error
}

func (m *mockHealthService) Check(_ context.Context) error {
	return m.err
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestGetServerVersion_WritesVersion(t *testing.T) {
	h := newTestHandler(config.RoleGoalService, &service.Services{
		AppInfoService: &mockAppInfoService{version: "1.2.3"},
	})

	rec := serve(h, http.MethodGet, "/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestWelcome_PerRole(t *testing.T) {
	tests := []struct {
		role config.Role
		want string
	}{
		{config.RoleUserService, "Welcome to the User Service"},
		{config.RoleGoalService, "Welcome to the Goal Service"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			rec := serve(newTestHandler(tt.role, &service.Services{}), http.MethodGet, "/", "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestHealthz(t *testing.T) {
	healthy := newTestHandler(config.RoleGoalService, &service.Services{HealthService: &mockHealthService{}})
	rec := serve(healthy, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"ok"}`, rec.Body.String())

	unhealthy := newTestHandler(config.RoleGoalService, &service.Services{
		HealthService: &mockHealthService{err: errors.New("ping failed")},
	})
	rec = serve(unhealthy, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Service unavailable", decodeError(t, rec))
}
