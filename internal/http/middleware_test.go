package httpx

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
	"github.com/aeroedge/hr-ui-api/internal/service"
)

// staticReader is a SessionReader pinned to one snapshot.
type staticReader struct{ snap service.Snapshot }

func (r staticReader) Snapshot() service.Snapshot { return r.snap }

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireSession_Unauthenticated(t *testing.T) {
	var called bool
	handler := RequireSession(staticReader{})(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/screens/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "authentication_required", decodeErrBody(t, rec)["error"])
	assert.False(t, called)
}

func TestRequireSession_InjectsSnapshot(t *testing.T) {
	snap := authenticatedSnapshot(identity.RoleEmployee)

	var got service.Snapshot
	handler := RequireSession(staticReader{snap: snap})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = SnapshotFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/screens/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got.Profile)
	assert.Equal(t, "user-1", got.Profile.ID)
}

func TestRequireCapability(t *testing.T) {
	tests := []struct {
		name       string
		snap       service.Snapshot
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unauthenticated gets 401",
			snap:       service.Snapshot{},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "authentication_required",
		},
		{
			name:       "authenticated without capability gets 403",
			snap:       authenticatedSnapshot(identity.RoleEmployee),
			wantStatus: http.StatusForbidden,
			wantCode:   "insufficient_permissions",
		},
		{
			name:       "session without profile gets 403",
			snap:       service.Snapshot{Session: &identity.Session{AccessToken: "token-1"}},
			wantStatus: http.StatusForbidden,
			wantCode:   "insufficient_permissions",
		},
		{
			name:       "capability holder passes",
			snap:       authenticatedSnapshot(identity.RoleHR),
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			handler := RequireCapability(staticReader{snap: tt.snap}, identity.CapViewEmployeeDirectory)(okHandler(&called))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/screens/employees", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeErrBody(t, rec)["error"])
				assert.False(t, called)
			} else {
				assert.True(t, called)
			}
		})
	}
}

func TestRecover_ConvertsPanicTo500(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(httptest.NewRecorder().Body, nil))
	handler := Recover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panics", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogging_PreservesStatusAndFlusher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(httptest.NewRecorder().Body, nil))
	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, ok := w.(http.Flusher)
		assert.True(t, ok, "wrapped writer must keep supporting streaming")
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestLogging_KeepsCallerRequestID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(httptest.NewRecorder().Body, nil))
	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
}
