package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
	"github.com/aeroedge/hr-ui-api/internal/ports"
	"github.com/aeroedge/hr-ui-api/internal/service"
)

// stubSessionManager implements SessionManagerInterface with swappable
// behavior per test.
type stubSessionManager struct {
	signInFunc  func(ctx context.Context, email, password string) (service.Snapshot, error)
	signUpFunc  func(ctx context.Context, in ports.SignUpInput) (service.Snapshot, error)
	signOutFunc func(ctx context.Context)

	signOutCalls int
}

func (s *stubSessionManager) SignIn(ctx context.Context, email, password string) (service.Snapshot, error) {
	if s.signInFunc != nil {
		return s.signInFunc(ctx, email, password)
	}
	return service.Snapshot{}, nil
}

func (s *stubSessionManager) SignUp(ctx context.Context, in ports.SignUpInput) (service.Snapshot, error) {
	if s.signUpFunc != nil {
		return s.signUpFunc(ctx, in)
	}
	return service.Snapshot{}, nil
}

func (s *stubSessionManager) SignOut(ctx context.Context) {
	s.signOutCalls++
	if s.signOutFunc != nil {
		s.signOutFunc(ctx)
	}
}

func authenticatedSnapshot(role identity.Role) service.Snapshot {
	return service.Snapshot{
		Session: &identity.Session{AccessToken: "token-1", IdentityID: "user-1"},
		Profile: &identity.Profile{
			ID:        "user-1",
			Email:     "hope@aeroedge.test",
			FirstName: "Hope",
			LastName:  "Reyes",
			Role:      role,
		},
	}
}

func decodeErrBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthHandlers_SignIn_Success(t *testing.T) {
	svc := &stubSessionManager{
		signInFunc: func(_ context.Context, email, password string) (service.Snapshot, error) {
			assert.Equal(t, "hope@aeroedge.test", email)
			assert.Equal(t, "s3cret", password)
			return authenticatedSnapshot(identity.RoleHR), nil
		},
	}
	handlers := &AuthHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin",
		strings.NewReader(`{"email":"hope@aeroedge.test","password":"s3cret"}`))
	rec := httptest.NewRecorder()
	handlers.SignIn(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body sessionPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Authenticated)
	require.NotNil(t, body.User)
	assert.Equal(t, "Hope Reyes", body.User.FullName)
	assert.Equal(t, "HR", body.User.RoleLabel)
	assert.Contains(t, body.Capabilities, string(identity.CapViewEmployeeDirectory))
}

func TestAuthHandlers_SignIn_InvalidJSON(t *testing.T) {
	handlers := &AuthHandlers{Svc: &stubSessionManager{}}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	handlers.SignIn(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_json", decodeErrBody(t, rec)["error"])
}

func TestAuthHandlers_SignIn_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", service.ValidationError("Email is required"), http.StatusBadRequest, "invalid_input"},
		{"credential", service.CredentialError("Invalid login credentials"), http.StatusUnauthorized, "invalid_credentials"},
		{"network", service.NetworkError(errors.New("dial tcp: timeout")), http.StatusBadGateway, "backend_unavailable"},
		{"in progress", service.ErrAuthInProgress, http.StatusConflict, "auth_in_progress"},
		{"canceled by signout", service.ErrSignInCanceled, http.StatusConflict, "signin_canceled"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "auth_failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubSessionManager{
				signInFunc: func(context.Context, string, string) (service.Snapshot, error) {
					return service.Snapshot{}, tt.err
				},
			}
			handlers := &AuthHandlers{Svc: svc}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signin",
				strings.NewReader(`{"email":"a@b.test","password":"x"}`))
			rec := httptest.NewRecorder()
			handlers.SignIn(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeErrBody(t, rec)["error"])
		})
	}
}

func TestAuthHandlers_SignUp_Success(t *testing.T) {
	svc := &stubSessionManager{
		signUpFunc: func(_ context.Context, in ports.SignUpInput) (service.Snapshot, error) {
			assert.Equal(t, "new@aeroedge.test", in.Email)
			assert.Equal(t, "Nadia", in.FirstName)
			assert.Equal(t, "Osei", in.LastName)
			return authenticatedSnapshot(identity.RoleEmployee), nil
		},
	}
	handlers := &AuthHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"new@aeroedge.test","password":"password123","first_name":"Nadia","last_name":"Osei"}`))
	rec := httptest.NewRecorder()
	handlers.SignUp(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body sessionPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Authenticated)
	assert.Equal(t, []string{}, body.Capabilities, "employees get no gated capabilities")
}

func TestAuthHandlers_SignUp_EmailRegistered(t *testing.T) {
	svc := &stubSessionManager{
		signUpFunc: func(context.Context, ports.SignUpInput) (service.Snapshot, error) {
			return service.Snapshot{}, service.ConflictError("Email is already registered")
		},
	}
	handlers := &AuthHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"taken@aeroedge.test","password":"x","first_name":"A","last_name":"B"}`))
	rec := httptest.NewRecorder()
	handlers.SignUp(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "email_registered", decodeErrBody(t, rec)["error"])
}

func TestAuthHandlers_SignOut_AlwaysSucceeds(t *testing.T) {
	svc := &stubSessionManager{}
	handlers := &AuthHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil)
	rec := httptest.NewRecorder()
	handlers.SignOut(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.signOutCalls)
	assert.Equal(t, "signed_out", decodeErrBody(t, rec)["status"])
}
