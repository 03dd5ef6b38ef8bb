package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
	"github.com/aeroedge/hr-ui-api/internal/ports"
)

// fakeBackend is a minimal stand-in for the hosted auth surface: a token
// endpoint speaking the password and refresh grants, signup, logout, and
// the userinfo endpoint.
type fakeBackend struct {
	t *testing.T

	password     string
	email        string
	identityID   string
	accessToken  string
	refreshToken string

	signupStatus   int
	tokenRequests  int
	logoutRequests int
	lastAPIKey     string
	lastBearer     string
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(tokenPath, func(w http.ResponseWriter, r *http.Request) {
		f.tokenRequests++
		require.NoError(f.t, r.ParseForm())

		switch r.Form.Get("grant_type") {
		case "password":
			if r.Form.Get("username") != f.email || r.Form.Get("password") != f.password {
				writeOAuthError(w, http.StatusBadRequest, "invalid_grant")
				return
			}
		case "refresh_token":
			if r.Form.Get("refresh_token") != f.refreshToken {
				writeOAuthError(w, http.StatusBadRequest, "invalid_grant")
				return
			}
		default:
			writeOAuthError(w, http.StatusBadRequest, "unsupported_grant_type")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  f.accessToken,
			"refresh_token": f.refreshToken,
			"token_type":    "bearer",
			"expires_in":    3600,
		})
	})

	mux.HandleFunc(signupPath, func(w http.ResponseWriter, r *http.Request) {
		f.lastAPIKey = r.Header.Get("apikey")
		status := f.signupStatus
		if status == 0 {
			status = http.StatusOK
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		var req signupRequest
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  f.accessToken,
			"refresh_token": f.refreshToken,
			"token_type":    "bearer",
			"expires_in":    3600,
			"user":          map[string]string{"id": f.identityID, "email": req.Email},
		})
	})

	mux.HandleFunc(logoutPath, func(w http.ResponseWriter, r *http.Request) {
		f.logoutRequests++
		f.lastBearer = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc(userPath, func(w http.ResponseWriter, r *http.Request) {
		f.lastAPIKey = r.Header.Get("apikey")
		if r.Header.Get("Authorization") != "Bearer "+f.accessToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": f.identityID, "email": f.email})
	})

	return mux
}

func writeOAuthError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

func newTestClient(t *testing.T, backend *fakeBackend) *Client {
	t.Helper()

	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		BaseURL:    srv.URL,
		APIKey:     "test-api-key",
		ClientID:   "aeroedge",
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresBaseURLAndKey(t *testing.T) {
	_, err := NewClient(Config{APIKey: "k"})
	require.Error(t, err)

	_, err = NewClient(Config{BaseURL: "https://hr.example.com"})
	require.Error(t, err)
}

func TestClient_VerifyCredentials(t *testing.T) {
	backend := &fakeBackend{
		t:            t,
		email:        "hr@aeroedge.test",
		password:     "s3cret",
		identityID:   "identity-1",
		accessToken:  "access-1",
		refreshToken: "refresh-1",
	}
	client := newTestClient(t, backend)

	result, err := client.VerifyCredentials(context.Background(), identity.Credentials{
		Email:    "hr@aeroedge.test",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, "access-1", result.Session.AccessToken)
	assert.Equal(t, "refresh-1", result.Session.RefreshToken)
	assert.Equal(t, "identity-1", result.Session.IdentityID)
	assert.Equal(t, "hr@aeroedge.test", result.Session.Email)
	assert.True(t, result.Session.ExpiresAt.After(time.Now()))
	assert.Equal(t, "test-api-key", backend.lastAPIKey)
}

func TestClient_VerifyCredentials_Rejected(t *testing.T) {
	backend := &fakeBackend{
		t:           t,
		email:       "hr@aeroedge.test",
		password:    "s3cret",
		identityID:  "identity-1",
		accessToken: "access-1",
	}
	client := newTestClient(t, backend)

	_, err := client.VerifyCredentials(context.Background(), identity.Credentials{
		Email:    "hr@aeroedge.test",
		Password: "wrong",
	})
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestClient_VerifyCredentials_BackendDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client, err := NewClient(Config{BaseURL: srv.URL, APIKey: "k", HTTPClient: srv.Client()})
	require.NoError(t, err)
	srv.Close()

	_, err = client.VerifyCredentials(context.Background(), identity.Credentials{
		Email:    "hr@aeroedge.test",
		Password: "s3cret",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestClient_CreateAccount(t *testing.T) {
	backend := &fakeBackend{
		t:            t,
		identityID:   "identity-new",
		accessToken:  "access-new",
		refreshToken: "refresh-new",
	}
	client := newTestClient(t, backend)

	result, err := client.CreateAccount(context.Background(), ports.SignUpInput{
		Email:     "new@aeroedge.test",
		Password:  "password123",
		FirstName: "Nadia",
		LastName:  "Osei",
	})
	require.NoError(t, err)

	assert.Equal(t, "access-new", result.Session.AccessToken)
	assert.Equal(t, "identity-new", result.Session.IdentityID)
	assert.Equal(t, "new@aeroedge.test", result.Session.Email)
}

func TestClient_CreateAccount_ExistingIdentity(t *testing.T) {
	for _, status := range []int{http.StatusConflict, http.StatusUnprocessableEntity} {
		backend := &fakeBackend{t: t, signupStatus: status}
		client := newTestClient(t, backend)

		_, err := client.CreateAccount(context.Background(), ports.SignUpInput{
			Email:     "taken@aeroedge.test",
			Password:  "password123",
			FirstName: "Taken",
			LastName:  "User",
		})
		require.ErrorIs(t, err, ports.ErrIdentityExists, "status %d", status)
	}
}

func TestClient_InvalidateSession(t *testing.T) {
	backend := &fakeBackend{t: t, accessToken: "access-1"}
	client := newTestClient(t, backend)

	err := client.InvalidateSession(context.Background(), identity.Session{AccessToken: "access-1"})
	require.NoError(t, err)

	assert.Equal(t, 1, backend.logoutRequests)
	assert.Equal(t, "Bearer access-1", backend.lastBearer)
}

func TestClient_CurrentSession_ConfirmsLiveToken(t *testing.T) {
	backend := &fakeBackend{
		t:           t,
		email:       "hr@aeroedge.test",
		identityID:  "identity-1",
		accessToken: "access-1",
	}
	client := newTestClient(t, backend)

	sess, err := client.CurrentSession(context.Background(), identity.Session{
		AccessToken: "access-1",
		ExpiresAt:   time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, "identity-1", sess.IdentityID)
	assert.Equal(t, "hr@aeroedge.test", sess.Email)
	assert.Equal(t, 0, backend.tokenRequests, "live token should not hit the token endpoint")
}

func TestClient_CurrentSession_RefreshesExpiredToken(t *testing.T) {
	backend := &fakeBackend{
		t:            t,
		email:        "hr@aeroedge.test",
		identityID:   "identity-1",
		accessToken:  "access-2",
		refreshToken: "refresh-1",
	}
	client := newTestClient(t, backend)

	sess, err := client.CurrentSession(context.Background(), identity.Session{
		AccessToken:  "access-stale",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, "access-2", sess.AccessToken)
	assert.Equal(t, "identity-1", sess.IdentityID)
	assert.Equal(t, 1, backend.tokenRequests)
}

func TestClient_CurrentSession_FallsBackToRefreshOnRejectedToken(t *testing.T) {
	backend := &fakeBackend{
		t:            t,
		email:        "hr@aeroedge.test",
		identityID:   "identity-1",
		accessToken:  "access-2",
		refreshToken: "refresh-1",
	}
	client := newTestClient(t, backend)

	// The cached token claims to be live but userinfo no longer accepts it.
	sess, err := client.CurrentSession(context.Background(), identity.Session{
		AccessToken:  "access-revoked",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "access-2", sess.AccessToken)
}

func TestClient_CurrentSession_NoMaterial(t *testing.T) {
	backend := &fakeBackend{t: t}
	client := newTestClient(t, backend)

	_, err := client.CurrentSession(context.Background(), identity.Session{})
	require.ErrorIs(t, err, ports.ErrNoSession)
}

func TestClient_CurrentSession_RefreshRejected(t *testing.T) {
	backend := &fakeBackend{
		t:            t,
		refreshToken: "refresh-current",
	}
	client := newTestClient(t, backend)

	_, err := client.CurrentSession(context.Background(), identity.Session{
		AccessToken:  "access-stale",
		RefreshToken: "refresh-revoked",
		ExpiresAt:    time.Now().Add(-time.Hour),
	})
	require.ErrorIs(t, err, ports.ErrNoSession)
}
