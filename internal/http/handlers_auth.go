package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aeroedge/hr-ui-api/internal/ports"
	"github.com/aeroedge/hr-ui-api/internal/service"
)

// SessionManagerInterface defines the session lifecycle operations the
// handlers depend on.
type SessionManagerInterface interface {
	SignIn(ctx context.Context, email, password string) (service.Snapshot, error)
	SignUp(ctx context.Context, in ports.SignUpInput) (service.Snapshot, error)
	SignOut(ctx context.Context)
}

// AuthHandlers provides HTTP handlers for session lifecycle operations.
type AuthHandlers struct {
	Svc    SessionManagerInterface
	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// SignIn handles the sign-in endpoint.
// POST /api/auth/signin.
func (h *AuthHandlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	snap, err := h.Svc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeAuthError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, snapshotPayload(snap))
}

// SignUp handles the account registration endpoint.
// POST /api/auth/signup.
func (h *AuthHandlers) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	snap, err := h.Svc.SignUp(r.Context(), ports.SignUpInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.writeAuthError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusCreated, snapshotPayload(snap))
}

// SignOut handles the sign-out endpoint. Sign-out always succeeds locally
// even when the backend cannot be reached, so this never returns an error.
// POST /api/auth/signout.
func (h *AuthHandlers) SignOut(w http.ResponseWriter, r *http.Request) {
	h.Svc.SignOut(r.Context())
	WriteJSON(w, http.StatusOK, map[string]string{"status": "signed_out"})
}

// writeAuthError maps session manager errors onto HTTP status codes.
func (h *AuthHandlers) writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrAuthInProgress) {
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "auth_in_progress", Err: err})
		return
	}
	if errors.Is(err, service.ErrSignInCanceled) {
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "signin_canceled", Err: err})
		return
	}

	if authErr := service.AsAuthError(err); authErr != nil {
		switch authErr.Kind {
		case service.KindValidation:
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_input", Err: err})
		case service.KindCredential:
			WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "invalid_credentials", Err: err})
		case service.KindConflict:
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "email_registered", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: "backend_unavailable", Err: err})
		}
		return
	}

	h.logger().ErrorContext(r.Context(), "auth request failed", "error", err)
	WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "auth_failed", Err: err})
}
