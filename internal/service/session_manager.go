package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"sync/atomic"

	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
	"github.com/aeroedge/hr-ui-api/internal/ports"
)

// SessionManagerOptions groups dependencies for SessionManager.
type SessionManagerOptions struct {
	Backend   ports.IdentityBackend
	Directory ports.DirectoryBackend
	Cache     ports.SessionCache // optional; restoration is a no-op without it
	Store     *SessionStore      // optional; a fresh store is created when nil
	Logger    *slog.Logger
}

// SessionManager owns the authentication lifecycle: sign-in, sign-up,
// sign-out, and startup restoration. It is the only component that mutates
// the SessionStore. At most one of SignIn/SignUp/RestoreSession runs at a
// time; overlapping calls are rejected with ErrAuthInProgress. SignOut is
// always immediate and never queues behind a pending auth call.
type SessionManager struct {
	backend   ports.IdentityBackend
	directory ports.DirectoryBackend
	cache     ports.SessionCache
	store     *SessionStore
	logger    *slog.Logger

	inFlight atomic.Bool
}

// NewSessionManager constructs a SessionManager.
func NewSessionManager(opts SessionManagerOptions) *SessionManager {
	store := opts.Store
	if store == nil {
		store = NewSessionStore()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		backend:   opts.Backend,
		directory: opts.Directory,
		cache:     opts.Cache,
		store:     store,
		logger:    logger,
	}
}

// Store exposes the session store for snapshot reads and subscriptions.
// Callers must not mutate state through it; mutation goes through the
// manager's entry points.
func (m *SessionManager) Store() *SessionStore { return m.store }

// Snapshot returns the current session state.
func (m *SessionManager) Snapshot() Snapshot { return m.store.Snapshot() }

// SignIn verifies credentials against the backend and, on success,
// installs the session and resolved profile in the store before returning.
// The store is left untouched when the backend rejects the attempt.
func (m *SessionManager) SignIn(ctx context.Context, email, password string) (Snapshot, error) {
	if err := validateEmail(email); err != nil {
		return Snapshot{}, err
	}
	if password == "" {
		return Snapshot{}, ValidationError("Password is required")
	}

	release, err := m.beginAuth()
	if err != nil {
		return Snapshot{}, err
	}
	defer release()

	epoch := m.store.currentEpoch()
	m.store.setLoading(true)

	result, err := m.backend.VerifyCredentials(ctx, identity.Credentials{Email: email, Password: password})
	if err != nil {
		m.store.setLoading(false)
		return Snapshot{}, mapBackendError(err)
	}

	return m.commit(ctx, epoch, result)
}

// SignUp creates an account and establishes its session. First and last
// name are validated before any backend call is made.
func (m *SessionManager) SignUp(ctx context.Context, in ports.SignUpInput) (Snapshot, error) {
	if err := validateEmail(in.Email); err != nil {
		return Snapshot{}, err
	}
	if in.Password == "" {
		return Snapshot{}, ValidationError("Password is required")
	}
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return Snapshot{}, ValidationError("Please fill in all fields")
	}

	release, err := m.beginAuth()
	if err != nil {
		return Snapshot{}, err
	}
	defer release()

	epoch := m.store.currentEpoch()
	m.store.setLoading(true)

	result, err := m.backend.CreateAccount(ctx, in)
	if err != nil {
		m.store.setLoading(false)
		return Snapshot{}, mapBackendError(err)
	}

	return m.commit(ctx, epoch, result)
}

// SignOut clears the local session unconditionally. Remote invalidation is
// best effort: a failed backend call is logged but never blocks local
// logout, since local state is the source of truth for "is this device
// logged in".
func (m *SessionManager) SignOut(ctx context.Context) {
	sess := m.store.currentSession()
	m.store.clear()

	if m.cache != nil {
		if err := m.cache.Clear(ctx); err != nil {
			m.logger.WarnContext(ctx, "clear session cache failed", "error", err)
		}
	}

	if sess != nil {
		if err := m.backend.InvalidateSession(ctx, *sess); err != nil {
			m.logger.WarnContext(ctx, "remote sign-out failed", "error", err)
		}
	}
}

// RestoreSession attempts to re-establish a previous session at startup.
// "Nothing to restore" is the expected common case and produces no error;
// backend failures are logged and treated as unauthenticated rather than
// surfaced, so a backend outage degrades to the sign-in screen. No retry
// is performed.
func (m *SessionManager) RestoreSession(ctx context.Context) {
	if m.cache == nil {
		return
	}

	release, err := m.beginAuth()
	if err != nil {
		return
	}
	defer release()

	epoch := m.store.currentEpoch()
	m.store.setLoading(true)

	cached, err := m.cache.Load(ctx)
	if err != nil {
		if !errors.Is(err, ports.ErrNoSession) {
			m.logger.WarnContext(ctx, "load session cache failed", "error", err)
		}
		m.store.setLoading(false)
		return
	}

	sess, err := m.backend.CurrentSession(ctx, cached)
	if err != nil {
		if errors.Is(err, ports.ErrNoSession) {
			// The cached material is no longer usable; don't retry it
			// on the next start.
			if clearErr := m.cache.Clear(ctx); clearErr != nil {
				m.logger.WarnContext(ctx, "clear stale session cache failed", "error", clearErr)
			}
		} else {
			m.logger.WarnContext(ctx, "session restoration failed, treating as unauthenticated", "error", err)
		}
		m.store.setLoading(false)
		return
	}

	if _, err := m.commit(ctx, epoch, ports.AuthResult{Session: sess}); err != nil {
		m.logger.WarnContext(ctx, "session restoration discarded", "error", err)
	}
}

// beginAuth claims the single auth slot.
func (m *SessionManager) beginAuth() (release func(), err error) {
	if !m.inFlight.CompareAndSwap(false, true) {
		return nil, ErrAuthInProgress
	}
	return func() { m.inFlight.Store(false) }, nil
}

// commit resolves the profile for a freshly established session and
// installs both in the store as one transition. A sign-out that happened
// while the backend call was in flight wins: the result is discarded.
func (m *SessionManager) commit(ctx context.Context, epoch uint64, result ports.AuthResult) (Snapshot, error) {
	profile := result.Profile
	if profile == nil {
		profile = m.resolveProfile(ctx, result.Session)
	}

	if !m.store.setAuthenticated(epoch, result.Session, profile) {
		return Snapshot{}, ErrSignInCanceled
	}

	if m.cache != nil {
		if err := m.cache.Save(ctx, result.Session); err != nil {
			m.logger.WarnContext(ctx, "save session cache failed", "error", err)
		}
	}

	return m.store.Snapshot(), nil
}

// resolveProfile fetches the profile row for the session's identity. A
// missing row is the legitimate "profile not ready" state and yields nil;
// so does a fetch failure, which is logged and leaves the session valid
// for a later refresh.
func (m *SessionManager) resolveProfile(ctx context.Context, sess identity.Session) *identity.Profile {
	if m.directory == nil {
		return nil
	}
	profile, err := m.directory.ProfileByIdentity(ctx, sess)
	if err != nil {
		m.logger.WarnContext(ctx, "profile lookup failed", "identity_id", sess.IdentityID, "error", err)
		return nil
	}
	return profile
}

// validateEmail checks for a syntactically plausible address without
// contacting the backend.
func validateEmail(email string) *AuthError {
	if email == "" {
		return ValidationError("Email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ValidationError("Enter a valid email address")
	}
	return nil
}

// mapBackendError folds adapter-level failures into the caller-facing
// taxonomy. Anything that is not an explicit backend rejection is assumed
// to be transport trouble.
func mapBackendError(err error) error {
	switch {
	case errors.Is(err, ports.ErrInvalidCredentials):
		return CredentialError("Invalid login credentials")
	case errors.Is(err, ports.ErrIdentityExists):
		return ConflictError("Email is already registered")
	default:
		return NetworkError(err)
	}
}
