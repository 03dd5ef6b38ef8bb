package ports

// Package ports defines interfaces (hexagonal ports) for the remote HR
// backend and the session-restore cache. Implementations live in
// internal/adapters; orchestration in internal/service.

import (
	"context"

	"github.com/aeroedge/hr-ui-api/internal/domain/directory"
	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
)

// SignUpInput groups the fields required to create an account.
type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthResult is what the backend returns on successful credential
// verification or account creation. Profile may be nil when the backend
// has an authenticated identity but no profile row yet.
type AuthResult struct {
	Session identity.Session
	Profile *identity.Profile
}

// IdentityBackend authenticates against the remote identity service.
// All calls are network calls and honor the provided context.
type IdentityBackend interface {
	// VerifyCredentials exchanges email/password for a session.
	VerifyCredentials(ctx context.Context, creds identity.Credentials) (AuthResult, error)

	// CreateAccount registers a new identity and returns its session.
	CreateAccount(ctx context.Context, in SignUpInput) (AuthResult, error)

	// InvalidateSession revokes the session server-side. Best effort:
	// callers treat failure as non-fatal.
	InvalidateSession(ctx context.Context, sess identity.Session) error

	// CurrentSession revalidates previously issued token material,
	// refreshing it when expired. It returns ErrNoSession when the
	// material is absent or no longer usable.
	CurrentSession(ctx context.Context, cached identity.Session) (identity.Session, error)
}

// DirectoryBackend reads profile and employment records. Calls carry the
// session whose token authorizes the read.
type DirectoryBackend interface {
	// ProfileByIdentity looks up the profile row for the session's
	// identity. It returns (nil, nil) when the identity is valid but has
	// no profile row yet.
	ProfileByIdentity(ctx context.Context, sess identity.Session) (*identity.Profile, error)

	// EmployeeRecordByProfileID looks up the employment record linked to
	// a profile. It returns (nil, nil) when the profile is not onboarded.
	EmployeeRecordByProfileID(ctx context.Context, sess identity.Session, profileID string) (*directory.EmployeeRecord, error)

	// ListEmployees returns directory entries, optionally filtered by a
	// free-text query over names and emails.
	ListEmployees(ctx context.Context, sess identity.Session, query string) ([]directory.DirectoryEntry, error)
}

// SessionCache persists token material between runs so the app can restore
// a session at startup. It is the only client-side persistence.
type SessionCache interface {
	Save(ctx context.Context, sess identity.Session) error

	// Load returns ErrNoSession when nothing is cached.
	Load(ctx context.Context) (identity.Session, error)

	Clear(ctx context.Context) error
}
