package devbackend

// Package devbackend provides an in-memory IdentityBackend and
// DirectoryBackend for local development. It short-circuits the remote
// service with seeded accounts and deterministic session issuance.

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aeroedge/hr-ui-api/internal/domain/directory"
	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
	"github.com/aeroedge/hr-ui-api/internal/ports"
)

// Account seeds one sign-in-able identity.
type Account struct {
	Email    string
	Password string
	Profile  identity.Profile
	Record   *directory.EmployeeRecord
}

// Config controls the dev backend behavior.
type Config struct {
	Accounts        []Account
	SessionDuration time.Duration // default 8h when zero
}

// Backend implements ports.IdentityBackend and ports.DirectoryBackend
// against in-memory state. Safe for concurrent use.
type Backend struct {
	mu       sync.Mutex
	accounts map[string]*Account // by lowercased email
	sessions map[string]string   // access token -> identity ID
	duration time.Duration
}

var (
	_ ports.IdentityBackend  = (*Backend)(nil)
	_ ports.DirectoryBackend = (*Backend)(nil)
)

// New constructs a dev backend from Config.
func New(cfg Config) *Backend {
	dur := cfg.SessionDuration
	if dur == 0 {
		dur = 8 * time.Hour
	}
	b := &Backend{
		accounts: make(map[string]*Account),
		sessions: make(map[string]string),
		duration: dur,
	}
	for i := range cfg.Accounts {
		acct := cfg.Accounts[i]
		if acct.Profile.ID == "" {
			acct.Profile.ID = uuid.NewString()
		}
		if acct.Profile.Email == "" {
			acct.Profile.Email = acct.Email
		}
		b.accounts[strings.ToLower(acct.Email)] = &acct
	}
	return b
}

func (b *Backend) VerifyCredentials(_ context.Context, creds identity.Credentials) (ports.AuthResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, ok := b.accounts[strings.ToLower(creds.Email)]
	if !ok || acct.Password != creds.Password {
		return ports.AuthResult{}, ports.ErrInvalidCredentials
	}
	return b.issueLocked(acct), nil
}

func (b *Backend) CreateAccount(_ context.Context, in ports.SignUpInput) (ports.AuthResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := strings.ToLower(in.Email)
	if _, exists := b.accounts[key]; exists {
		return ports.AuthResult{}, ports.ErrIdentityExists
	}
	acct := &Account{
		Email:    in.Email,
		Password: in.Password,
		Profile: identity.Profile{
			ID:        uuid.NewString(),
			Email:     in.Email,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Role:      identity.RoleEmployee,
		},
	}
	b.accounts[key] = acct
	return b.issueLocked(acct), nil
}

func (b *Backend) InvalidateSession(_ context.Context, sess identity.Session) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.sessions, sess.AccessToken)
	return nil
}

func (b *Backend) CurrentSession(_ context.Context, cached identity.Session) (identity.Session, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	identityID, ok := b.sessions[cached.AccessToken]
	if !ok || identityID != cached.IdentityID {
		return identity.Session{}, ports.ErrNoSession
	}
	if !cached.Valid() {
		delete(b.sessions, cached.AccessToken)
		return identity.Session{}, ports.ErrNoSession
	}
	return cached, nil
}

func (b *Backend) ProfileByIdentity(_ context.Context, sess identity.Session) (*identity.Profile, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, acct := range b.accounts {
		if acct.Profile.ID == sess.IdentityID {
			prof := acct.Profile
			return &prof, nil
		}
	}
	return nil, nil
}

func (b *Backend) EmployeeRecordByProfileID(_ context.Context, _ identity.Session, profileID string) (*directory.EmployeeRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, acct := range b.accounts {
		if acct.Profile.ID == profileID && acct.Record != nil {
			rec := *acct.Record
			return &rec, nil
		}
	}
	return nil, nil
}

func (b *Backend) ListEmployees(_ context.Context, _ identity.Session, query string) ([]directory.DirectoryEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	entries := make([]directory.DirectoryEntry, 0, len(b.accounts))
	for _, acct := range b.accounts {
		entry := directory.DirectoryEntry{
			ProfileID: acct.Profile.ID,
			FullName:  acct.Profile.FullName(),
			Email:     acct.Profile.Email,
		}
		if acct.Record != nil {
			entry.EmployeeCode = acct.Record.EmployeeCode
			entry.Designation = acct.Record.DesignationTitle
			entry.Department = acct.Record.DepartmentName
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(entry.FullName), q) &&
			!strings.Contains(strings.ToLower(entry.Email), q) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// issueLocked mints a fresh session for the account. Caller holds b.mu.
func (b *Backend) issueLocked(acct *Account) ports.AuthResult {
	token := uuid.NewString()
	b.sessions[token] = acct.Profile.ID
	prof := acct.Profile
	return ports.AuthResult{
		Session: identity.Session{
			AccessToken:  token,
			RefreshToken: uuid.NewString(),
			TokenType:    "bearer",
			IdentityID:   acct.Profile.ID,
			Email:        acct.Profile.Email,
			ExpiresAt:    time.Now().Add(b.duration),
		},
		Profile: &prof,
	}
}
