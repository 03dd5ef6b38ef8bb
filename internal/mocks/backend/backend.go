package backend

// Package backend contains simple hand-written test doubles for the
// backend ports. These are lightweight and suitable for unit tests
// without codegen.

import (
	"context"
	"sync"

	"github.com/aeroedge/hr-ui-api/internal/domain/directory"
	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
	"github.com/aeroedge/hr-ui-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityBackend  = (*MockIdentityBackend)(nil)
	_ ports.DirectoryBackend = (*MockDirectoryBackend)(nil)
	_ ports.SessionCache     = (*MemorySessionCache)(nil)
)

// MockIdentityBackend simulates the identity service with per-call hooks
// and call counters for asserting "no backend call was made".
type MockIdentityBackend struct {
	VerifyFunc     func(ctx context.Context, creds identity.Credentials) (ports.AuthResult, error)
	CreateFunc     func(ctx context.Context, in ports.SignUpInput) (ports.AuthResult, error)
	InvalidateFunc func(ctx context.Context, sess identity.Session) error
	CurrentFunc    func(ctx context.Context, cached identity.Session) (identity.Session, error)

	mu              sync.Mutex
	VerifyCalls     int
	CreateCalls     int
	InvalidateCalls int
	CurrentCalls    int
}

// DefaultResult is a ready-made successful auth result for tests.
func DefaultResult() ports.AuthResult {
	return ports.AuthResult{
		Session: identity.Session{
			AccessToken: "token-1",
			IdentityID:  "user-1",
			Email:       "mock.user@example.com",
		},
		Profile: &identity.Profile{
			ID:        "user-1",
			Email:     "mock.user@example.com",
			FirstName: "Mock",
			LastName:  "User",
			Role:      identity.RoleEmployee,
		},
	}
}

func (m *MockIdentityBackend) VerifyCredentials(ctx context.Context, creds identity.Credentials) (ports.AuthResult, error) {
	m.mu.Lock()
	m.VerifyCalls++
	m.mu.Unlock()
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, creds)
	}
	return DefaultResult(), nil
}

func (m *MockIdentityBackend) CreateAccount(ctx context.Context, in ports.SignUpInput) (ports.AuthResult, error) {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return DefaultResult(), nil
}

func (m *MockIdentityBackend) InvalidateSession(ctx context.Context, sess identity.Session) error {
	m.mu.Lock()
	m.InvalidateCalls++
	m.mu.Unlock()
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, sess)
	}
	return nil
}

func (m *MockIdentityBackend) CurrentSession(ctx context.Context, cached identity.Session) (identity.Session, error) {
	m.mu.Lock()
	m.CurrentCalls++
	m.mu.Unlock()
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx, cached)
	}
	return identity.Session{}, ports.ErrNoSession
}

// MockDirectoryBackend simulates directory reads.
type MockDirectoryBackend struct {
	ProfileFunc func(ctx context.Context, sess identity.Session) (*identity.Profile, error)
	RecordFunc  func(ctx context.Context, sess identity.Session, profileID string) (*directory.EmployeeRecord, error)
	ListFunc    func(ctx context.Context, sess identity.Session, query string) ([]directory.DirectoryEntry, error)

	mu           sync.Mutex
	ProfileCalls int
}

func (m *MockDirectoryBackend) ProfileByIdentity(ctx context.Context, sess identity.Session) (*identity.Profile, error) {
	m.mu.Lock()
	m.ProfileCalls++
	m.mu.Unlock()
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, sess)
	}
	return nil, nil
}

func (m *MockDirectoryBackend) EmployeeRecordByProfileID(ctx context.Context, sess identity.Session, profileID string) (*directory.EmployeeRecord, error) {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, sess, profileID)
	}
	return nil, nil
}

func (m *MockDirectoryBackend) ListEmployees(ctx context.Context, sess identity.Session, query string) ([]directory.DirectoryEntry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, sess, query)
	}
	return nil, nil
}

// MemorySessionCache is an in-memory ports.SessionCache for tests.
type MemorySessionCache struct {
	mu       sync.Mutex
	sess     *identity.Session
	SaveErr  error
	LoadErr  error
	ClearErr error
}

// NewMemorySessionCache creates an empty in-memory cache.
func NewMemorySessionCache() *MemorySessionCache {
	return &MemorySessionCache{}
}

func (c *MemorySessionCache) Save(_ context.Context, sess identity.Session) error {
	if c.SaveErr != nil {
		return c.SaveErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sess = &sess
	return nil
}

func (c *MemorySessionCache) Load(_ context.Context) (identity.Session, error) {
	if c.LoadErr != nil {
		return identity.Session{}, c.LoadErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess == nil {
		return identity.Session{}, ports.ErrNoSession
	}
	return *c.sess, nil
}

func (c *MemorySessionCache) Clear(_ context.Context) error {
	if c.ClearErr != nil {
		return c.ClearErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sess = nil
	return nil
}

// Stored returns the cached session, if any.
func (c *MemorySessionCache) Stored() *identity.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess == nil {
		return nil
	}
	sess := *c.sess
	return &sess
}
