package identity

// Package identity contains domain-level types for the signed-in user:
// roles, profiles, and sessions. It is pure and free of adapter concerns.

import (
	"strings"
	"time"
)

// Role represents the authorization role carried on a profile.
// Keep string form for easy JSON persistence. Valid values are the
// constants below; anything else is treated as RoleUnknown.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"

	// RoleUnknown is the fallback for unrecognized role strings coming
	// back from the backend. It renders as least-privileged and maps to
	// an empty capability set.
	RoleUnknown Role = ""
)

// ParseRole normalizes a raw role string from the backend. Unrecognized
// values fold to RoleUnknown rather than failing, so a bad role never
// blocks rendering.
func ParseRole(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleHR:
		return RoleHR
	case RoleManager:
		return RoleManager
	case RoleEmployee:
		return RoleEmployee
	default:
		return RoleUnknown
	}
}

// Display returns the role label screens render (original app shows the
// uppercased role badge; unknown roles render as the least-privileged one).
func (r Role) Display() string {
	if r == RoleUnknown {
		return strings.ToUpper(string(RoleEmployee))
	}
	return strings.ToUpper(string(r))
}

// Profile is the resolved profile row for an authenticated identity.
// Exactly one Profile corresponds to one identity; Role is immutable for
// the lifetime of a session.
type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Role      Role   `json:"role"`
}

// FullName returns the display name screens render.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Session is the token material issued by the backend on successful
// authentication or restoration. It is owned by the session store and is
// opaque to screens beyond its validity indicator.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	IdentityID   string    `json:"identity_id"`
	Email        string    `json:"email,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Valid reports whether the session carries a token that has not expired.
// A zero ExpiresAt means the backend issued no expiry; treat as valid.
func (s Session) Valid() bool {
	if s.AccessToken == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || time.Now().Before(s.ExpiresAt)
}

// Credentials are transient sign-in inputs. The password is never stored
// or logged; the struct exists only for the duration of an auth call.
type Credentials struct {
	Email    string
	Password string
}
