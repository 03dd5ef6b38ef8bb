package config

import (
	"fmt"
	"strings"
	"time"
)

// BackendMode selects which identity/directory backend the app talks to.
type BackendMode string

const (
	// BackendModeREST talks to a hosted identity + data API.
	BackendModeREST BackendMode = "rest"
	// BackendModeDev uses the in-memory dev backend (for development only).
	BackendModeDev BackendMode = "dev"
)

// UnmarshalText implements encoding.TextUnmarshaler for BackendMode.
func (b *BackendMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "rest", "dev":
		*b = BackendMode(v)
		return nil
	default:
		return fmt.Errorf("invalid BackendMode: %q (valid options: rest, dev)", v)
	}
}

// RESTConfig contains the hosted backend connection settings.
type RESTConfig struct {
	// BaseURL is the project base URL, e.g. "https://xyzcompany.example.co".
	BaseURL string `env:"BASE_URL"`

	// APIKey is the anon/publishable API key sent with every request.
	APIKey string `env:"API_KEY"`

	// ClientID and ClientSecret identify this client to the token endpoint.
	ClientID     string `env:"CLIENT_ID"     envDefault:"aeroedge"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:""`

	// DiscoveryURL enables local access-token verification via OIDC discovery.
	// Leave empty to confirm sessions with the user endpoint instead.
	DiscoveryURL string `env:"DISCOVERY_URL"`

	// Timeout bounds each backend HTTP request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// DevBackendConfig controls the in-memory dev backend identity.
// Used when BACKEND_MODE=dev for development and testing.
type DevBackendConfig struct {
	Email    string `env:"EMAIL"    envDefault:"dev@aeroedge.local"`
	Password string `env:"PASSWORD" envDefault:"devpass"`
	Role     string `env:"ROLE"     envDefault:"admin"`

	// SessionDuration is the lifetime of tokens the dev backend mints.
	SessionDuration time.Duration `env:"SESSION_DURATION" envDefault:"8h"`
}

// BackendConfig groups all backend-related configuration.
type BackendConfig struct {
	// Mode determines which backend implementation to use.
	Mode BackendMode `env:"BACKEND_MODE" envDefault:"rest"`

	// REST configuration (used when Mode=rest).
	REST RESTConfig `envPrefix:"BACKEND_"`

	// Dev configuration (used when Mode=dev).
	Dev DevBackendConfig `envPrefix:"DEV_BACKEND_"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	if b.REST.Timeout <= 0 {
		b.REST.Timeout = 15 * time.Second
	}
	if b.Dev.SessionDuration <= 0 {
		b.Dev.SessionDuration = 8 * time.Hour
	}
}
