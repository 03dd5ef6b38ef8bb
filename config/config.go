package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - backend.go: Identity backend configuration
//   - http.go: HTTP server configuration
//   - redis.go: Session cache configuration
type AppConfig struct {
	// IsDev controls development mode behavior (dev backend defaults, log level).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// InstanceFile is where the installation's stable instance ID is kept.
	// The ID scopes the session restore cache.
	InstanceFile string `env:"INSTANCE_FILE" envDefault:".aeroedge-instance"`

	// Backend configuration
	Backend BackendConfig

	// HTTP server configuration
	HTTP HTTPConfig

	// Redis session cache configuration
	Redis RedisConfig `envPrefix:"REDIS_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Backend.Sanitize()
	c.HTTP.Sanitize()
	c.Redis.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// This is called by Sanitize() to ensure IsDev is set correctly.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
