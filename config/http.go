package config

import "time"

// HTTPConfig contains HTTP server configuration for the local screen API.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	// The screen API is a device-local surface, so the default binds loopback.
	Addr string `env:"HTTP_ADDR" envDefault:"127.0.0.1:8080"`

	// ReadTimeout bounds how long reading a request may take.
	ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`

	// ShutdownTimeout bounds graceful shutdown on exit.
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.ReadTimeout <= 0 {
		h.ReadTimeout = 10 * time.Second
	}
	if h.ShutdownTimeout <= 0 {
		h.ShutdownTimeout = 5 * time.Second
	}
}
