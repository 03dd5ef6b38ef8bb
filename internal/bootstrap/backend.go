package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/aeroedge/hr-ui-api/config"
	"github.com/aeroedge/hr-ui-api/internal/adapters/devbackend"
	"github.com/aeroedge/hr-ui-api/internal/adapters/rest"
	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
	"github.com/aeroedge/hr-ui-api/internal/ports"
)

// Backends bundles the identity and directory port implementations, which
// the rest and dev adapters both provide from a single value.
type Backends struct {
	Identity  ports.IdentityBackend
	Directory ports.DirectoryBackend
}

// BuildBackends creates the backend adapters based on the configured mode.
func BuildBackends(cfg config.BackendConfig, logger *slog.Logger) (Backends, error) {
	switch cfg.Mode {
	case config.BackendModeDev:
		return buildDevBackend(cfg.Dev, logger), nil

	case config.BackendModeREST:
		return buildRESTBackend(cfg.REST, logger)

	default:
		return Backends{}, fmt.Errorf("unsupported backend mode %q", cfg.Mode)
	}
}

func buildDevBackend(cfg config.DevBackendConfig, logger *slog.Logger) Backends {
	role := identity.ParseRole(cfg.Role)
	backend := devbackend.New(devbackend.Config{
		SessionDuration: cfg.SessionDuration,
		Accounts: []devbackend.Account{
			{
				Email:    cfg.Email,
				Password: cfg.Password,
				Profile: identity.Profile{
					ID:        uuid.NewString(),
					Email:     cfg.Email,
					FirstName: "Dev",
					LastName:  "User",
					Role:      role,
				},
			},
		},
	})

	if logger != nil {
		logger.Warn("using in-memory dev backend", "email", cfg.Email, "role", string(role))
	}
	return Backends{Identity: backend, Directory: backend}
}

func buildRESTBackend(cfg config.RESTConfig, logger *slog.Logger) (Backends, error) {
	if cfg.BaseURL == "" || cfg.APIKey == "" {
		return Backends{}, fmt.Errorf("rest backend requires BACKEND_BASE_URL and BACKEND_API_KEY")
	}

	client, err := rest.NewClient(rest.Config{
		BaseURL:      cfg.BaseURL,
		APIKey:       cfg.APIKey,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		DiscoveryURL: cfg.DiscoveryURL,
		HTTPClient:   &http.Client{Timeout: cfg.Timeout},
	})
	if err != nil {
		return Backends{}, fmt.Errorf("build rest backend: %w", err)
	}

	if logger != nil {
		logger.Info("using rest backend",
			"base_url", cfg.BaseURL,
			"token_verification", cfg.DiscoveryURL != "")
	}
	return Backends{Identity: client, Directory: client}, nil
}
