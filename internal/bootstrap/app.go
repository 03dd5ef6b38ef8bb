package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/aeroedge/hr-ui-api/config"
	redisadapter "github.com/aeroedge/hr-ui-api/internal/adapters/redis"
	httpx "github.com/aeroedge/hr-ui-api/internal/http"
	"github.com/aeroedge/hr-ui-api/internal/ports"
	"github.com/aeroedge/hr-ui-api/internal/service"
)

// App holds the assembled application: the session services and the HTTP
// server that exposes them.
type App struct {
	Sessions  *service.SessionManager
	Directory *service.DirectoryService
	Server    *http.Server

	cfg     *config.AppConfig
	logger  *slog.Logger
	cleanup []func() error
}

// BuildApp wires backends, cache, services, and the HTTP server from config.
func BuildApp(cfg *config.AppConfig, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	backends, err := BuildBackends(cfg.Backend, logger)
	if err != nil {
		return nil, err
	}

	app := &App{cfg: cfg, logger: logger}

	cache := app.buildSessionCache(cfg)

	store := service.NewSessionStore()
	app.Sessions = service.NewSessionManager(service.SessionManagerOptions{
		Backend:   backends.Identity,
		Directory: backends.Directory,
		Cache:     cache,
		Store:     store,
		Logger:    logger,
	})
	app.Directory = service.NewDirectoryService(backends.Directory, logger)

	router := httpx.NewRouter(httpx.RouterServices{
		Sessions:  app.Sessions,
		Directory: app.Directory,
		Logger:    logger,
	})

	app.Server = &http.Server{
		Addr:        cfg.HTTP.Addr,
		Handler:     router,
		ReadTimeout: cfg.HTTP.ReadTimeout,
	}

	return app, nil
}

// buildSessionCache connects the Redis restore cache. Session restoration
// is an optional comfort; a missing or unreachable Redis downgrades to a
// cold start instead of failing boot.
func (a *App) buildSessionCache(cfg *config.AppConfig) ports.SessionCache {
	if !cfg.Redis.Enabled {
		a.logger.Info("session restore cache disabled")
		return nil
	}

	client, err := ConnectRedis(cfg.Redis, a.logger)
	if err != nil {
		a.logger.Warn("redis unavailable, starting without session restore", "error", err)
		return nil
	}
	a.cleanup = append(a.cleanup, client.Close)

	instanceID, err := LoadInstanceID(cfg.InstanceFile)
	if err != nil {
		a.logger.Warn("instance id unavailable, starting without session restore", "error", err)
		return nil
	}

	return redisadapter.NewSessionCache(client, instanceID)
}

// Run restores any cached session, serves the screen API, and shuts down
// cleanly when ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	// Restoration happens before serving so the first screen request sees
	// the restored state rather than a transient signed-out one.
	a.Sessions.RestoreSession(ctx)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("starting HTTP server", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		a.logger.Info("HTTP server stopped")
		return nil
	})

	return g.Wait()
}

func (a *App) close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		if err := a.cleanup[i](); err != nil {
			a.logger.Error("cleanup failed", "error", err)
		}
	}
}
