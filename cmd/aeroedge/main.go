package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aeroedge/hr-ui-api/internal/bootstrap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting aeroedge",
		"backend_mode", string(cfg.Backend.Mode),
		"http_addr", cfg.HTTP.Addr,
		"session_restore", cfg.Redis.Enabled)

	app, err := bootstrap.BuildApp(&cfg, logger)
	if err != nil {
		return err
	}

	return app.Run(ctx)
}
