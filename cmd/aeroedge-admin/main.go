package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/redis/go-redis/v9"

	"github.com/aeroedge/hr-ui-api/config"
	redisadapter "github.com/aeroedge/hr-ui-api/internal/adapters/redis"
	"github.com/aeroedge/hr-ui-api/internal/bootstrap"
	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
	"github.com/aeroedge/hr-ui-api/internal/ports"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"capabilities": {
			name:        "capabilities",
			description: "Print the role/capability matrix",
			run:         runCapabilities,
		},
		"session-show": {
			name:        "session-show",
			description: "Inspect the cached session for this installation",
			run:         runSessionShow,
		},
		"session-clear": {
			name:        "session-clear",
			description: "Clear the cached session for this installation",
			run:         runSessionClear,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: aeroedge-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	for _, c := range commands() {
		if err := writef(os.Stdout, "  %-16s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// runCapabilities prints which capability each role grants.
func runCapabilities(ctx *commandContext, _ []string) error {
	roles := []identity.Role{
		identity.RoleAdmin,
		identity.RoleHR,
		identity.RoleManager,
		identity.RoleEmployee,
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(tw, "CAPABILITY"); err != nil {
		return err
	}
	for _, role := range roles {
		if err := writef(tw, "\t%s", role); err != nil {
			return err
		}
	}
	if err := writef(tw, "\n"); err != nil {
		return err
	}

	for _, capability := range identity.AllCapabilities() {
		if err := writef(tw, "%s", capability); err != nil {
			return err
		}
		for _, role := range roles {
			mark := "-"
			if roleGrantsCapability(role, capability) {
				mark = "yes"
			}
			if err := writef(tw, "\t%s", mark); err != nil {
				return err
			}
		}
		if err := writef(tw, "\n"); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func roleGrantsCapability(role identity.Role, capability identity.Capability) bool {
	for _, granted := range identity.CapabilitiesFor(role) {
		if granted == capability {
			return true
		}
	}
	return false
}

// runSessionShow prints the cached session, redacting the tokens.
func runSessionShow(ctx *commandContext, _ []string) error {
	cache, client, err := connectSessionCache(ctx)
	if err != nil {
		return err
	}
	defer closeRedis(ctx.Logger, client)

	sess, err := cache.Load(ctx.Ctx)
	if err != nil {
		if errors.Is(err, ports.ErrNoSession) {
			return writef(os.Stdout, "no cached session\n")
		}
		return fmt.Errorf("load cached session: %w", err)
	}

	out := map[string]any{
		"identity_id":       sess.IdentityID,
		"email":             sess.Email,
		"token_type":        sess.TokenType,
		"expires_at":        sess.ExpiresAt,
		"has_refresh_token": sess.RefreshToken != "",
		"valid":             sess.Valid(),
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return writef(os.Stdout, "%s\n", data)
}

// runSessionClear removes the cached session.
func runSessionClear(ctx *commandContext, _ []string) error {
	cache, client, err := connectSessionCache(ctx)
	if err != nil {
		return err
	}
	defer closeRedis(ctx.Logger, client)

	if err := cache.Clear(ctx.Ctx); err != nil {
		return fmt.Errorf("clear cached session: %w", err)
	}
	return writef(os.Stdout, "cached session cleared\n")
}

//nolint:ireturn // returning redis.UniversalClient keeps sentinel support flexible.
func connectSessionCache(ctx *commandContext) (*redisadapter.SessionCache, redis.UniversalClient, error) {
	client, err := bootstrap.ConnectRedis(ctx.Config.Redis, ctx.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}

	instanceID, err := bootstrap.LoadInstanceID(ctx.Config.InstanceFile)
	if err != nil {
		closeRedis(ctx.Logger, client)
		return nil, nil, err
	}

	return redisadapter.NewSessionCache(client, instanceID), client, nil
}

func closeRedis(logger *slog.Logger, client redis.UniversalClient) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.Error("close redis failed", "error", err)
	}
}
