// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/keypanel/keypanel/cmd/app/commands"
	"github.com/keypanel/keypanel/internal/app"
	"github.com/keypanel/keypanel/internal/config"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "app",
		Usage:   "Access-controlled dispatch panel",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "bootstrap",
				Usage: "Seed the initial developer key into an empty key store",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Required: true,
						Usage:    "Username of the seeded developer key",
					},
					&cli.StringFlag{
						Name:     "value",
						Aliases:  []string{"v"},
						Required: true,
						Usage:    "Secret value of the seeded developer key",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(func(container *app.Container, logger *slog.Logger) error {
						keyUseCase, err := container.KeyUseCase()
						if err != nil {
							return fmt.Errorf("failed to initialize key use case: %w", err)
						}
						return commands.RunBootstrap(
							ctx,
							keyUseCase,
							logger,
							cmd.String("username"),
							cmd.String("value"),
							cmd.String("format"),
							commands.DefaultIO(),
						)
					})
				},
			},
			{
				Name:  "create-key",
				Usage: "Create a new access key on behalf of an authenticated actor",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "actor-username",
						Required: true,
						Usage:    "Username of the acting key",
					},
					&cli.StringFlag{
						Name:     "actor-secret",
						Required: true,
						Usage:    "Secret value of the acting key",
					},
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Required: true,
						Usage:    "Username for the new key",
					},
					&cli.StringFlag{
						Name:     "value",
						Aliases:  []string{"v"},
						Required: true,
						Usage:    "Secret value for the new key",
					},
					&cli.StringFlag{
						Name:    "role",
						Aliases: []string{"r"},
						Value:   "user",
						Usage:   "Role for the new key (user, admin, creator, developer)",
					},
					&cli.IntFlag{
						Name:  "expires-in-days",
						Value: 0,
						Usage: "Days until the key expires (0 means never)",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(func(container *app.Container, logger *slog.Logger) error {
						authUseCase, err := container.AuthUseCase()
						if err != nil {
							return fmt.Errorf("failed to initialize auth use case: %w", err)
						}
						keyUseCase, err := container.KeyUseCase()
						if err != nil {
							return fmt.Errorf("failed to initialize key use case: %w", err)
						}
						return commands.RunCreateKey(
							ctx,
							authUseCase,
							keyUseCase,
							logger,
							cmd.String("actor-username"),
							cmd.String("actor-secret"),
							cmd.String("username"),
							cmd.String("value"),
							cmd.String("role"),
							cmd.Int("expires-in-days"),
							cmd.String("format"),
							commands.DefaultIO(),
						)
					})
				},
			},
			{
				Name:  "clean-history",
				Usage: "Wipe the audit history",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "dry-run",
						Aliases: []string{"n"},
						Value:   false,
						Usage:   "Show how many entries would be deleted without deleting",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(func(container *app.Container, logger *slog.Logger) error {
						auditLogUseCase, err := container.AuditLogUseCase()
						if err != nil {
							return fmt.Errorf("failed to initialize audit log use case: %w", err)
						}
						return commands.RunCleanHistory(
							ctx,
							auditLogUseCase,
							logger,
							cmd.Bool("dry-run"),
							cmd.String("format"),
							commands.DefaultIO(),
						)
					})
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

// withContainer builds the DI container for a one-shot command and ensures
// its resources are released when the command finishes.
func withContainer(fn func(container *app.Container, logger *slog.Logger) error) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer func() {
		if err := container.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown container", slog.Any("error", err))
		}
	}()

	return fn(container, logger)
}
