package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/keypanel/keypanel/internal/app"
	"github.com/keypanel/keypanel/internal/config"
)

// RunServer starts the HTTP server with graceful shutdown support.
// Loads configuration, initializes the DI container, seeds the bootstrap key
// when enabled, and starts the Gin HTTP server plus the metrics server when
// metrics are enabled. Blocks until receiving SIGINT/SIGTERM or encountering
// a fatal error.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()

	// Set Gin mode based on log level
	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)
	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))

	defer closeContainer(container, logger)

	if cfg.BootstrapEnabled {
		if err := seedBootstrapKey(ctx, container, logger, cfg); err != nil {
			return err
		}
	}

	// Get HTTP server from container (this initializes all dependencies)
	server, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := server.Start(groupCtx); err != nil {
			return fmt.Errorf("api server error: %w", err)
		}
		return nil
	})

	if metricsServer != nil {
		group.Go(func() error {
			if err := metricsServer.Start(groupCtx); err != nil {
				return fmt.Errorf("metrics server error: %w", err)
			}
			return nil
		})
	}

	// Shut both servers down once the context is cancelled, whether by signal
	// or by a server failure.
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutdown initiated")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.DBConnMaxLifetime)
		defer shutdownCancel()

		var shutdownErrors []error

		if err := server.Shutdown(shutdownCtx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("api server shutdown: %w", err))
		}

		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
			}
		}

		return errors.Join(shutdownErrors...)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// seedBootstrapKey creates the initial developer key when the key store is
// empty. A no-op when keys already exist, so it is safe to leave enabled
// across restarts.
func seedBootstrapKey(ctx context.Context, container *app.Container, logger *slog.Logger, cfg *config.Config) error {
	if cfg.BootstrapKeyValue == "" {
		return fmt.Errorf("bootstrap is enabled but BOOTSTRAP_KEY_VALUE is empty")
	}

	keyUseCase, err := container.KeyUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize key use case for bootstrap: %w", err)
	}

	key, created, err := keyUseCase.Seed(ctx, cfg.BootstrapUsername, cfg.BootstrapKeyValue)
	if err != nil {
		return fmt.Errorf("failed to seed bootstrap key: %w", err)
	}

	if created {
		logger.Info("bootstrap key created",
			slog.String("key_id", key.ID.String()),
			slog.String("username", key.Username),
		)
	} else {
		logger.Info("bootstrap skipped, key store is not empty")
	}

	return nil
}
