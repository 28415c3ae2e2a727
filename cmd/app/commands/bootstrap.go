package commands

import (
	"context"
	"fmt"
	"log/slog"

	accessUseCase "github.com/keypanel/keypanel/internal/access/usecase"
)

// RunBootstrap seeds the initial developer key into an empty key store.
// This is the only key creation path that does not require an authenticated
// actor, so it refuses to run when the store already holds keys. Outputs the
// key ID and username in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunBootstrap(
	ctx context.Context,
	keyUseCase accessUseCase.KeyUseCase,
	logger *slog.Logger,
	username string,
	value string,
	format string,
	io IOTuple,
) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if value == "" {
		return fmt.Errorf("key value is required")
	}

	logger.Info("seeding bootstrap key", slog.String("username", username))

	key, created, err := keyUseCase.Seed(ctx, username, value)
	if err != nil {
		return fmt.Errorf("failed to seed bootstrap key: %w", err)
	}

	if !created {
		return fmt.Errorf("key store is not empty, bootstrap refused")
	}

	if format == "json" {
		writeJSON(map[string]any{
			"key_id":   key.ID.String(),
			"username": key.Username,
			"role":     string(key.Role),
		}, io.Writer)
	} else {
		_, _ = fmt.Fprintln(io.Writer, "\nBootstrap key created successfully!")
		_, _ = fmt.Fprintf(io.Writer, "Key ID: %s\n", key.ID.String())
		_, _ = fmt.Fprintf(io.Writer, "Username: %s\n", key.Username)
		_, _ = fmt.Fprintf(io.Writer, "Role: %s\n", key.Role)
	}

	logger.Info("bootstrap key created",
		slog.String("key_id", key.ID.String()),
		slog.String("username", key.Username),
	)

	return nil
}
