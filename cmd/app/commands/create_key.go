package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	accessUseCase "github.com/keypanel/keypanel/internal/access/usecase"
)

// RunCreateKey creates a new access key on behalf of an authenticated actor.
// The actor's own credentials are passed as flags and verified before any
// changes are made; the same permission rules that guard the HTTP API apply
// here, so an admin cannot mint a creator key from the CLI either. Outputs
// the new key ID in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateKey(
	ctx context.Context,
	authUseCase accessUseCase.AuthUseCase,
	keyUseCase accessUseCase.KeyUseCase,
	logger *slog.Logger,
	actorUsername string,
	actorSecret string,
	username string,
	value string,
	roleName string,
	expiresInDays int,
	format string,
	io IOTuple,
) error {
	role, err := accessDomain.ParseRole(roleName)
	if err != nil {
		return err
	}

	if expiresInDays < 0 {
		return fmt.Errorf("expires-in-days must be a positive number, got: %d", expiresInDays)
	}

	actor, err := authUseCase.Authenticate(ctx, actorUsername, actorSecret)
	if err != nil {
		return fmt.Errorf("failed to authenticate actor: %w", err)
	}

	logger.Info("creating new key",
		slog.String("actor", actor.Username),
		slog.String("username", username),
		slog.String("role", string(role)),
	)

	input := &accessDomain.CreateKeyInput{
		Username: username,
		Value:    value,
		Role:     role,
	}
	if expiresInDays > 0 {
		expiresAt := time.Now().UTC().AddDate(0, 0, expiresInDays)
		input.ExpiresAt = &expiresAt
	}

	key, err := keyUseCase.Create(ctx, actor, input)
	if err != nil {
		return fmt.Errorf("failed to create key: %w", err)
	}

	if format == "json" {
		result := map[string]any{
			"key_id":   key.ID.String(),
			"username": key.Username,
			"role":     string(key.Role),
		}
		if key.ExpiresAt != nil {
			result["expires_at"] = key.ExpiresAt.Format(time.RFC3339)
		}
		writeJSON(result, io.Writer)
	} else {
		_, _ = fmt.Fprintln(io.Writer, "\nKey created successfully!")
		_, _ = fmt.Fprintf(io.Writer, "Key ID: %s\n", key.ID.String())
		_, _ = fmt.Fprintf(io.Writer, "Username: %s\n", key.Username)
		_, _ = fmt.Fprintf(io.Writer, "Role: %s\n", key.Role)
		if key.ExpiresAt != nil {
			_, _ = fmt.Fprintf(io.Writer, "Expires at: %s\n", key.ExpiresAt.Format(time.RFC3339))
		}
	}

	logger.Info("key created successfully",
		slog.String("key_id", key.ID.String()),
		slog.String("username", key.Username),
	)

	return nil
}
