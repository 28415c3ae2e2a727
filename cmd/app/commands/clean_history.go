package commands

import (
	"context"
	"fmt"
	"log/slog"

	accessUseCase "github.com/keypanel/keypanel/internal/access/usecase"
)

// RunCleanHistory wipes the audit log. Supports dry-run mode to preview the
// entry count without deleting. This is an operator command: it talks to the
// audit log use case directly, without the developer-role gate the HTTP API
// enforces, because whoever can run it already holds database credentials.
//
// Requirements: Database must be migrated and accessible.
func RunCleanHistory(
	ctx context.Context,
	auditLogUseCase accessUseCase.AuditLogUseCase,
	logger *slog.Logger,
	dryRun bool,
	format string,
	io IOTuple,
) error {
	logger.Info("cleaning audit history", slog.Bool("dry_run", dryRun))

	entries, err := auditLogUseCase.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list audit history: %w", err)
	}
	count := len(entries)

	if !dryRun {
		if err := auditLogUseCase.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear audit history: %w", err)
		}
	}

	if format == "json" {
		writeJSON(map[string]any{
			"count":   count,
			"dry_run": dryRun,
		}, io.Writer)
	} else {
		if dryRun {
			_, _ = fmt.Fprintf(io.Writer, "Dry-run mode: Would delete %d audit entr%s\n", count, pluralEntry(count))
		} else {
			_, _ = fmt.Fprintf(io.Writer, "Successfully deleted %d audit entr%s\n", count, pluralEntry(count))
		}
	}

	logger.Info("cleanup completed",
		slog.Int("count", count),
		slog.Bool("dry_run", dryRun),
	)

	return nil
}

func pluralEntry(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
