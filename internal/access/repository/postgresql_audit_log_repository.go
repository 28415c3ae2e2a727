package repository

import (
	"context"
	"database/sql"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	"github.com/keypanel/keypanel/internal/database"
	apperrors "github.com/keypanel/keypanel/internal/errors"
)

// PostgreSQLAuditLogRepository implements audit log persistence for PostgreSQL.
// The table is append-only: entries are inserted, listed, and wiped in bulk,
// never updated.
type PostgreSQLAuditLogRepository struct {
	db *sql.DB
}

// NewPostgreSQLAuditLogRepository creates a new PostgreSQL audit log repository.
func NewPostgreSQLAuditLogRepository(db *sql.DB) *PostgreSQLAuditLogRepository {
	return &PostgreSQLAuditLogRepository{db: db}
}

// Create inserts a new audit log entry.
func (p *PostgreSQLAuditLogRepository) Create(ctx context.Context, entry *accessDomain.AuditLog) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO audit_logs (id, actor_username, target_username, action, target_role, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.ActorUsername,
		entry.TargetUsername,
		string(entry.Action),
		string(entry.TargetRole),
		entry.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create audit log")
	}

	return nil
}

// List retrieves all audit log entries ordered by created_at descending
// (newest first). Returns an empty slice when the log is empty.
func (p *PostgreSQLAuditLogRepository) List(ctx context.Context) ([]*accessDomain.AuditLog, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, actor_username, target_username, action, target_role, created_at
			  FROM audit_logs
			  ORDER BY created_at DESC, id DESC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit logs")
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := make([]*accessDomain.AuditLog, 0)
	for rows.Next() {
		var entry accessDomain.AuditLog
		var action, targetRole string

		err := rows.Scan(
			&entry.ID,
			&entry.ActorUsername,
			&entry.TargetUsername,
			&action,
			&targetRole,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan audit log")
		}

		entry.Action = accessDomain.AuditAction(action)
		entry.TargetRole = accessDomain.Role(targetRole)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate audit logs")
	}

	return entries, nil
}

// DeleteAll wipes the audit log unconditionally. The developer-only gate lives
// in the use case layer, not here.
func (p *PostgreSQLAuditLogRepository) DeleteAll(ctx context.Context) error {
	querier := database.GetTx(ctx, p.db)

	if _, err := querier.ExecContext(ctx, `DELETE FROM audit_logs`); err != nil {
		return apperrors.Wrap(err, "failed to clear audit logs")
	}
	return nil
}
