package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	"github.com/keypanel/keypanel/internal/database"
	apperrors "github.com/keypanel/keypanel/internal/errors"
)

// MySQLAuditLogRepository implements audit log persistence for MySQL.
type MySQLAuditLogRepository struct {
	db *sql.DB
}

// NewMySQLAuditLogRepository creates a new MySQL audit log repository.
func NewMySQLAuditLogRepository(db *sql.DB) *MySQLAuditLogRepository {
	return &MySQLAuditLogRepository{db: db}
}

// Create inserts a new audit log entry.
func (m *MySQLAuditLogRepository) Create(ctx context.Context, entry *accessDomain.AuditLog) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO audit_logs (id, actor_username, target_username, action, target_role, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		entry.ID.String(),
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

// List retrieves all audit log entries ordered by created_at descending.
func (m *MySQLAuditLogRepository) List(ctx context.Context) ([]*accessDomain.AuditLog, error) {
	querier := database.GetTx(ctx, m.db)

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
		var id, action, targetRole string

		err := rows.Scan(
			&id,
			&entry.ActorUsername,
			&entry.TargetUsername,
			&action,
			&targetRole,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan audit log")
		}

		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to parse audit log id")
		}
		entry.ID = parsed
		entry.Action = accessDomain.AuditAction(action)
		entry.TargetRole = accessDomain.Role(targetRole)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate audit logs")
	}

	return entries, nil
}

// DeleteAll wipes the audit log unconditionally.
func (m *MySQLAuditLogRepository) DeleteAll(ctx context.Context) error {
	querier := database.GetTx(ctx, m.db)

	if _, err := querier.ExecContext(ctx, `DELETE FROM audit_logs`); err != nil {
		return apperrors.Wrap(err, "failed to clear audit logs")
	}
	return nil
}
