// Package repository provides data persistence implementations for server templates.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/keypanel/keypanel/internal/database"
	apperrors "github.com/keypanel/keypanel/internal/errors"
	serversDomain "github.com/keypanel/keypanel/internal/servers/domain"
)

// PostgreSQLServerTemplateRepository handles server template persistence for PostgreSQL.
type PostgreSQLServerTemplateRepository struct {
	db *sql.DB
}

// NewPostgreSQLServerTemplateRepository creates a new PostgreSQLServerTemplateRepository.
func NewPostgreSQLServerTemplateRepository(db *sql.DB) *PostgreSQLServerTemplateRepository {
	return &PostgreSQLServerTemplateRepository{db: db}
}

// Create inserts a new server template.
func (r *PostgreSQLServerTemplateRepository) Create(ctx context.Context, template *serversDomain.ServerTemplate) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO server_templates (id, server_name, command_format, created_at)
			  VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(ctx, query, template.ID, template.ServerName, template.CommandFormat, template.CreatedAt)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return serversDomain.ErrServerNameTaken
		}
		return apperrors.Wrap(err, "failed to create server template")
	}
	return nil
}

// GetByID retrieves a server template by ID. Returns ErrServerTemplateNotFound if not found.
func (r *PostgreSQLServerTemplateRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*serversDomain.ServerTemplate, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, server_name, command_format, created_at FROM server_templates WHERE id = $1`

	var template serversDomain.ServerTemplate
	err := querier.QueryRowContext(ctx, query, id).
		Scan(&template.ID, &template.ServerName, &template.CommandFormat, &template.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serversDomain.ErrServerTemplateNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get server template")
	}
	return &template, nil
}

// List retrieves all server templates ordered by server name.
func (r *PostgreSQLServerTemplateRepository) List(ctx context.Context) ([]*serversDomain.ServerTemplate, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, server_name, command_format, created_at FROM server_templates ORDER BY server_name ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list server templates")
	}
	defer func() {
		_ = rows.Close()
	}()

	templates := make([]*serversDomain.ServerTemplate, 0)
	for rows.Next() {
		var template serversDomain.ServerTemplate
		if err := rows.Scan(&template.ID, &template.ServerName, &template.CommandFormat, &template.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan server template")
		}
		templates = append(templates, &template)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate server templates")
	}

	return templates, nil
}

// Delete removes a server template by ID. Deleting an absent template is not an error.
func (r *PostgreSQLServerTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx, `DELETE FROM server_templates WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete server template")
	}
	return nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
