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

// MySQLServerTemplateRepository handles server template persistence for MySQL.
// UUIDs are stored as CHAR(36) strings.
type MySQLServerTemplateRepository struct {
	db *sql.DB
}

// NewMySQLServerTemplateRepository creates a new MySQLServerTemplateRepository.
func NewMySQLServerTemplateRepository(db *sql.DB) *MySQLServerTemplateRepository {
	return &MySQLServerTemplateRepository{db: db}
}

// Create inserts a new server template.
func (r *MySQLServerTemplateRepository) Create(ctx context.Context, template *serversDomain.ServerTemplate) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO server_templates (id, server_name, command_format, created_at)
			  VALUES (?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query, template.ID.String(), template.ServerName, template.CommandFormat, template.CreatedAt)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return serversDomain.ErrServerNameTaken
		}
		return apperrors.Wrap(err, "failed to create server template")
	}
	return nil
}

// GetByID retrieves a server template by ID. Returns ErrServerTemplateNotFound if not found.
func (r *MySQLServerTemplateRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*serversDomain.ServerTemplate, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, server_name, command_format, created_at FROM server_templates WHERE id = ?`

	return scanMySQLServerTemplate(querier.QueryRowContext(ctx, query, id.String()))
}

// List retrieves all server templates ordered by server name.
func (r *MySQLServerTemplateRepository) List(ctx context.Context) ([]*serversDomain.ServerTemplate, error) {
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
		var rawID string
		if err := rows.Scan(&rawID, &template.ServerName, &template.CommandFormat, &template.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan server template")
		}
		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to parse server template id")
		}
		template.ID = id
		templates = append(templates, &template)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate server templates")
	}

	return templates, nil
}

// Delete removes a server template by ID. Deleting an absent template is not an error.
func (r *MySQLServerTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx, `DELETE FROM server_templates WHERE id = ?`, id.String())
	if err != nil {
		return apperrors.Wrap(err, "failed to delete server template")
	}
	return nil
}

// scanMySQLServerTemplate scans a single row, mapping sql.ErrNoRows to ErrServerTemplateNotFound.
func scanMySQLServerTemplate(row *sql.Row) (*serversDomain.ServerTemplate, error) {
	var template serversDomain.ServerTemplate
	var rawID string

	err := row.Scan(&rawID, &template.ServerName, &template.CommandFormat, &template.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serversDomain.ErrServerTemplateNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get server template")
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to parse server template id")
	}
	template.ID = id
	return &template, nil
}

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate entry violation.
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "error 1062")
}
