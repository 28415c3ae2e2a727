// Package repository provides data persistence implementations for access keys
// and audit logs.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	"github.com/keypanel/keypanel/internal/database"
	apperrors "github.com/keypanel/keypanel/internal/errors"
)

// PostgreSQLKeyRepository handles access key persistence for PostgreSQL.
type PostgreSQLKeyRepository struct {
	db *sql.DB
}

// NewPostgreSQLKeyRepository creates a new PostgreSQLKeyRepository.
func NewPostgreSQLKeyRepository(db *sql.DB) *PostgreSQLKeyRepository {
	return &PostgreSQLKeyRepository{db: db}
}

const postgresKeyColumns = `id, username, value, role, expires_at, created_at, updated_at`

// Create inserts a new access key. The store's unique constraints on username
// and value back the use case's read-then-write uniqueness checks.
func (r *PostgreSQLKeyRepository) Create(ctx context.Context, key *accessDomain.Key) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO keys (id, username, value, role, expires_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(ctx, query, key.ID, key.Username, key.Value, string(key.Role),
		key.ExpiresAt, key.CreatedAt, key.UpdatedAt)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return r.conflictError(err)
		}
		return apperrors.Wrap(err, "failed to create key")
	}
	return nil
}

// GetByID retrieves a key by ID. Returns ErrKeyNotFound if not found.
func (r *PostgreSQLKeyRepository) GetByID(ctx context.Context, id uuid.UUID) (*accessDomain.Key, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresKeyColumns + ` FROM keys WHERE id = $1`
	return r.scanKey(querier.QueryRowContext(ctx, query, id), "failed to get key by id")
}

// GetByUsername retrieves a key by its case-sensitive username.
func (r *PostgreSQLKeyRepository) GetByUsername(ctx context.Context, username string) (*accessDomain.Key, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresKeyColumns + ` FROM keys WHERE username = $1`
	return r.scanKey(querier.QueryRowContext(ctx, query, username), "failed to get key by username")
}

// GetByValue retrieves a key by its secret value.
func (r *PostgreSQLKeyRepository) GetByValue(ctx context.Context, value string) (*accessDomain.Key, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresKeyColumns + ` FROM keys WHERE value = $1`
	return r.scanKey(querier.QueryRowContext(ctx, query, value), "failed to get key by value")
}

// List retrieves all keys ordered by creation time ascending.
func (r *PostgreSQLKeyRepository) List(ctx context.Context) ([]*accessDomain.Key, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresKeyColumns + ` FROM keys ORDER BY created_at ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list keys")
	}
	defer func() {
		_ = rows.Close()
	}()

	keys := make([]*accessDomain.Key, 0)
	for rows.Next() {
		key, err := scanKeyRow(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan key")
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate keys")
	}

	return keys, nil
}

// Count returns the number of live keys. Used by the bootstrap path to decide
// whether the store is empty.
func (r *PostgreSQLKeyRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	var count int64
	err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM keys`).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count keys")
	}
	return count, nil
}

// UpdateValue replaces a key's secret value in place. Identity, username, and
// role are untouched. Returns ErrKeyNotFound if the key does not exist.
func (r *PostgreSQLKeyRepository) UpdateValue(ctx context.Context, id uuid.UUID, value string, updatedAt time.Time) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE keys SET value = $1, updated_at = $2 WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, value, updatedAt, id)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return accessDomain.ErrKeyValueTaken
		}
		return apperrors.Wrap(err, "failed to update key value")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check update result")
	}
	if affected == 0 {
		return accessDomain.ErrKeyNotFound
	}
	return nil
}

// Delete removes a key by ID. Deleting an absent key is not an error: delete
// is safe to retry.
func (r *PostgreSQLKeyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx, `DELETE FROM keys WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete key")
	}
	return nil
}

// scanKey scans a single key row, mapping sql.ErrNoRows to ErrKeyNotFound.
func (r *PostgreSQLKeyRepository) scanKey(row *sql.Row, wrapMsg string) (*accessDomain.Key, error) {
	var key accessDomain.Key
	var role string

	err := row.Scan(&key.ID, &key.Username, &key.Value, &role, &key.ExpiresAt, &key.CreatedAt, &key.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accessDomain.ErrKeyNotFound
		}
		return nil, apperrors.Wrap(err, wrapMsg)
	}

	key.Role = accessDomain.Role(role)
	return &key, nil
}

// conflictError maps a unique violation to the specific conflict error when the
// constraint name is recognizable, falling back to a generic conflict.
func (r *PostgreSQLKeyRepository) conflictError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "username"):
		return accessDomain.ErrUsernameTaken
	case strings.Contains(msg, "value"):
		return accessDomain.ErrKeyValueTaken
	default:
		return apperrors.Wrap(apperrors.ErrConflict, "key already exists")
	}
}

// scanKeyRow scans a key from a multi-row result set.
func scanKeyRow(rows *sql.Rows) (*accessDomain.Key, error) {
	var key accessDomain.Key
	var role string

	err := rows.Scan(&key.ID, &key.Username, &key.Value, &role, &key.ExpiresAt, &key.CreatedAt, &key.UpdatedAt)
	if err != nil {
		return nil, err
	}

	key.Role = accessDomain.Role(role)
	return &key, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
