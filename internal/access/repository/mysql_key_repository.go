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

// MySQLKeyRepository handles access key persistence for MySQL.
// UUIDs are stored as CHAR(36) strings.
type MySQLKeyRepository struct {
	db *sql.DB
}

// NewMySQLKeyRepository creates a new MySQLKeyRepository.
func NewMySQLKeyRepository(db *sql.DB) *MySQLKeyRepository {
	return &MySQLKeyRepository{db: db}
}

const mysqlKeyColumns = "id, username, value, role, expires_at, created_at, updated_at"

// Create inserts a new access key.
func (r *MySQLKeyRepository) Create(ctx context.Context, key *accessDomain.Key) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO ` + "`keys`" + ` (id, username, value, role, expires_at, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query, key.ID.String(), key.Username, key.Value, string(key.Role),
		key.ExpiresAt, key.CreatedAt, key.UpdatedAt)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return r.conflictError(err)
		}
		return apperrors.Wrap(err, "failed to create key")
	}
	return nil
}

// GetByID retrieves a key by ID. Returns ErrKeyNotFound if not found.
func (r *MySQLKeyRepository) GetByID(ctx context.Context, id uuid.UUID) (*accessDomain.Key, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlKeyColumns + ` FROM ` + "`keys`" + ` WHERE id = ?`
	return r.scanKey(querier.QueryRowContext(ctx, query, id.String()), "failed to get key by id")
}

// GetByUsername retrieves a key by its username. The username column uses a
// binary collation so the lookup stays case-sensitive.
func (r *MySQLKeyRepository) GetByUsername(ctx context.Context, username string) (*accessDomain.Key, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlKeyColumns + ` FROM ` + "`keys`" + ` WHERE username = ?`
	return r.scanKey(querier.QueryRowContext(ctx, query, username), "failed to get key by username")
}

// GetByValue retrieves a key by its secret value.
func (r *MySQLKeyRepository) GetByValue(ctx context.Context, value string) (*accessDomain.Key, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlKeyColumns + ` FROM ` + "`keys`" + ` WHERE value = ?`
	return r.scanKey(querier.QueryRowContext(ctx, query, value), "failed to get key by value")
}

// List retrieves all keys ordered by creation time ascending.
func (r *MySQLKeyRepository) List(ctx context.Context) ([]*accessDomain.Key, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlKeyColumns + ` FROM ` + "`keys`" + ` ORDER BY created_at ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list keys")
	}
	defer func() {
		_ = rows.Close()
	}()

	keys := make([]*accessDomain.Key, 0)
	for rows.Next() {
		key, err := scanMySQLKeyRow(rows)
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

// Count returns the number of live keys.
func (r *MySQLKeyRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	var count int64
	err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+"`keys`").Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count keys")
	}
	return count, nil
}

// UpdateValue replaces a key's secret value in place.
func (r *MySQLKeyRepository) UpdateValue(ctx context.Context, id uuid.UUID, value string, updatedAt time.Time) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE ` + "`keys`" + ` SET value = ?, updated_at = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, value, updatedAt, id.String())
	if err != nil {
		if isMySQLDuplicateEntry(err) {
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

// Delete removes a key by ID. Deleting an absent key is not an error.
func (r *MySQLKeyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx, `DELETE FROM `+"`keys`"+` WHERE id = ?`, id.String())
	if err != nil {
		return apperrors.Wrap(err, "failed to delete key")
	}
	return nil
}

// scanKey scans a single key row, mapping sql.ErrNoRows to ErrKeyNotFound.
func (r *MySQLKeyRepository) scanKey(row *sql.Row, wrapMsg string) (*accessDomain.Key, error) {
	var key accessDomain.Key
	var id, role string

	err := row.Scan(&id, &key.Username, &key.Value, &role, &key.ExpiresAt, &key.CreatedAt, &key.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accessDomain.ErrKeyNotFound
		}
		return nil, apperrors.Wrap(err, wrapMsg)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to parse key id")
	}
	key.ID = parsed
	key.Role = accessDomain.Role(role)
	return &key, nil
}

// conflictError maps a duplicate entry to the specific conflict error using
// the index name embedded in the MySQL error message.
func (r *MySQLKeyRepository) conflictError(err error) error {
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

// scanMySQLKeyRow scans a key from a multi-row result set.
func scanMySQLKeyRow(rows *sql.Rows) (*accessDomain.Key, error) {
	var key accessDomain.Key
	var id, role string

	err := rows.Scan(&id, &key.Username, &key.Value, &role, &key.ExpiresAt, &key.CreatedAt, &key.UpdatedAt)
	if err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	key.ID = parsed
	key.Role = accessDomain.Role(role)
	return &key, nil
}

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate entry error (1062).
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "error 1062")
}
