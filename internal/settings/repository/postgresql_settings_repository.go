// Package repository provides data persistence implementations for panel settings.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/keypanel/keypanel/internal/database"
	apperrors "github.com/keypanel/keypanel/internal/errors"
	settingsDomain "github.com/keypanel/keypanel/internal/settings/domain"
)

// PostgreSQLSettingsRepository handles settings persistence for PostgreSQL.
// The settings table holds at most one row.
type PostgreSQLSettingsRepository struct {
	db *sql.DB
}

// NewPostgreSQLSettingsRepository creates a new PostgreSQLSettingsRepository.
func NewPostgreSQLSettingsRepository(db *sql.DB) *PostgreSQLSettingsRepository {
	return &PostgreSQLSettingsRepository{db: db}
}

// Get retrieves the settings record. Returns ErrSettingsNotFound if none exists.
func (r *PostgreSQLSettingsRepository) Get(ctx context.Context) (*settingsDomain.StoredSettings, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT bot_token, chat_id, updated_at FROM settings WHERE id = 1`

	var stored settingsDomain.StoredSettings
	err := querier.QueryRowContext(ctx, query).Scan(&stored.BotTokenCiphertext, &stored.ChatID, &stored.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settingsDomain.ErrSettingsNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get settings")
	}
	return &stored, nil
}

// Upsert replaces the settings record, creating it when absent.
func (r *PostgreSQLSettingsRepository) Upsert(ctx context.Context, stored *settingsDomain.StoredSettings) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO settings (id, bot_token, chat_id, updated_at)
			  VALUES (1, $1, $2, $3)
			  ON CONFLICT (id) DO UPDATE SET bot_token = EXCLUDED.bot_token, chat_id = EXCLUDED.chat_id, updated_at = EXCLUDED.updated_at`

	_, err := querier.ExecContext(ctx, query, stored.BotTokenCiphertext, stored.ChatID, stored.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to upsert settings")
	}
	return nil
}
