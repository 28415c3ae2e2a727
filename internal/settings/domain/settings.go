// Package domain defines the core entities for panel settings.
package domain

import (
	"time"

	"github.com/keypanel/keypanel/internal/errors"
)

// Settings holds the outbound messaging channel configuration. There is a
// single settings record per deployment.
type Settings struct {
	BotToken  string
	ChatID    string
	UpdatedAt time.Time
}

// StoredSettings is the persisted form of Settings. The bot token is kept as
// ciphertext when a keeper is configured, or UTF-8 bytes otherwise.
type StoredSettings struct {
	BotTokenCiphertext []byte
	ChatID             string
	UpdatedAt          time.Time
}

// UpdateSettingsInput contains the parameters for replacing the settings record.
type UpdateSettingsInput struct {
	BotToken string
	ChatID   string
}

var (
	// ErrSettingsNotFound indicates no settings record has been stored yet.
	ErrSettingsNotFound = errors.Wrap(errors.ErrNotFound, "settings not configured")

	// ErrBotTokenRequired indicates the bot token field is required.
	ErrBotTokenRequired = errors.Wrap(errors.ErrInvalidInput, "bot token is required")

	// ErrChatIDRequired indicates the chat id field is required.
	ErrChatIDRequired = errors.Wrap(errors.ErrInvalidInput, "chat id is required")
)
