// Package usecase defines business logic interfaces for panel settings.
package usecase

import (
	"context"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	settingsDomain "github.com/keypanel/keypanel/internal/settings/domain"
)

// SettingsRepository defines persistence operations for the settings record.
type SettingsRepository interface {
	// Get retrieves the settings record. Returns ErrSettingsNotFound if none exists.
	Get(ctx context.Context) (*settingsDomain.StoredSettings, error)

	// Upsert replaces the settings record, creating it when absent.
	Upsert(ctx context.Context, stored *settingsDomain.StoredSettings) error
}

// SettingsUseCase manages the panel's outbound messaging configuration.
// Reads and writes through the panel require an admin or better; Current is
// the ungated path for internal collaborators such as the dispatch sender.
type SettingsUseCase interface {
	// Get returns the settings with the bot token decrypted. Requires an admin
	// or better. Masking the token for display is the caller's concern.
	Get(ctx context.Context, actor *accessDomain.Key) (*settingsDomain.Settings, error)

	// Update replaces the settings, encrypting the bot token before storage.
	// Requires an admin or better.
	Update(
		ctx context.Context,
		actor *accessDomain.Key,
		input *settingsDomain.UpdateSettingsInput,
	) (*settingsDomain.Settings, error)

	// Current returns the settings with the bot token decrypted, without a
	// permission check. For internal use only, never exposed over HTTP.
	Current(ctx context.Context) (*settingsDomain.Settings, error)
}
