package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	apperrors "github.com/keypanel/keypanel/internal/errors"
	settingsDomain "github.com/keypanel/keypanel/internal/settings/domain"
	settingsService "github.com/keypanel/keypanel/internal/settings/service"
)

// DefaultSettingsUseCase implements SettingsUseCase. The bot token passes
// through the token cipher on every read and write so the stored form never
// holds plaintext when a keeper is configured.
type DefaultSettingsUseCase struct {
	settingsRepository SettingsRepository
	tokenCipher        settingsService.TokenCipher
}

// NewDefaultSettingsUseCase creates a new DefaultSettingsUseCase.
func NewDefaultSettingsUseCase(
	settingsRepository SettingsRepository,
	tokenCipher settingsService.TokenCipher,
) *DefaultSettingsUseCase {
	return &DefaultSettingsUseCase{
		settingsRepository: settingsRepository,
		tokenCipher:        tokenCipher,
	}
}

// Get returns the settings with the bot token decrypted. Requires an admin or better.
func (d *DefaultSettingsUseCase) Get(
	ctx context.Context,
	actor *accessDomain.Key,
) (*settingsDomain.Settings, error) {
	if !actor.Role.Outranks(accessDomain.RoleUser) {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "settings require an admin role or better")
	}
	settings, err := d.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("DefaultSettingsUseCase.Get: %w", err)
	}
	return settings, nil
}

// Update replaces the settings record. Requires an admin or better.
func (d *DefaultSettingsUseCase) Update(
	ctx context.Context,
	actor *accessDomain.Key,
	input *settingsDomain.UpdateSettingsInput,
) (*settingsDomain.Settings, error) {
	if !actor.Role.Outranks(accessDomain.RoleUser) {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "settings require an admin role or better")
	}
	if strings.TrimSpace(input.BotToken) == "" {
		return nil, settingsDomain.ErrBotTokenRequired
	}
	if strings.TrimSpace(input.ChatID) == "" {
		return nil, settingsDomain.ErrChatIDRequired
	}

	ciphertext, err := d.tokenCipher.Encrypt(ctx, input.BotToken)
	if err != nil {
		return nil, fmt.Errorf("DefaultSettingsUseCase.Update: %w", err)
	}

	stored := &settingsDomain.StoredSettings{
		BotTokenCiphertext: ciphertext,
		ChatID:             input.ChatID,
		UpdatedAt:          time.Now().UTC(),
	}
	if err := d.settingsRepository.Upsert(ctx, stored); err != nil {
		return nil, fmt.Errorf("DefaultSettingsUseCase.Update: %w", err)
	}

	return &settingsDomain.Settings{
		BotToken:  input.BotToken,
		ChatID:    input.ChatID,
		UpdatedAt: stored.UpdatedAt,
	}, nil
}

// Current returns the settings with the bot token decrypted, without a
// permission check.
func (d *DefaultSettingsUseCase) Current(ctx context.Context) (*settingsDomain.Settings, error) {
	settings, err := d.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("DefaultSettingsUseCase.Current: %w", err)
	}
	return settings, nil
}

func (d *DefaultSettingsUseCase) load(ctx context.Context) (*settingsDomain.Settings, error) {
	stored, err := d.settingsRepository.Get(ctx)
	if err != nil {
		return nil, err
	}

	botToken, err := d.tokenCipher.Decrypt(ctx, stored.BotTokenCiphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt bot token: %w", err)
	}

	return &settingsDomain.Settings{
		BotToken:  botToken,
		ChatID:    stored.ChatID,
		UpdatedAt: stored.UpdatedAt,
	}, nil
}
