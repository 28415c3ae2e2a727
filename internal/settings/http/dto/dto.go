// Package dto provides data transfer objects for settings HTTP handling.
package dto

import (
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	settingsDomain "github.com/keypanel/keypanel/internal/settings/domain"
	customValidation "github.com/keypanel/keypanel/internal/validation"
)

// UpdateSettingsRequest contains the parameters for replacing the settings record.
type UpdateSettingsRequest struct {
	BotToken string `json:"bot_token"`
	ChatID   string `json:"chat_id"`
}

// Validate checks if the update settings request is valid.
func (r *UpdateSettingsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.BotToken,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.ChatID,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// SettingsResponse represents the settings in API responses. The bot token is
// always masked: the panel never echoes the full token back.
type SettingsResponse struct {
	BotToken  string    `json:"bot_token"`
	ChatID    string    `json:"chat_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapSettingsToResponse converts domain settings to an API response with the
// bot token masked.
func MapSettingsToResponse(settings *settingsDomain.Settings) SettingsResponse {
	return SettingsResponse{
		BotToken:  maskBotToken(settings.BotToken),
		ChatID:    settings.ChatID,
		UpdatedAt: settings.UpdatedAt,
	}
}

// maskBotToken hides all but the last four characters of the token.
func maskBotToken(token string) string {
	const visible = 4
	if len(token) <= visible {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-visible) + token[len(token)-visible:]
}
