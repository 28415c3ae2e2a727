// Package usecase defines business logic interfaces for command dispatch.
package usecase

import (
	"context"

	"github.com/google/uuid"

	dispatchDomain "github.com/keypanel/keypanel/internal/dispatch/domain"
	serversDomain "github.com/keypanel/keypanel/internal/servers/domain"
	settingsDomain "github.com/keypanel/keypanel/internal/settings/domain"
)

// ServerTemplateProvider looks up the command template for a server.
type ServerTemplateProvider interface {
	// GetByID retrieves a server template by ID. Returns
	// ErrServerTemplateNotFound if not found.
	GetByID(ctx context.Context, id uuid.UUID) (*serversDomain.ServerTemplate, error)
}

// SettingsProvider supplies the messaging channel configuration.
type SettingsProvider interface {
	// Current returns the settings with the bot token decrypted.
	Current(ctx context.Context) (*settingsDomain.Settings, error)
}

// DispatchUseCase formats a command from a server template and delivers it to
// the messaging channel. Any authenticated actor may dispatch; authentication
// is the transport layer's concern.
type DispatchUseCase interface {
	// Dispatch substitutes the target into the server's command format and
	// sends the result to the configured chat.
	Dispatch(ctx context.Context, input *dispatchDomain.DispatchInput) (*dispatchDomain.Dispatch, error)
}
