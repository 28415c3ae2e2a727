package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	dispatchDomain "github.com/keypanel/keypanel/internal/dispatch/domain"
	dispatchService "github.com/keypanel/keypanel/internal/dispatch/service"
	apperrors "github.com/keypanel/keypanel/internal/errors"
	settingsDomain "github.com/keypanel/keypanel/internal/settings/domain"
)

// DefaultDispatchUseCase implements DispatchUseCase.
type DefaultDispatchUseCase struct {
	serverTemplates ServerTemplateProvider
	settings        SettingsProvider
	messageSender   dispatchService.MessageSender
}

// NewDefaultDispatchUseCase creates a new DefaultDispatchUseCase.
func NewDefaultDispatchUseCase(
	serverTemplates ServerTemplateProvider,
	settings SettingsProvider,
	messageSender dispatchService.MessageSender,
) *DefaultDispatchUseCase {
	return &DefaultDispatchUseCase{
		serverTemplates: serverTemplates,
		settings:        settings,
		messageSender:   messageSender,
	}
}

// Dispatch formats the server's command for the target and sends it to the
// configured chat. The template and settings are read fresh on every call so
// a settings update takes effect immediately.
func (d *DefaultDispatchUseCase) Dispatch(
	ctx context.Context,
	input *dispatchDomain.DispatchInput,
) (*dispatchDomain.Dispatch, error) {
	if strings.TrimSpace(input.Target) == "" {
		return nil, dispatchDomain.ErrTargetRequired
	}

	template, err := d.serverTemplates.GetByID(ctx, input.ServerID)
	if err != nil {
		return nil, fmt.Errorf("DefaultDispatchUseCase.Dispatch: %w", err)
	}

	settings, err := d.settings.Current(ctx)
	if err != nil {
		if apperrors.Is(err, settingsDomain.ErrSettingsNotFound) {
			return nil, dispatchDomain.ErrNotConfigured
		}
		return nil, fmt.Errorf("DefaultDispatchUseCase.Dispatch: %w", err)
	}

	command := template.FormatCommand(input.Target)

	if err := d.messageSender.SendMessage(ctx, settings.BotToken, settings.ChatID, command); err != nil {
		return nil, apperrors.Wrap(dispatchDomain.ErrDeliveryFailed, err.Error())
	}

	return &dispatchDomain.Dispatch{
		ServerName: template.ServerName,
		Command:    command,
		ChatID:     settings.ChatID,
		SentAt:     time.Now().UTC(),
	}, nil
}
