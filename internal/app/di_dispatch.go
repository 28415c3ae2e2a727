package app

import (
	"fmt"

	dispatchService "github.com/keypanel/keypanel/internal/dispatch/service"
	dispatchUseCase "github.com/keypanel/keypanel/internal/dispatch/usecase"
)

// MessageSender returns the messaging API client used for command delivery.
func (c *Container) MessageSender() (dispatchService.MessageSender, error) {
	c.messageSenderInit.Do(func() {
		c.messageSender = dispatchService.NewTelegramSender(c.config.DispatchAPIBaseURL, c.config.DispatchTimeout)
	})
	return c.messageSender, nil
}

// DispatchUseCase returns the dispatch use case.
func (c *Container) DispatchUseCase() (dispatchUseCase.DispatchUseCase, error) {
	var err error
	c.dispatchUseCaseInit.Do(func() {
		c.dispatchUseCase, err = c.initDispatchUseCase()
		if err != nil {
			c.initErrors["dispatchUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["dispatchUseCase"]; exists {
		return nil, storedErr
	}
	return c.dispatchUseCase, nil
}

func (c *Container) initDispatchUseCase() (dispatchUseCase.DispatchUseCase, error) {
	templates, err := c.ServerTemplateRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get server template repository for dispatch use case: %w", err)
	}

	settings, err := c.SettingsUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings use case for dispatch use case: %w", err)
	}

	sender, err := c.MessageSender()
	if err != nil {
		return nil, fmt.Errorf("failed to get message sender for dispatch use case: %w", err)
	}

	return dispatchUseCase.NewDefaultDispatchUseCase(templates, settings, sender), nil
}
