package app

import (
	"context"
	"fmt"

	settingsRepository "github.com/keypanel/keypanel/internal/settings/repository"
	settingsService "github.com/keypanel/keypanel/internal/settings/service"
	settingsUseCase "github.com/keypanel/keypanel/internal/settings/usecase"
)

// TokenCipher returns the bot token cipher. When a keeper URI is configured the
// token passes through gocloud.dev/secrets; otherwise it is stored as-is.
func (c *Container) TokenCipher() (settingsService.TokenCipher, error) {
	var err error
	c.tokenCipherInit.Do(func() {
		c.tokenCipher, err = c.initTokenCipher()
		if err != nil {
			c.initErrors["tokenCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenCipher"]; exists {
		return nil, storedErr
	}
	return c.tokenCipher, nil
}

// SettingsRepository returns the settings repository based on the database driver.
func (c *Container) SettingsRepository() (settingsUseCase.SettingsRepository, error) {
	var err error
	c.settingsRepoInit.Do(func() {
		c.settingsRepo, err = c.initSettingsRepository()
		if err != nil {
			c.initErrors["settingsRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["settingsRepository"]; exists {
		return nil, storedErr
	}
	return c.settingsRepo, nil
}

// SettingsUseCase returns the settings use case.
func (c *Container) SettingsUseCase() (settingsUseCase.SettingsUseCase, error) {
	var err error
	c.settingsUseCaseInit.Do(func() {
		c.settingsUseCaseImpl, err = c.initSettingsUseCase()
		if err != nil {
			c.initErrors["settingsUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["settingsUseCase"]; exists {
		return nil, storedErr
	}
	return c.settingsUseCaseImpl, nil
}

func (c *Container) initTokenCipher() (settingsService.TokenCipher, error) {
	if c.config.SettingsKeeperURI == "" {
		c.Logger().Warn("no settings keeper URI configured, bot token will be stored in plain text")
		return settingsService.NewPlaintextTokenCipher(), nil
	}

	cipher, err := settingsService.NewKeeperTokenCipher(context.Background(), c.config.SettingsKeeperURI)
	if err != nil {
		return nil, fmt.Errorf("failed to create keeper token cipher: %w", err)
	}
	return cipher, nil
}

func (c *Container) initSettingsRepository() (settingsUseCase.SettingsRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for settings repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return settingsRepository.NewPostgreSQLSettingsRepository(db), nil
	case "mysql":
		return settingsRepository.NewMySQLSettingsRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initSettingsUseCase() (settingsUseCase.SettingsUseCase, error) {
	repo, err := c.SettingsRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings repository for use case: %w", err)
	}

	cipher, err := c.TokenCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get token cipher for settings use case: %w", err)
	}

	return settingsUseCase.NewDefaultSettingsUseCase(repo, cipher), nil
}
