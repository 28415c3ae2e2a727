package app

import (
	"fmt"

	serversRepository "github.com/keypanel/keypanel/internal/servers/repository"
	serversUseCase "github.com/keypanel/keypanel/internal/servers/usecase"
)

// ServerTemplateRepository returns the server template repository based on the database driver.
func (c *Container) ServerTemplateRepository() (serversUseCase.ServerTemplateRepository, error) {
	var err error
	c.serverTemplateRepoInit.Do(func() {
		c.serverTemplateRepo, err = c.initServerTemplateRepository()
		if err != nil {
			c.initErrors["serverTemplateRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["serverTemplateRepository"]; exists {
		return nil, storedErr
	}
	return c.serverTemplateRepo, nil
}

// ServerTemplateUseCase returns the server template use case.
func (c *Container) ServerTemplateUseCase() (serversUseCase.ServerTemplateUseCase, error) {
	var err error
	c.serverTemplateUseCaseInit.Do(func() {
		c.serverTemplateUseCase, err = c.initServerTemplateUseCase()
		if err != nil {
			c.initErrors["serverTemplateUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["serverTemplateUseCase"]; exists {
		return nil, storedErr
	}
	return c.serverTemplateUseCase, nil
}

func (c *Container) initServerTemplateRepository() (serversUseCase.ServerTemplateRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for server template repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return serversRepository.NewPostgreSQLServerTemplateRepository(db), nil
	case "mysql":
		return serversRepository.NewMySQLServerTemplateRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initServerTemplateUseCase() (serversUseCase.ServerTemplateUseCase, error) {
	repo, err := c.ServerTemplateRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get server template repository for use case: %w", err)
	}
	return serversUseCase.NewDefaultServerTemplateUseCase(repo), nil
}
