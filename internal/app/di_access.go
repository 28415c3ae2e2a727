package app

import (
	"fmt"

	accessRepository "github.com/keypanel/keypanel/internal/access/repository"
	accessService "github.com/keypanel/keypanel/internal/access/service"
	accessUseCase "github.com/keypanel/keypanel/internal/access/usecase"
)

// SecretService returns the secret service for key generation and comparison.
func (c *Container) SecretService() accessService.SecretService {
	c.secretServiceInit.Do(func() {
		c.secretService = accessService.NewSecretService()
	})
	return c.secretService
}

// KeyRepository returns the access key repository based on the database driver.
func (c *Container) KeyRepository() (accessUseCase.KeyRepository, error) {
	var err error
	c.keyRepoInit.Do(func() {
		c.keyRepo, err = c.initKeyRepository()
		if err != nil {
			c.initErrors["keyRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyRepository"]; exists {
		return nil, storedErr
	}
	return c.keyRepo, nil
}

// AuditLogRepository returns the audit log repository based on the database driver.
func (c *Container) AuditLogRepository() (accessUseCase.AuditLogRepository, error) {
	var err error
	c.auditLogRepoInit.Do(func() {
		c.auditLogRepo, err = c.initAuditLogRepository()
		if err != nil {
			c.initErrors["auditLogRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditLogRepository"]; exists {
		return nil, storedErr
	}
	return c.auditLogRepo, nil
}

// AuthUseCase returns the authentication use case.
func (c *Container) AuthUseCase() (accessUseCase.AuthUseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUseCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// AuditLogUseCase returns the audit log use case.
func (c *Container) AuditLogUseCase() (accessUseCase.AuditLogUseCase, error) {
	var err error
	c.auditLogUseCaseInit.Do(func() {
		c.auditLogUseCase, err = c.initAuditLogUseCase()
		if err != nil {
			c.initErrors["auditLogUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditLogUseCase"]; exists {
		return nil, storedErr
	}
	return c.auditLogUseCase, nil
}

// KeyUseCase returns the key lifecycle use case, wrapped with business metrics.
func (c *Container) KeyUseCase() (accessUseCase.KeyUseCase, error) {
	var err error
	c.keyUseCaseInit.Do(func() {
		c.keyUseCase, err = c.initKeyUseCase()
		if err != nil {
			c.initErrors["keyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyUseCase"]; exists {
		return nil, storedErr
	}
	return c.keyUseCase, nil
}

func (c *Container) initKeyRepository() (accessUseCase.KeyRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for key repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return accessRepository.NewPostgreSQLKeyRepository(db), nil
	case "mysql":
		return accessRepository.NewMySQLKeyRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initAuditLogRepository() (accessUseCase.AuditLogRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for audit log repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return accessRepository.NewPostgreSQLAuditLogRepository(db), nil
	case "mysql":
		return accessRepository.NewMySQLAuditLogRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initAuthUseCase() (accessUseCase.AuthUseCase, error) {
	keyRepo, err := c.KeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get key repository for auth use case: %w", err)
	}
	return accessUseCase.NewDefaultAuthUseCase(keyRepo, c.SecretService()), nil
}

func (c *Container) initAuditLogUseCase() (accessUseCase.AuditLogUseCase, error) {
	auditLogRepo, err := c.AuditLogRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log repository for audit log use case: %w", err)
	}
	return accessUseCase.NewDefaultAuditLogUseCase(auditLogRepo), nil
}

func (c *Container) initKeyUseCase() (accessUseCase.KeyUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for key use case: %w", err)
	}

	keyRepo, err := c.KeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get key repository for key use case: %w", err)
	}

	auditLogUseCase, err := c.AuditLogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log use case for key use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for key use case: %w", err)
	}

	useCase := accessUseCase.NewDefaultKeyUseCase(txManager, keyRepo, auditLogUseCase, c.SecretService())
	return accessUseCase.NewKeyUseCaseWithMetrics(useCase, businessMetrics), nil
}
