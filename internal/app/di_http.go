package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	accessHTTP "github.com/keypanel/keypanel/internal/access/http"
	dispatchHTTP "github.com/keypanel/keypanel/internal/dispatch/http"
	"github.com/keypanel/keypanel/internal/http"
	"github.com/keypanel/keypanel/internal/metrics"
	serversHTTP "github.com/keypanel/keypanel/internal/servers/http"
	settingsHTTP "github.com/keypanel/keypanel/internal/settings/http"
)

func (c *Container) buildRouterConfig() (http.RouterConfig, error) {
	logger := c.Logger()

	authUseCase, err := c.AuthUseCase()
	if err != nil {
		return http.RouterConfig{}, fmt.Errorf("failed to get auth use case for router: %w", err)
	}

	keyUseCase, err := c.KeyUseCase()
	if err != nil {
		return http.RouterConfig{}, fmt.Errorf("failed to get key use case for router: %w", err)
	}

	serverTemplateUseCase, err := c.ServerTemplateUseCase()
	if err != nil {
		return http.RouterConfig{}, fmt.Errorf("failed to get server template use case for router: %w", err)
	}

	settingsUseCase, err := c.SettingsUseCase()
	if err != nil {
		return http.RouterConfig{}, fmt.Errorf("failed to get settings use case for router: %w", err)
	}

	dispatchUseCase, err := c.DispatchUseCase()
	if err != nil {
		return http.RouterConfig{}, fmt.Errorf("failed to get dispatch use case for router: %w", err)
	}

	var metricsMiddleware gin.HandlerFunc
	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return http.RouterConfig{}, fmt.Errorf("failed to get metrics provider for router: %w", err)
		}
		metricsMiddleware = metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace)
	}

	return http.RouterConfig{
		Config:            c.config,
		AuthUseCase:       authUseCase,
		AuthHandler:       accessHTTP.NewAuthHandler(authUseCase, logger),
		KeyHandler:        accessHTTP.NewKeyHandler(keyUseCase, logger),
		AuditLogHandler:   accessHTTP.NewAuditLogHandler(keyUseCase, logger),
		ServerTemplates:   serversHTTP.NewServerTemplateHandler(serverTemplateUseCase, logger),
		SettingsHandler:   settingsHTTP.NewSettingsHandler(settingsUseCase, logger),
		DispatchHandler:   dispatchHTTP.NewDispatchHandler(dispatchUseCase, logger),
		MetricsMiddleware: metricsMiddleware,
	}, nil
}
