// Package http provides the API server, router setup, and the metrics server.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	accessHTTP "github.com/keypanel/keypanel/internal/access/http"
	accessUseCase "github.com/keypanel/keypanel/internal/access/usecase"
	"github.com/keypanel/keypanel/internal/config"
	dispatchHTTP "github.com/keypanel/keypanel/internal/dispatch/http"
	serversHTTP "github.com/keypanel/keypanel/internal/servers/http"
	settingsHTTP "github.com/keypanel/keypanel/internal/settings/http"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new API server. The router is built separately with
// SetupRouter so tests can exercise pieces in isolation.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// RouterConfig carries the handlers and middleware the router needs.
type RouterConfig struct {
	Config            *config.Config
	AuthUseCase       accessUseCase.AuthUseCase
	AuthHandler       *accessHTTP.AuthHandler
	KeyHandler        *accessHTTP.KeyHandler
	AuditLogHandler   *accessHTTP.AuditLogHandler
	ServerTemplates   *serversHTTP.ServerTemplateHandler
	SettingsHandler   *settingsHTTP.SettingsHandler
	DispatchHandler   *dispatchHTTP.DispatchHandler
	MetricsMiddleware gin.HandlerFunc
}

// SetupRouter builds the gin router and registers all routes.
func (s *Server) SetupRouter(rc RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(
		rc.Config.CORSEnabled, rc.Config.CORSAllowOrigins, s.logger,
	); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if rc.MetricsMiddleware != nil {
		router.Use(rc.MetricsMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Login is the only unauthenticated v1 route; it carries its own per-IP
	// rate limit since it is the brute-force surface.
	loginHandlers := make([]gin.HandlerFunc, 0, 2)
	if rc.Config.RateLimitLoginEnabled {
		loginHandlers = append(loginHandlers, accessHTTP.LoginRateLimitMiddleware(
			rc.Config.RateLimitLoginRequestsPerSec,
			rc.Config.RateLimitLoginBurst,
			s.logger,
		))
	}
	loginHandlers = append(loginHandlers, rc.AuthHandler.LoginHandler)
	router.POST("/v1/login", loginHandlers...)

	v1 := router.Group("/v1")
	v1.Use(accessHTTP.AuthenticationMiddleware(rc.AuthUseCase, s.logger))
	{
		v1.GET("/keys", rc.KeyHandler.ListHandler)
		v1.POST("/keys", rc.KeyHandler.CreateHandler)
		v1.DELETE("/keys/:id", rc.KeyHandler.DeleteHandler)
		v1.GET("/keys/:id/value", rc.KeyHandler.RevealHandler)
		v1.PUT("/keys/rotate", rc.KeyHandler.RotateHandler)

		// The role gates repeat the use case rules at the edge so forbidden
		// requests are rejected before touching business logic.
		v1.GET("/history",
			accessHTTP.RequireRoleAbove(accessDomain.RoleUser, s.logger),
			rc.AuditLogHandler.ListHandler)
		v1.DELETE("/history",
			accessHTTP.RequireRoleAbove(accessDomain.RoleCreator, s.logger),
			rc.AuditLogHandler.ClearHandler)

		v1.GET("/servers", rc.ServerTemplates.ListHandler)
		v1.POST("/servers", rc.ServerTemplates.CreateHandler)
		v1.DELETE("/servers/:id", rc.ServerTemplates.DeleteHandler)

		v1.GET("/settings", rc.SettingsHandler.GetHandler)
		v1.PUT("/settings", rc.SettingsHandler.UpdateHandler)

		v1.POST("/dispatch", rc.DispatchHandler.DispatchHandler)
	}

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the API server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting api server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start api server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down api server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic, checking the
// database connection.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}
	status := http.StatusOK
	overall := "ready"

	if s.db == nil {
		components["database"] = "error"
		status = http.StatusServiceUnavailable
		overall = "not_ready"
	} else if err := s.db.PingContext(c.Request.Context()); err != nil {
		s.logger.Error("readiness database ping failed", slog.Any("error", err))
		components["database"] = "error"
		status = http.StatusServiceUnavailable
		overall = "not_ready"
	}

	c.JSON(status, gin.H{"status": overall, "components": components})
}
