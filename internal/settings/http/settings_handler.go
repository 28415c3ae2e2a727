// Package http provides HTTP handlers for panel settings.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	accessHTTP "github.com/keypanel/keypanel/internal/access/http"
	apperrors "github.com/keypanel/keypanel/internal/errors"
	"github.com/keypanel/keypanel/internal/httputil"
	settingsDomain "github.com/keypanel/keypanel/internal/settings/domain"
	"github.com/keypanel/keypanel/internal/settings/http/dto"
	settingsUseCase "github.com/keypanel/keypanel/internal/settings/usecase"
	customValidation "github.com/keypanel/keypanel/internal/validation"
)

// SettingsHandler handles HTTP requests for the panel settings.
// All routes require an authenticated key in the request context.
type SettingsHandler struct {
	settingsUseCase settingsUseCase.SettingsUseCase
	logger          *slog.Logger
}

// NewSettingsHandler creates a new settings handler with required dependencies.
func NewSettingsHandler(settingsUseCase settingsUseCase.SettingsUseCase, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
		logger:          logger,
	}
}

// actor extracts the authenticated key from the request context.
func (h *SettingsHandler) actor(c *gin.Context) (*accessDomain.Key, bool) {
	actor, ok := accessHTTP.GetActor(c.Request.Context())
	if !ok || actor == nil {
		h.logger.Error("settings handler: no authenticated key in context")
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return nil, false
	}
	return actor, true
}

// GetHandler retrieves the settings with the bot token masked.
// GET /v1/settings
// Returns 200 OK, or 404 when no settings have been stored yet.
func (h *SettingsHandler) GetHandler(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	settings, err := h.settingsUseCase.Get(c.Request.Context(), actor)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSettingsToResponse(settings))
}

// UpdateHandler replaces the settings record.
// PUT /v1/settings
// Returns 200 OK with the stored settings, bot token masked.
func (h *SettingsHandler) UpdateHandler(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &settingsDomain.UpdateSettingsInput{
		BotToken: req.BotToken,
		ChatID:   req.ChatID,
	}

	settings, err := h.settingsUseCase.Update(c.Request.Context(), actor, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSettingsToResponse(settings))
}
