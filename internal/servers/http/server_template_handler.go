// Package http provides HTTP handlers for server template operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	accessHTTP "github.com/keypanel/keypanel/internal/access/http"
	apperrors "github.com/keypanel/keypanel/internal/errors"
	"github.com/keypanel/keypanel/internal/httputil"
	serversDomain "github.com/keypanel/keypanel/internal/servers/domain"
	"github.com/keypanel/keypanel/internal/servers/http/dto"
	serversUseCase "github.com/keypanel/keypanel/internal/servers/usecase"
	customValidation "github.com/keypanel/keypanel/internal/validation"
)

// ServerTemplateHandler handles HTTP requests for server template operations.
type ServerTemplateHandler struct {
	serverTemplateUseCase serversUseCase.ServerTemplateUseCase
	logger                *slog.Logger
}

// NewServerTemplateHandler creates a new server template handler with required dependencies.
func NewServerTemplateHandler(
	serverTemplateUseCase serversUseCase.ServerTemplateUseCase,
	logger *slog.Logger,
) *ServerTemplateHandler {
	return &ServerTemplateHandler{
		serverTemplateUseCase: serverTemplateUseCase,
		logger:                logger,
	}
}

func (h *ServerTemplateHandler) actor(c *gin.Context) (*accessDomain.Key, bool) {
	actor, ok := accessHTTP.GetActor(c.Request.Context())
	if !ok || actor == nil {
		h.logger.Error("server template handler: no authenticated key in context")
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return nil, false
	}
	return actor, true
}

// CreateHandler creates a new server template.
// POST /v1/servers - Requires an admin or better.
// Returns 201 Created with the new template.
func (h *ServerTemplateHandler) CreateHandler(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.CreateServerTemplateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &serversDomain.CreateServerTemplateInput{
		ServerName:    req.ServerName,
		CommandFormat: req.CommandFormat,
	}

	template, err := h.serverTemplateUseCase.Create(c.Request.Context(), actor, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapServerTemplateToResponse(template))
}

// ListHandler retrieves all server templates.
// GET /v1/servers
// Returns 200 OK with the template list.
func (h *ServerTemplateHandler) ListHandler(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	templates, err := h.serverTemplateUseCase.List(c.Request.Context(), actor)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapServerTemplatesToListResponse(templates))
}

// DeleteHandler removes a server template by ID.
// DELETE /v1/servers/:id - Requires an admin or better.
// Returns 204 No Content.
func (h *ServerTemplateHandler) DeleteHandler(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid server template ID format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.serverTemplateUseCase.Delete(c.Request.Context(), actor, templateID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
