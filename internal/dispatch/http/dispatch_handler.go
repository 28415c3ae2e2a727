// Package http provides HTTP handlers for command dispatch.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	accessHTTP "github.com/keypanel/keypanel/internal/access/http"
	dispatchDomain "github.com/keypanel/keypanel/internal/dispatch/domain"
	"github.com/keypanel/keypanel/internal/dispatch/http/dto"
	dispatchUseCase "github.com/keypanel/keypanel/internal/dispatch/usecase"
	apperrors "github.com/keypanel/keypanel/internal/errors"
	"github.com/keypanel/keypanel/internal/httputil"
	customValidation "github.com/keypanel/keypanel/internal/validation"
)

// DispatchHandler handles HTTP requests for command dispatch.
type DispatchHandler struct {
	dispatchUseCase dispatchUseCase.DispatchUseCase
	logger          *slog.Logger
}

// NewDispatchHandler creates a new dispatch handler with required dependencies.
func NewDispatchHandler(dispatchUseCase dispatchUseCase.DispatchUseCase, logger *slog.Logger) *DispatchHandler {
	return &DispatchHandler{
		dispatchUseCase: dispatchUseCase,
		logger:          logger,
	}
}

// DispatchHandler formats a server's command for the target and delivers it.
// POST /v1/dispatch
// Returns 200 OK with the delivered command, 404 for an unknown server,
// 503 when the channel is unconfigured or the messaging API fails.
func (h *DispatchHandler) DispatchHandler(c *gin.Context) {
	actor, ok := accessHTTP.GetActor(c.Request.Context())
	if !ok || actor == nil {
		h.logger.Error("dispatch handler: no authenticated key in context")
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.DispatchRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	serverID, err := uuid.Parse(req.ServerID)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	input := &dispatchDomain.DispatchInput{
		ServerID: serverID,
		Target:   req.Target,
	}

	dispatch, err := h.dispatchUseCase.Dispatch(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("command dispatched",
		slog.String("actor", actor.Username),
		slog.String("server", dispatch.ServerName),
	)

	c.JSON(http.StatusOK, dto.MapDispatchToResponse(dispatch))
}
