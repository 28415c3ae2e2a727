package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	"github.com/keypanel/keypanel/internal/access/http/dto"
	accessUseCase "github.com/keypanel/keypanel/internal/access/usecase"
	apperrors "github.com/keypanel/keypanel/internal/errors"
	"github.com/keypanel/keypanel/internal/httputil"
)

// AuditLogHandler handles HTTP requests for the audit log.
type AuditLogHandler struct {
	keyUseCase accessUseCase.KeyUseCase
	logger     *slog.Logger
}

// NewAuditLogHandler creates a new audit log handler with required dependencies.
func NewAuditLogHandler(keyUseCase accessUseCase.KeyUseCase, logger *slog.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		keyUseCase: keyUseCase,
		logger:     logger,
	}
}

func (h *AuditLogHandler) actor(c *gin.Context) (*accessDomain.Key, bool) {
	actor, ok := GetActor(c.Request.Context())
	if !ok || actor == nil {
		h.logger.Error("audit log handler: no authenticated key in context")
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return nil, false
	}
	return actor, true
}

// ListHandler retrieves the audit log, newest entries first.
// GET /v1/history - Requires an admin or better.
// Returns 200 OK with the entry list.
func (h *AuditLogHandler) ListHandler(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	entries, err := h.keyUseCase.History(c.Request.Context(), actor)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAuditLogsToListResponse(entries))
}

// ClearHandler wipes the audit log.
// DELETE /v1/history - Requires a developer.
// Returns 204 No Content.
func (h *AuditLogHandler) ClearHandler(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	if err := h.keyUseCase.ClearHistory(c.Request.Context(), actor); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
