package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	"github.com/keypanel/keypanel/internal/access/http/dto"
	accessUseCase "github.com/keypanel/keypanel/internal/access/usecase"
	apperrors "github.com/keypanel/keypanel/internal/errors"
	"github.com/keypanel/keypanel/internal/httputil"
	customValidation "github.com/keypanel/keypanel/internal/validation"
)

// KeyHandler handles HTTP requests for access key lifecycle operations.
// All routes require an authenticated key in the request context.
type KeyHandler struct {
	keyUseCase accessUseCase.KeyUseCase
	logger     *slog.Logger
}

// NewKeyHandler creates a new key handler with required dependencies.
func NewKeyHandler(keyUseCase accessUseCase.KeyUseCase, logger *slog.Logger) *KeyHandler {
	return &KeyHandler{
		keyUseCase: keyUseCase,
		logger:     logger,
	}
}

// actor extracts the authenticated key from the request context.
func (h *KeyHandler) actor(c *gin.Context) (*accessDomain.Key, bool) {
	actor, ok := GetActor(c.Request.Context())
	if !ok || actor == nil {
		h.logger.Error("key handler: no authenticated key in context")
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return nil, false
	}
	return actor, true
}

// CreateHandler creates a new access key.
// POST /v1/keys
// Returns 201 Created with the new key including its secret value.
func (h *KeyHandler) CreateHandler(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.CreateKeyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	role, err := accessDomain.ParseRole(req.Role)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	input := &accessDomain.CreateKeyInput{
		Username:  req.Username,
		Value:     req.Value,
		Role:      role,
		ExpiresAt: req.ExpiresAt,
	}

	key, err := h.keyUseCase.Create(c.Request.Context(), actor, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapKeyToResponse(key))
}

// ListHandler retrieves all keys with secret values blanked where the actor
// is not permitted to view them.
// GET /v1/keys
// Returns 200 OK with the key list.
func (h *KeyHandler) ListHandler(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	keys, err := h.keyUseCase.List(c.Request.Context(), actor)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapKeysToListResponse(keys))
}

// DeleteHandler removes a key by ID.
// DELETE /v1/keys/:id
// Returns 204 No Content, also when the key was already gone.
func (h *KeyHandler) DeleteHandler(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid key ID format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.keyUseCase.Delete(c.Request.Context(), actor, keyID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// RotateHandler replaces the actor's own secret value in place.
// PUT /v1/keys/rotate
// Returns 200 OK with the updated key.
func (h *KeyHandler) RotateHandler(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.RotateKeyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	key, err := h.keyUseCase.Rotate(c.Request.Context(), actor, req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapKeyToResponse(key))
}

// RevealHandler discloses the secret value of a single key.
// GET /v1/keys/:id/value
// Returns 200 OK with the value, 403 when the visibility rules forbid it.
func (h *KeyHandler) RevealHandler(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid key ID format: must be a valid UUID"),
			h.logger)
		return
	}

	value, err := h.keyUseCase.RevealValue(c.Request.Context(), actor, keyID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.RevealValueResponse{Value: value})
}
