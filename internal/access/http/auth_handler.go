package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/keypanel/keypanel/internal/access/http/dto"
	accessUseCase "github.com/keypanel/keypanel/internal/access/usecase"
	"github.com/keypanel/keypanel/internal/httputil"
	customValidation "github.com/keypanel/keypanel/internal/validation"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authUseCase accessUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(authUseCase accessUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// LoginHandler verifies a username/secret pair.
// POST /v1/login - No authentication required, rate limited per IP.
// Returns 200 OK with the key's identity, 401 with code "key_expired" for an
// expired pair, plain 401 for an unknown one.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	key, err := h.authUseCase.Authenticate(c.Request.Context(), req.Username, req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapKeyToLoginResponse(key))
}
