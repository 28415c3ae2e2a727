package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	accessUseCase "github.com/keypanel/keypanel/internal/access/usecase"
	apperrors "github.com/keypanel/keypanel/internal/errors"
	"github.com/keypanel/keypanel/internal/httputil"
)

// AuthenticationMiddleware authenticates requests via HTTP Basic credentials,
// where the username is the key's username and the password is its secret
// value. The authenticated key is stored in the request context for handlers
// to read via GetActor.
//
// Error handling:
//   - Missing or malformed credentials → 401 Unauthorized
//   - Unknown pair → 401 Unauthorized
//   - Expired key → 401 Unauthorized with code "key_expired"
func AuthenticationMiddleware(authUseCase accessUseCase.AuthUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, secret, ok := c.Request.BasicAuth()
		if !ok || username == "" {
			logger.Debug("authentication failed: missing basic credentials")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		key, err := authUseCase.Authenticate(c.Request.Context(), username, secret)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("username", username),
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithActor(c.Request.Context(), key)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("key_id", key.ID.String()),
			slog.String("username", key.Username),
			slog.String("role", string(key.Role)))

		c.Next()
	}
}

// RequireRoleAbove rejects requests whose authenticated key does not outrank
// the given role. MUST be used after AuthenticationMiddleware.
func RequireRoleAbove(role accessDomain.Role, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c.Request.Context())
		if !ok || actor == nil {
			logger.Error("role middleware: no authenticated key in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !actor.Role.Outranks(role) {
			logger.Debug("authorization failed: insufficient role",
				slog.String("username", actor.Username),
				slog.String("role", string(actor.Role)))
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
