package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	usecaseMocks "github.com/keypanel/keypanel/internal/access/usecase/mocks"
)

func TestAuthenticationMiddleware(t *testing.T) {
	t.Run("Success_ValidBasicCredentials", func(t *testing.T) {
		mockAuthUseCase := new(usecaseMocks.MockAuthUseCase)
		key := newTestKey("alice", "alice-secret", accessDomain.RoleAdmin)

		mockAuthUseCase.On("Authenticate", mock.Anything, "alice", "alice-secret").
			Return(key, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/keys", nil)
		c.Request.SetBasicAuth("alice", "alice-secret")

		var gotActor *accessDomain.Key
		middleware := AuthenticationMiddleware(mockAuthUseCase, testLogger())
		handlerCalled := false
		run(c, middleware, func(c *gin.Context) {
			handlerCalled = true
			gotActor, _ = GetActor(c.Request.Context())
		})

		assert.True(t, handlerCalled)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, gotActor)
		assert.Equal(t, key.ID, gotActor.ID)
	})

	t.Run("Error_MissingCredentials", func(t *testing.T) {
		mockAuthUseCase := new(usecaseMocks.MockAuthUseCase)

		c, w := createTestContext(http.MethodGet, "/v1/keys", nil)

		handlerCalled := false
		run(c, AuthenticationMiddleware(mockAuthUseCase, testLogger()), func(c *gin.Context) {
			handlerCalled = true
		})

		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_UnknownPair", func(t *testing.T) {
		mockAuthUseCase := new(usecaseMocks.MockAuthUseCase)

		mockAuthUseCase.On("Authenticate", mock.Anything, "alice", "wrong").
			Return(nil, accessDomain.ErrInvalidKey).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/keys", nil)
		c.Request.SetBasicAuth("alice", "wrong")

		handlerCalled := false
		run(c, AuthenticationMiddleware(mockAuthUseCase, testLogger()), func(c *gin.Context) {
			handlerCalled = true
		})

		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_ExpiredKey", func(t *testing.T) {
		mockAuthUseCase := new(usecaseMocks.MockAuthUseCase)

		mockAuthUseCase.On("Authenticate", mock.Anything, "alice", "alice-secret").
			Return(nil, accessDomain.ErrKeyExpired).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/keys", nil)
		c.Request.SetBasicAuth("alice", "alice-secret")

		run(c, AuthenticationMiddleware(mockAuthUseCase, testLogger()), func(c *gin.Context) {})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "key_expired")
	})
}

func TestRequireRoleAbove(t *testing.T) {
	t.Run("Success_AdminOutranksUser", func(t *testing.T) {
		actor := newTestKey("alice", "alice-secret", accessDomain.RoleAdmin)

		c, w := createAuthedTestContext(http.MethodGet, "/v1/history", nil, actor)

		handlerCalled := false
		run(c, RequireRoleAbove(accessDomain.RoleUser, testLogger()), func(c *gin.Context) {
			handlerCalled = true
		})

		assert.True(t, handlerCalled)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_UserDoesNotOutrankUser", func(t *testing.T) {
		actor := newTestKey("bob", "bob-secret", accessDomain.RoleUser)

		c, w := createAuthedTestContext(http.MethodGet, "/v1/history", nil, actor)

		handlerCalled := false
		run(c, RequireRoleAbove(accessDomain.RoleUser, testLogger()), func(c *gin.Context) {
			handlerCalled = true
		})

		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Error_NoActorInContext", func(t *testing.T) {
		c, w := createTestContext(http.MethodGet, "/v1/history", nil)

		run(c, RequireRoleAbove(accessDomain.RoleUser, testLogger()), func(c *gin.Context) {})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// run executes a middleware followed by a handler against a test context.
func run(c *gin.Context, middleware gin.HandlerFunc, handler gin.HandlerFunc) {
	middleware(c)
	if !c.IsAborted() {
		handler(c)
	}
}
