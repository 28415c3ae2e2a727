package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	"github.com/keypanel/keypanel/internal/access/http/dto"
	usecaseMocks "github.com/keypanel/keypanel/internal/access/usecase/mocks"
)

// setupAuthTestHandler creates a test auth handler with mocked dependencies.
func setupAuthTestHandler(t *testing.T) (*AuthHandler, *usecaseMocks.MockAuthUseCase) {
	t.Helper()

	mockAuthUseCase := new(usecaseMocks.MockAuthUseCase)
	handler := NewAuthHandler(mockAuthUseCase, testLogger())

	return handler, mockAuthUseCase
}

func TestAuthHandler_LoginHandler(t *testing.T) {
	t.Run("Success_ValidCredentials", func(t *testing.T) {
		handler, mockUseCase := setupAuthTestHandler(t)

		key := newTestKey("alice", "alice-secret", accessDomain.RoleAdmin)
		request := dto.LoginRequest{Username: "alice", Value: "alice-secret"}

		mockUseCase.On("Authenticate", mock.Anything, "alice", "alice-secret").
			Return(key, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/login", request)

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.LoginResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, key.ID.String(), response.ID)
		assert.Equal(t, "alice", response.Username)
		assert.Equal(t, "admin", response.Role)
		assert.NotContains(t, w.Body.String(), "alice-secret")

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupAuthTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/login", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "validation_error", response["error"])
	})

	t.Run("Error_BlankUsername", func(t *testing.T) {
		handler, _ := setupAuthTestHandler(t)

		request := dto.LoginRequest{Username: "   ", Value: "secret"}

		c, w := createTestContext(http.MethodPost, "/v1/login", request)

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_UnknownPair", func(t *testing.T) {
		handler, mockUseCase := setupAuthTestHandler(t)

		request := dto.LoginRequest{Username: "alice", Value: "wrong"}

		mockUseCase.On("Authenticate", mock.Anything, "alice", "wrong").
			Return(nil, accessDomain.ErrInvalidKey).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/login", request)

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "unauthorized", response["error"])
	})

	t.Run("Error_ExpiredKeyHasDistinctCode", func(t *testing.T) {
		handler, mockUseCase := setupAuthTestHandler(t)

		request := dto.LoginRequest{Username: "alice", Value: "alice-secret"}

		mockUseCase.On("Authenticate", mock.Anything, "alice", "alice-secret").
			Return(nil, accessDomain.ErrKeyExpired).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/login", request)

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "key_expired", response["code"])
	})
}
