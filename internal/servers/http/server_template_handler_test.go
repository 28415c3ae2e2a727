package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	accessHTTP "github.com/keypanel/keypanel/internal/access/http"
	serversDomain "github.com/keypanel/keypanel/internal/servers/domain"
	"github.com/keypanel/keypanel/internal/servers/http/dto"
	usecaseMocks "github.com/keypanel/keypanel/internal/servers/usecase/mocks"
)

// setupTestHandler creates a test server template handler with mocked dependencies.
func setupTestHandler(t *testing.T) (*ServerTemplateHandler, *usecaseMocks.MockServerTemplateUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := new(usecaseMocks.MockServerTemplateUseCase)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewServerTemplateHandler(mockUseCase, logger), mockUseCase
}

// createAuthedTestContext creates a test Gin context with an authenticated key.
func createAuthedTestContext(
	method, path string,
	body interface{},
	actor *accessDomain.Key,
) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if actor != nil {
		req = req.WithContext(accessHTTP.WithActor(req.Context(), actor))
	}
	c.Request = req

	return c, w
}

func adminActor() *accessDomain.Key {
	now := time.Now().UTC()
	return &accessDomain.Key{
		ID:        uuid.Must(uuid.NewV7()),
		Username:  "alice",
		Value:     "alice-secret",
		Role:      accessDomain.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestServerTemplateHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		actor := adminActor()
		template := &serversDomain.ServerTemplate{
			ID:            uuid.Must(uuid.NewV7()),
			ServerName:    "eu-west",
			CommandFormat: "ban ${target} 30d",
			CreatedAt:     time.Now().UTC(),
		}

		request := dto.CreateServerTemplateRequest{
			ServerName:    "eu-west",
			CommandFormat: "ban ${target} 30d",
		}

		mockUseCase.On("Create", mock.Anything, actor,
			mock.MatchedBy(func(input *serversDomain.CreateServerTemplateInput) bool {
				return input.ServerName == "eu-west" && input.CommandFormat == "ban ${target} 30d"
			})).
			Return(template, nil).
			Once()

		c, w := createAuthedTestContext(http.MethodPost, "/v1/servers", request, actor)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.ServerTemplateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "eu-west", response.ServerName)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_MissingPlaceholder", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		request := dto.CreateServerTemplateRequest{
			ServerName:    "eu-west",
			CommandFormat: "ban everyone",
		}

		c, w := createAuthedTestContext(http.MethodPost, "/v1/servers", request, adminActor())

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_Forbidden", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		actor := adminActor()
		actor.Role = accessDomain.RoleUser

		request := dto.CreateServerTemplateRequest{
			ServerName:    "eu-west",
			CommandFormat: "ban ${target}",
		}

		mockUseCase.On("Create", mock.Anything, actor, mock.Anything).
			Return(nil, accessDomain.ErrNotPermitted).
			Once()

		c, w := createAuthedTestContext(http.MethodPost, "/v1/servers", request, actor)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Error_NoActorInContext", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		request := dto.CreateServerTemplateRequest{
			ServerName:    "eu-west",
			CommandFormat: "ban ${target}",
		}

		c, w := createAuthedTestContext(http.MethodPost, "/v1/servers", request, nil)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestServerTemplateHandler_ListHandler(t *testing.T) {
	handler, mockUseCase := setupTestHandler(t)

	actor := adminActor()
	templates := []*serversDomain.ServerTemplate{
		{ID: uuid.Must(uuid.NewV7()), ServerName: "eu-west", CommandFormat: "ban ${target}"},
		{ID: uuid.Must(uuid.NewV7()), ServerName: "us-east", CommandFormat: "kick ${target}"},
	}

	mockUseCase.On("List", mock.Anything, actor).Return(templates, nil).Once()

	c, w := createAuthedTestContext(http.MethodGet, "/v1/servers", nil, actor)

	handler.ListHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ListServerTemplatesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 2)
	assert.Equal(t, "eu-west", response.Data[0].ServerName)
}

func TestServerTemplateHandler_DeleteHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		actor := adminActor()
		id := uuid.Must(uuid.NewV7())

		mockUseCase.On("Delete", mock.Anything, actor, id).Return(nil).Once()

		c, w := createAuthedTestContext(http.MethodDelete, "/v1/servers/"+id.String(), nil, actor)
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Error_InvalidUUID", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createAuthedTestContext(http.MethodDelete, "/v1/servers/bogus", nil, adminActor())
		c.Params = gin.Params{{Key: "id", Value: "bogus"}}

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
