package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	"github.com/keypanel/keypanel/internal/access/http/dto"
	usecaseMocks "github.com/keypanel/keypanel/internal/access/usecase/mocks"
)

// setupAuditLogTestHandler creates a test audit log handler with mocked dependencies.
func setupAuditLogTestHandler(t *testing.T) (*AuditLogHandler, *usecaseMocks.MockKeyUseCase) {
	t.Helper()

	mockKeyUseCase := new(usecaseMocks.MockKeyUseCase)
	handler := NewAuditLogHandler(mockKeyUseCase, testLogger())

	return handler, mockKeyUseCase
}

func TestAuditLogHandler_ListHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupAuditLogTestHandler(t)

		actor := newTestKey("alice", "alice-secret", accessDomain.RoleAdmin)
		entries := []*accessDomain.AuditLog{
			{
				ID:             uuid.Must(uuid.NewV7()),
				ActorUsername:  "root",
				TargetUsername: "bob",
				Action:         accessDomain.AuditActionDeleted,
				TargetRole:     accessDomain.RoleUser,
				CreatedAt:      time.Now().UTC(),
			},
		}

		mockUseCase.On("History", mock.Anything, actor).Return(entries, nil).Once()

		c, w := createAuthedTestContext(http.MethodGet, "/v1/history", nil, actor)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListAuditLogsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, "root", response.Data[0].ActorUsername)
		assert.Equal(t, "bob", response.Data[0].TargetUsername)
		assert.Equal(t, "deleted", response.Data[0].Action)
		assert.Equal(t, "user", response.Data[0].TargetRole)
	})

	t.Run("Error_UserForbidden", func(t *testing.T) {
		handler, mockUseCase := setupAuditLogTestHandler(t)

		actor := newTestKey("bob", "bob-secret", accessDomain.RoleUser)

		mockUseCase.On("History", mock.Anything, actor).
			Return(nil, accessDomain.ErrNotPermitted).
			Once()

		c, w := createAuthedTestContext(http.MethodGet, "/v1/history", nil, actor)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Error_NoActorInContext", func(t *testing.T) {
		handler, _ := setupAuditLogTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/history", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuditLogHandler_ClearHandler(t *testing.T) {
	t.Run("Success_Developer", func(t *testing.T) {
		handler, mockUseCase := setupAuditLogTestHandler(t)

		actor := newTestKey("root", "root-secret", accessDomain.RoleDeveloper)

		mockUseCase.On("ClearHistory", mock.Anything, actor).Return(nil).Once()

		c, w := createAuthedTestContext(http.MethodDelete, "/v1/history", nil, actor)

		handler.ClearHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_NonDeveloperForbidden", func(t *testing.T) {
		handler, mockUseCase := setupAuditLogTestHandler(t)

		actor := newTestKey("carol", "carol-secret", accessDomain.RoleCreator)

		mockUseCase.On("ClearHistory", mock.Anything, actor).
			Return(accessDomain.ErrNotPermitted).
			Once()

		c, w := createAuthedTestContext(http.MethodDelete, "/v1/history", nil, actor)

		handler.ClearHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
