package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
)

// testLogger returns a logger that discards all output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestKey builds a key for handler tests.
func newTestKey(username, value string, role accessDomain.Role) *accessDomain.Key {
	now := time.Now().UTC()
	return &accessDomain.Key{
		ID:        uuid.Must(uuid.NewV7()),
		Username:  username,
		Value:     value,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// createTestContext creates a test Gin context with the given request.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

// createAuthedTestContext creates a test Gin context with an authenticated
// key already stored, as AuthenticationMiddleware would have left it.
func createAuthedTestContext(
	method, path string,
	body interface{},
	actor *accessDomain.Key,
) (*gin.Context, *httptest.ResponseRecorder) {
	c, w := createTestContext(method, path, body)
	c.Request = c.Request.WithContext(WithActor(c.Request.Context(), actor))
	return c, w
}
