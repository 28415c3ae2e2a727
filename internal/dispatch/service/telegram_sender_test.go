package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramSender_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
		}))
		defer server.Close()

		sender := NewTelegramSender(server.URL, 5*time.Second)
		err := sender.SendMessage(ctx, "123456:ABC", "-1001234567890", "ban alice")
		require.NoError(t, err)

		assert.Equal(t, "/bot123456:ABC/sendMessage", gotPath)
		assert.Equal(t, "-1001234567890", gotBody["chat_id"])
		assert.Equal(t, "ban alice", gotBody["text"])
	})

	t.Run("APIRejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "description": "Unauthorized"})
		}))
		defer server.Close()

		sender := NewTelegramSender(server.URL, 5*time.Second)
		err := sender.SendMessage(ctx, "bad-token", "-1001234567890", "ban alice")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unauthorized")
	})

	t.Run("UnreadableBody", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer server.Close()

		sender := NewTelegramSender(server.URL, 5*time.Second)
		err := sender.SendMessage(ctx, "123456:ABC", "-1001234567890", "ban alice")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 502")
	})

	t.Run("ConnectionRefused", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		sender := NewTelegramSender(server.URL, time.Second)
		err := sender.SendMessage(ctx, "123456:ABC", "-1001234567890", "ban alice")
		assert.Error(t, err)
	})
}
