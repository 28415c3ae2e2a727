// Package service provides delivery of dispatch commands to the messaging API.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// MessageSender delivers a text message to a chat through the messaging API.
type MessageSender interface {
	SendMessage(ctx context.Context, botToken, chatID, text string) error
}

// TelegramSender implements MessageSender against the Telegram Bot API
// sendMessage method.
type TelegramSender struct {
	baseURL string
	client  *http.Client
}

// NewTelegramSender creates a new TelegramSender. The base URL is configurable
// so tests can point it at a local server.
func NewTelegramSender(baseURL string, timeout time.Duration) *TelegramSender {
	return &TelegramSender{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage posts the text to the chat. The bot token goes in the URL path,
// never in a header or the body, matching the Bot API contract.
func (s *TelegramSender) SendMessage(ctx context.Context, botToken, chatID, text string) error {
	payload, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode sendMessage payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call messaging API: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read messaging API response: %w", err)
	}

	var decoded sendMessageResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return fmt.Errorf("messaging API returned status %d with unreadable body", resp.StatusCode)
	}
	if !decoded.OK {
		if decoded.Description == "" {
			decoded.Description = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return fmt.Errorf("messaging API rejected sendMessage: %s", decoded.Description)
	}
	return nil
}
