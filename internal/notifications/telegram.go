package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTelegramHost is the public Telegram Bot API host.
const DefaultTelegramHost = "https://api.telegram.org"

// TelegramNotifier delivers operator messages through the Telegram Bot
// API.
type TelegramNotifier struct {
	host   string
	token  string
	chatID string
	client *http.Client
}

// NewTelegramNotifier creates a notifier for the given bot token and
// chat. An empty host selects the public Bot API.
func NewTelegramNotifier(host, token, chatID string) *TelegramNotifier {
	if host == "" {
		host = DefaultTelegramHost
	}
	return &TelegramNotifier{
		host:   host,
		token:  token,
		chatID: chatID,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SendAlert posts a Markdown-formatted message to the configured chat.
func (t *TelegramNotifier) SendAlert(level, message string) error {
	emoji := "ℹ️"
	switch level {
	case "warning":
		emoji = "⚠️"
	case "error":
		emoji = "🚨"
	case "success":
		emoji = "✅"
	}

	text := fmt.Sprintf("%s *Dust Converter*\n\n%s", emoji, message)

	payload, err := json.Marshal(map[string]string{
		"chat_id":    t.chatID,
		"text":       text,
		"parse_mode": "Markdown",
	})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	apiURL := fmt.Sprintf("%s/bot%s/sendMessage", t.host, t.token)

	resp, err := t.client.Post(apiURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, body)
	}

	return nil
}
