// Package notify posts test run summaries to external channels.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const telegramAPI = "https://api.telegram.org"

// Notifier sends a notification message.
type Notifier interface {
	Post(ctx context.Context, text string) error
}

// TelegramNotifier sends messages through the Telegram Bot API.
type TelegramNotifier struct {
	BotToken string
	ChatID   string
	Client   *http.Client
	// BaseURL overrides the Telegram API host, used in tests.
	BaseURL string
	// LogOutput receives delivery failures, os.Stderr when nil.
	LogOutput io.Writer
}

func NewTelegramNotifier(botToken, chatID string) *TelegramNotifier {
	return &TelegramNotifier{
		BotToken: botToken,
		ChatID:   chatID,
		Client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether both the bot token and chat id are set.
func (n *TelegramNotifier) Configured() bool {
	return n.BotToken != "" && n.ChatID != ""
}

// Post sends text to the configured chat. An unconfigured notifier is a
// no-op so a missing token never fails a test run.
func (n *TelegramNotifier) Post(ctx context.Context, text string) error {
	if !n.Configured() {
		return nil
	}
	base := n.BaseURL
	if base == "" {
		base = telegramAPI
	}
	payload, err := json.Marshal(map[string]string{
		"chat_id": n.ChatID,
		"text":    text,
	})
	if err != nil {
		return fmt.Errorf("encode telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", base, n.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("telegram api status %d: %s", resp.StatusCode, body)
	}
	return nil
}

// Notify posts text and logs any failure instead of returning it, so a
// broken notification channel can never fail the run that produced it.
func (n *TelegramNotifier) Notify(ctx context.Context, text string) {
	if err := n.Post(ctx, text); err != nil {
		fmt.Fprintf(n.logWriter(), "telegram notification failed: %v\n", err)
	}
}

func (n *TelegramNotifier) logWriter() io.Writer {
	if n.LogOutput != nil {
		return n.LogOutput
	}
	return os.Stderr
}
