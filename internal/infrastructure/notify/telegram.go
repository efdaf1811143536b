package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	// MinIntervalSeconds is the default minimum interval between notifications
	MinIntervalSeconds = 10

	// DefaultTelegramURL is the bot API prefix the token is appended to
	DefaultTelegramURL = "https://api.telegram.org/bot"
)

// TelegramConfig holds the configuration for the Telegram notifier
type TelegramConfig struct {
	BotToken        string
	ChatID          string
	IntervalSeconds int
	BaseURL         string
	HTTPClient      *http.Client
}

// TelegramNotifier sends string events to a Telegram chat.
// Events arriving faster than the interval are dropped.
type TelegramNotifier struct {
	botToken   string
	chatID     string
	baseURL    string
	httpClient *http.Client

	interval     time.Duration
	lastSentTime time.Time
	mu           sync.Mutex
}

// NewTelegramNotifier creates a new TelegramNotifier
func NewTelegramNotifier(cfg TelegramConfig) (*TelegramNotifier, error) {
	if cfg.BotToken == "" || cfg.ChatID == "" {
		return nil, errors.New("bot token and chat ID are required")
	}
	if cfg.IntervalSeconds <= 0 {
		cfg.IntervalSeconds = MinIntervalSeconds
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultTelegramURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}

	return &TelegramNotifier{
		botToken:   cfg.BotToken,
		chatID:     cfg.ChatID,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		interval:   time.Duration(cfg.IntervalSeconds) * time.Second,
	}, nil
}

// Send sends a notification to a Telegram chat
func (t *TelegramNotifier) Send(ctx context.Context, event Event) error {
	message, ok := event.Data.(string)
	if !ok {
		return fmt.Errorf("telegram notifier expects string data, got %T", event.Data)
	}

	t.mu.Lock()
	now := time.Now()
	if !t.lastSentTime.IsZero() && now.Sub(t.lastSentTime) < t.interval {
		t.mu.Unlock()
		return nil
	}
	t.lastSentTime = now
	t.mu.Unlock()

	params := url.Values{}
	params.Set("chat_id", t.chatID)
	params.Set("text", message)
	params.Set("parse_mode", "HTML")

	apiURL := t.baseURL + t.botToken + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(params.Encode()))
	if err != nil {
		return errors.New("creating telegram request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		// the request URL carries the bot token, keep it out of the error
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("sending telegram message: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
