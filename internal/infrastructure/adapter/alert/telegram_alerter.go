// Package alert delivers operator alerts to the log and to a Telegram chat.
package alert

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
)

// TelegramConfig holds the bot credentials and the chat alerts go to
type TelegramConfig struct {
	Token     string
	ChatID    int64
	ServerURL string // Overrides the Bot API host, used by tests and proxies
	Timeout   time.Duration
}

// TelegramAlerter posts alerts to a Telegram chat
type TelegramAlerter struct {
	bot    *bot.Bot
	chatID int64
	logger coreport.Logger
}

// NewTelegramAlerter creates the alerter without calling getMe, so startup doesn't depend on Telegram
func NewTelegramAlerter(cfg TelegramConfig, logger coreport.Logger) (*TelegramAlerter, error) {
	if cfg.Token == "" || cfg.ChatID == 0 {
		return nil, fmt.Errorf("telegram alerting needs a token and chat id")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := []bot.Option{
		bot.WithSkipGetMe(),
		bot.WithHTTPClient(timeout, &http.Client{Timeout: timeout}),
	}
	if cfg.ServerURL != "" {
		opts = append(opts, bot.WithServerURL(cfg.ServerURL))
	}

	b, err := bot.New(cfg.Token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramAlerter{bot: b, chatID: cfg.ChatID, logger: logger}, nil
}

// Alert sends the alert as an HTML message
func (a *TelegramAlerter) Alert(ctx context.Context, alert coreport.Alert) error {
	_, err := a.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    a.chatID,
		Text:      formatAlert(alert),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		a.logger.Warn("Failed to deliver telegram alert", map[string]any{
			"title": alert.Title,
			"error": err.Error(),
		})
		return fmt.Errorf("send telegram alert: %w", err)
	}
	return nil
}

func formatAlert(alert coreport.Alert) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] <b>%s</b>\n", strings.ToUpper(string(alert.Severity)), html.EscapeString(alert.Title))
	if alert.Message != "" {
		sb.WriteString(html.EscapeString(alert.Message))
		sb.WriteString("\n")
	}

	keys := make([]string, 0, len(alert.Fields))
	for k := range alert.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "\n<code>%s</code>: %s", html.EscapeString(k), html.EscapeString(fmt.Sprint(alert.Fields[k])))
	}
	return sb.String()
}
