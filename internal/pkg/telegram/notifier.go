package telegram

import (
	"fmt"
	"log/slog"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier mirrors supervisor announcements to a Telegram channel.
// A nil Notifier is a no-op, so callers don't need to branch on config.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier authorizes the bot. Returns an error when the token is
// rejected; the caller decides whether Telegram is mandatory.
func NewNotifier(token string, chatIDStr string) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize telegram bot: %w", err)
	}
	bot.Debug = false

	chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid telegram chat id %q: %w", chatIDStr, err)
	}

	slog.Info("Telegram notifier authorized", "account", bot.Self.UserName)

	return &Notifier{bot: bot, chatID: chatID}, nil
}

// Broadcast sends a message to the configured channel.
func (n *Notifier) Broadcast(title, message string) error {
	if n == nil || n.bot == nil {
		return nil
	}

	msg := tgbotapi.NewMessage(n.chatID, fmt.Sprintf("*%s*\n%s", title, message))
	msg.ParseMode = "Markdown"
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
