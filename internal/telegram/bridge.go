package telegram

import (
	"fmt"

	"lot-market/internal/models"
	"lot-market/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// AccountRegistrar is the slice of the account service the bridge needs.
type AccountRegistrar interface {
	RegisterOrFetchUserByChatID(chatID int64) (models.User, error)
}

// Bridge connects the Telegram webhook to marketplace accounts. Outbound
// notifications are fire-and-forget; without a bot token they are disabled.
type Bridge struct {
	accounts AccountRegistrar
	bot      *tgbotapi.BotAPI
}

// NewBridge authenticates the bot when a token is configured. A missing or
// invalid token leaves the bridge inbound-only.
func NewBridge(accounts AccountRegistrar, token string) *Bridge {
	b := &Bridge{accounts: accounts}
	if token == "" {
		return b
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		utils.Warn("telegram bot unavailable, notifications disabled", map[string]any{"error": err.Error()})
		return b
	}
	b.bot = bot
	utils.Info("telegram bot authorized", map[string]any{"username": bot.Self.UserName})
	return b
}

// HandleUpdate processes one inbound webhook update. Only the /start command
// is meaningful: it registers (or fetches) the account bound to the chat.
func (b *Bridge) HandleUpdate(update tgbotapi.Update) error {
	if update.Message == nil {
		return nil
	}

	chatID := update.Message.Chat.ID
	switch update.Message.Command() {
	case "start":
		user, err := b.accounts.RegisterOrFetchUserByChatID(chatID)
		if err != nil {
			return fmt.Errorf("bridge: failed to register chat %d: %w", chatID, err)
		}
		b.Notify(chatID, fmt.Sprintf("You are registered. Your account id is %s.", user.UserID))
		utils.Info("chat user registered", map[string]any{"chat_id": chatID, "user_id": user.UserID})
	default:
		b.Notify(chatID, "Unknown command. Send /start to register.")
	}
	return nil
}

// Notify sends a message to a chat without blocking the caller; delivery
// failures are only logged.
func (b *Bridge) Notify(chatID int64, text string) {
	if b.bot == nil {
		return
	}
	go func() {
		if _, err := b.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			utils.Warn("telegram notify failed", map[string]any{"chat_id": chatID, "error": err.Error()})
		}
	}()
}
