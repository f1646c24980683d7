package notifications

import (
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier is the fire-and-forget notification collaborator. Implementations
// must never fail the triggering transaction: errors are logged and swallowed.
type Notifier interface {
	NotifyRegistrationStatus(participantName, eventName, status string)
	NotifyBundleStatus(participantName, eventName string, totalAmount int, status string)
}

// TelegramNotifier pushes organizer notifications to a Telegram chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier builds the notifier. An empty token disables sending
// (messages are logged instead), so local setups work without a bot.
func NewTelegramNotifier(token, chatID string) *TelegramNotifier {
	if token == "" {
		return &TelegramNotifier{}
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("[WARN] Telegram bot init failed, notifications disabled: %v", err)
		return &TelegramNotifier{}
	}
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		log.Printf("[WARN] Invalid TELEGRAM_CHAT_ID %q, notifications disabled", chatID)
		return &TelegramNotifier{}
	}
	return &TelegramNotifier{bot: bot, chatID: id}
}

func (n *TelegramNotifier) NotifyRegistrationStatus(participantName, eventName, status string) {
	n.send(fmt.Sprintf("🏏 Registration update\n%s — %s\nStatus: %s", participantName, eventName, status))
}

func (n *TelegramNotifier) NotifyBundleStatus(participantName, eventName string, totalAmount int, status string) {
	n.send(fmt.Sprintf("🏸 Bundle update\n%s — %s\nTotal: ₹%d\nStatus: %s", participantName, eventName, totalAmount, status))
}

func (n *TelegramNotifier) send(text string) {
	if n.bot == nil {
		log.Printf("[INFO] notification skipped (bot disabled): %s", text)
		return
	}
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		log.Printf("[ERROR] Failed to send telegram notification: %v", err)
	}
}
