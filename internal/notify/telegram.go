// Package notify delivers practice reminders. The engine itself never
// talks to the learner; this is the host-side plumbing the reminder
// scheduler calls into.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/palipractice/pkg/models"
)

// Telegram sends due-review reminders to a single chat
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram creates a notifier for the given bot token and chat
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %v", err)
	}
	return &Telegram{api: api, chatID: chatID}, nil
}

// SendDueReminder tells the learner how many slots are waiting
func (t *Telegram) SendDueReminder(pos models.PartOfSpeech, count int) error {
	noun := "declensions"
	if pos == models.Verb {
		noun = "conjugations"
	}
	text := fmt.Sprintf("📖 %d %s are due for review. Time to practice!", count, noun)
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send reminder: %v", err)
	}
	return nil
}
