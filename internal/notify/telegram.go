package notify

import (
	"context"
	"fmt"

	"camtourvisor/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender - часть *tgbotapi.BotAPI, нужная для отправки сообщений.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram отправляет уведомления пользователям через бота.
type Telegram struct {
	bot Sender
}

// NewTelegram создает уведомитель поверх бота.
func NewTelegram(bot Sender) *Telegram {
	return &Telegram{bot: bot}
}

// SendText отправляет текст в чат.
func (t *Telegram) SendText(_ context.Context, chatID int64, text string) error {
	if _, err := t.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("не удалось отправить сообщение в чат %d: %w", chatID, err)
	}
	return nil
}

// BookingStatusChanged сообщает владельцу бронирования о новом статусе.
// Профили без привязанного Telegram пропускаются.
func (t *Telegram) BookingStatusChanged(ctx context.Context, p *model.Profile, b *model.Booking) error {
	if p == nil || p.TelegramChatID == nil {
		return nil
	}
	return t.SendText(ctx, *p.TelegramChatID, StatusText(b))
}

// StatusText формирует текст уведомления о статусе бронирования.
func StatusText(b *model.Booking) string {
	date := b.TravelDate.Format("2006-01-02")
	switch b.Status {
	case model.BookingConfirmed:
		return fmt.Sprintf("Your booking for %s on %s has been confirmed!", b.DestinationName, date)
	case model.BookingCancelled:
		return fmt.Sprintf("Your booking for %s on %s has been cancelled.", b.DestinationName, date)
	case model.BookingCompleted:
		return fmt.Sprintf("Thank you for travelling to %s! Tell other travellers about it in a review.", b.DestinationName)
	default:
		return fmt.Sprintf("Your booking for %s on %s is %s.", b.DestinationName, date, b.Status)
	}
}

// Nop используется, когда токен бота не настроен.
type Nop struct{}

func (Nop) SendText(context.Context, int64, string) error { return nil }

func (Nop) BookingStatusChanged(context.Context, *model.Profile, *model.Booking) error { return nil }
