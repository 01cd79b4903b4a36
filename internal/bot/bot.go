// Package bot - Telegram-бот CamTourVisor: консультант, поиск направлений и
// пересылка обращений в поддержку.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"camtourvisor/internal/model"
	"camtourvisor/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const destPrefix = "DEST_"

// API - часть *tgbotapi.BotAPI, которую использует бот.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot обрабатывает обновления Telegram.
type Bot struct {
	api          API
	chat         *service.ChatService
	destinations *service.DestinationService
	support      *service.SupportService
	log          *zap.Logger
}

func New(api API, chat *service.ChatService, destinations *service.DestinationService, support *service.SupportService, log *zap.Logger) *Bot {
	return &Bot{api: api, chat: chat, destinations: destinations, support: support, log: log}
}

// Run обрабатывает обновления до закрытия канала или отмены ctx.
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate обрабатывает одно обновление.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if cq := update.CallbackQuery; cq != nil {
		b.handleCallback(ctx, cq)
		return
	}
	msg := update.Message
	if msg == nil {
		return
	}
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}
	if b.support.IsOperator(msg.Chat.ID) {
		b.reply(msg.Chat.ID, "To answer a traveller use /answer <chat id> <text>, or /answer <text> for the latest request.")
		return
	}
	answer, err := b.chat.Ask(ctx, "", msg.Text)
	if err != nil {
		b.reply(msg.Chat.ID, "Please type a question about travelling in Cameroon.")
		return
	}
	b.reply(msg.Chat.ID, answer.Reply)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	args := strings.TrimSpace(msg.CommandArguments())

	switch msg.Command() {
	case "start":
		out := tgbotapi.NewMessage(chatID, b.chat.Welcome())
		rows := make([][]tgbotapi.KeyboardButton, 0, len(b.chat.Suggestions()))
		for _, s := range b.chat.Suggestions() {
			rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(s)))
		}
		out.ReplyMarkup = tgbotapi.NewReplyKeyboard(rows...)
		b.send(out)

	case "help":
		b.reply(chatID, helpText)

	case "destinations":
		b.listDestinations(ctx, chatID, args)

	case "support":
		if args == "" {
			b.reply(chatID, "Usage: /support <your question>")
			return
		}
		username := msg.From.UserName
		if username == "" {
			username = msg.From.FirstName
		}
		err := b.support.Submit(ctx, chatID, username, args)
		switch {
		case errors.Is(err, service.ErrNoOperators):
			b.reply(chatID, "No support operators are available right now. Please try again later.")
		case err != nil:
			b.log.Error("не удалось отправить обращение", zap.Int64("chat_id", chatID), zap.Error(err))
			b.reply(chatID, "Sorry, we could not deliver your request. Please try again later.")
		default:
			b.reply(chatID, "Your request has been sent to our support team. We will reply here shortly.")
		}

	case "answer":
		b.answer(ctx, chatID, args)

	default:
		b.reply(chatID, "Unknown command. "+helpText)
	}
}

func (b *Bot) listDestinations(ctx context.Context, chatID int64, query string) {
	list, err := b.destinations.Search(ctx, query)
	if err != nil {
		b.log.Error("ошибка поиска направлений", zap.String("query", query), zap.Error(err))
		b.reply(chatID, "Search is unavailable right now.")
		return
	}
	if len(list) == 0 {
		b.reply(chatID, "Nothing found.")
		return
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list))
	for _, d := range list {
		name := d.Name
		if r := []rune(name); len(r) > 30 {
			name = string(r[:30]) + "..."
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(name, destPrefix+d.Slug)))
	}
	out := tgbotapi.NewMessage(chatID, fmt.Sprintf("Found: %d", len(list)))
	out.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.send(out)
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		b.log.Warn("не удалось подтвердить callback", zap.Error(err))
	}
	if cq.Message == nil || !strings.HasPrefix(cq.Data, destPrefix) {
		return
	}
	chatID := cq.Message.Chat.ID
	d, err := b.destinations.GetBySlug(ctx, strings.TrimPrefix(cq.Data, destPrefix))
	if err != nil {
		b.reply(chatID, "Destination not found.")
		return
	}
	b.reply(chatID, DestinationText(d))
	if c := d.Coordinates(); c != nil {
		b.send(tgbotapi.NewLocation(chatID, c.Lat, c.Lng))
	}
}

// answer: "/answer <chat id> <text>" или "/answer <text>" - ответ на последнее обращение.
func (b *Bot) answer(ctx context.Context, chatID int64, args string) {
	if !b.support.IsOperator(chatID) {
		b.reply(chatID, "This command is for support operators only.")
		return
	}
	var to int64
	text := args
	if parts := strings.SplitN(args, " ", 2); len(parts) == 2 {
		if id, err := strconv.ParseInt(parts[0], 10, 64); err == nil {
			to, text = id, parts[1]
		}
	}
	sentTo, err := b.support.Reply(ctx, chatID, to, text)
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		b.reply(chatID, "Usage: /answer <chat id> <text>")
	case errors.Is(err, service.ErrNotFound):
		b.reply(chatID, "There is no request to answer yet. Use /answer <chat id> <text>.")
	case err != nil:
		b.log.Error("не удалось отправить ответ поддержки", zap.Int64("to", to), zap.Error(err))
		b.reply(chatID, "Could not deliver the answer.")
	default:
		b.reply(chatID, fmt.Sprintf("Answer sent to chat %d.", sentTo))
	}
}

// DestinationText - карточка направления для Telegram.
func DestinationText(d *model.Destination) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n%s\n", d.Name, d.Location)
	if d.Rating > 0 {
		fmt.Fprintf(&sb, "Rating: %.1f (%d reviews)\n", d.Rating, d.ReviewCount)
	}
	fmt.Fprintf(&sb, "\n%s\n", d.Description)
	if len(d.Highlights) > 0 {
		sb.WriteString("\nHighlights:\n")
		for _, h := range d.Highlights {
			fmt.Fprintf(&sb, "• %s\n", h)
		}
	}
	if d.BestTimeToVisit != nil && d.BestTimeToVisit.Period != "" {
		fmt.Fprintf(&sb, "\nBest time to visit: %s\n", d.BestTimeToVisit.Period)
	}
	if d.RecommendedStay != "" {
		fmt.Fprintf(&sb, "Recommended stay: %s\n", d.RecommendedStay)
	}
	if c := d.Coordinates(); c != nil {
		fmt.Fprintf(&sb, "\nOpen in maps: https://maps.google.com/?q=%f,%f", c.Lat, c.Lng)
	}
	return strings.TrimRight(sb.String(), "\n")
}

const helpText = "Commands:\n" +
	"/destinations [query] - find destinations\n" +
	"/support <text> - ask our support team\n" +
	"Or just ask me anything about travelling in Cameroon."

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.log.Warn("не удалось отправить сообщение", zap.Error(err))
	}
}
