package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"camtourvisor/internal/advisor"
	"camtourvisor/internal/metrics"
	"camtourvisor/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatService отвечает на вопросы через консультанта и ведет историю диалога.
type ChatService struct {
	responder    *advisor.Responder
	store        ChatStore
	historyLimit int
	now          func() time.Time
}

func NewChatService(responder *advisor.Responder, store ChatStore, historyLimit int) *ChatService {
	return &ChatService{responder: responder, store: store, historyLimit: historyLimit, now: time.Now}
}

// Ask подбирает ответ. Для авторизованного пользователя (userID != "")
// вопрос и ответ сохраняются в историю.
func (s *ChatService) Ask(ctx context.Context, userID, text string) (advisor.Answer, error) {
	if strings.TrimSpace(text) == "" {
		return advisor.Answer{}, invalid("message", "is required")
	}
	answer := s.responder.Respond(text)
	metrics.IncChatAnswer(answer.Topic)
	if userID == "" {
		return answer, nil
	}

	now := s.now().UTC()
	err := s.store.SaveChat(ctx,
		model.ChatMessage{ID: uuid.NewString(), UserID: userID, Sender: model.SenderUser, Text: text, CreatedAt: now},
		model.ChatMessage{ID: uuid.NewString(), UserID: userID, Sender: model.SenderBot, Text: answer.Reply,
			Topic: answer.Topic, CreatedAt: now.Add(time.Millisecond)},
	)
	if err != nil {
		return advisor.Answer{}, err
	}
	return answer, nil
}

// History возвращает последние сообщения пользователя в хронологическом порядке.
func (s *ChatService) History(ctx context.Context, userID string) ([]model.ChatMessage, error) {
	return nonNil(s.store.ListChat(ctx, userID, s.historyLimit))
}

func (s *ChatService) Welcome() string { return advisor.Welcome }

func (s *ChatService) Suggestions() []string {
	out := make([]string, len(advisor.Suggestions))
	copy(out, advisor.Suggestions)
	return out
}

// SupportService пересылает обращения туристов операторам поддержки в Telegram.
type SupportService struct {
	store     SupportStore
	sender    MessageSender
	operators []int64
	log       *zap.Logger
	now       func() time.Time

	mu      sync.Mutex
	pending map[int64]int64 // оператор -> чат последнего обращения, которое он получил
}

func NewSupportService(store SupportStore, sender MessageSender, operators []int64, log *zap.Logger) *SupportService {
	return &SupportService{
		store:     store,
		sender:    sender,
		operators: operators,
		log:       log,
		now:       time.Now,
		pending:   make(map[int64]int64),
	}
}

// IsOperator сообщает, является ли чат чатом поддержки.
func (s *SupportService) IsOperator(chatID int64) bool {
	for _, id := range s.operators {
		if id == chatID {
			return true
		}
	}
	return false
}

// Submit сохраняет обращение и рассылает его операторам. Ошибка возвращается,
// только если не удалось доставить ни одному оператору.
func (s *SupportService) Submit(ctx context.Context, chatID int64, username, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return invalid("text", "is required")
	}
	if len(s.operators) == 0 {
		return ErrNoOperators
	}
	msg := &model.SupportMessage{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Username:  username,
		Text:      text,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.SaveSupport(ctx, msg); err != nil {
		return err
	}

	forward := fmt.Sprintf("Support request from @%s (chat %d):\n%s\n\nReply with /answer %d <text>",
		username, chatID, text, chatID)
	delivered := 0
	var lastErr error
	for _, op := range s.operators {
		if err := s.sender.SendText(ctx, op, forward); err != nil {
			s.log.Warn("не удалось переслать обращение оператору", zap.Int64("operator", op), zap.Error(err))
			lastErr = err
			continue
		}
		delivered++
		s.mu.Lock()
		s.pending[op] = chatID
		s.mu.Unlock()
	}
	if delivered == 0 {
		return fmt.Errorf("обращение не доставлено: %w", lastErr)
	}
	return nil
}

// Reply отправляет ответ оператора туристу. toChatID == 0 означает
// "последнее обращение, полученное оператором".
func (s *SupportService) Reply(ctx context.Context, operatorChatID, toChatID int64, text string) (int64, error) {
	if !s.IsOperator(operatorChatID) {
		return 0, ErrForbidden
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, invalid("text", "is required")
	}
	if toChatID == 0 {
		s.mu.Lock()
		toChatID = s.pending[operatorChatID]
		s.mu.Unlock()
		if toChatID == 0 {
			return 0, ErrNotFound
		}
	}
	msg := &model.SupportMessage{
		ID:          uuid.NewString(),
		ChatID:      toChatID,
		Text:        text,
		FromSupport: true,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.store.SaveSupport(ctx, msg); err != nil {
		return 0, err
	}
	if err := s.sender.SendText(ctx, toChatID, "Support: "+text); err != nil {
		return 0, err
	}
	return toChatID, nil
}

// History возвращает переписку с туристом.
func (s *SupportService) History(ctx context.Context, chatID int64) ([]model.SupportMessage, error) {
	return nonNil(s.store.ListSupport(ctx, chatID))
}
