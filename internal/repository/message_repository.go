package repository

import (
	"context"
	"fmt"

	"camtourvisor/internal/model"

	"github.com/jmoiron/sqlx"
)

// MessageRepository обеспечивает сохранение и получение сообщений чата консультанта
// и чата поддержки.
type MessageRepository struct {
	db *sqlx.DB
}

// NewMessageRepository создает новый репозиторий сообщений.
func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// SaveChat сохраняет сообщения чата консультанта (вопрос и ответ пишутся вместе).
func (r *MessageRepository) SaveChat(ctx context.Context, msgs ...model.ChatMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO chat_messages (id, user_id, sender, text, topic, created_at)
		VALUES (:id, :user_id, :sender, :text, :topic, :created_at)`, msgs)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении сообщения: %w", err)
	}
	return nil
}

// ListChat возвращает последние limit сообщений пользователя в хронологическом порядке.
func (r *MessageRepository) ListChat(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	messages := []model.ChatMessage{}
	err := r.db.SelectContext(ctx, &messages,
		`SELECT id, user_id, sender, text, topic, created_at FROM (
			SELECT id, user_id, sender, text, topic, created_at FROM chat_messages
			WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2
		 ) t ORDER BY created_at`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении истории чата: %w", err)
	}
	return messages, nil
}

// SaveSupport сохраняет сообщение чата поддержки.
func (r *MessageRepository) SaveSupport(ctx context.Context, msg *model.SupportMessage) error {
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO support_messages (id, chat_id, username, text, from_support, created_at)
		VALUES (:id, :chat_id, :username, :text, :from_support, :created_at)`, msg)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении сообщения поддержки: %w", err)
	}
	return nil
}

// ListSupport получает переписку поддержки с указанным чатом.
func (r *MessageRepository) ListSupport(ctx context.Context, chatID int64) ([]model.SupportMessage, error) {
	messages := []model.SupportMessage{}
	err := r.db.SelectContext(ctx, &messages,
		`SELECT id, chat_id, username, text, from_support, created_at FROM support_messages
		 WHERE chat_id=$1 ORDER BY created_at`, chatID)
	if err != nil {
		return nil, err
	}
	return messages, nil
}
