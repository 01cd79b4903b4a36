package model

import "time"

// Отправители сообщений чата с консультантом.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatMessage - сообщение из истории чата с консультантом.
type ChatMessage struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Sender    string    `db:"sender" json:"sender"`
	Text      string    `db:"text" json:"text"`
	Topic     string    `db:"topic" json:"topic,omitempty"` // тема ответа консультанта
	CreatedAt time.Time `db:"created_at" json:"timestamp"`
}

// SupportMessage представляет сообщение в чате поддержки (Telegram).
type SupportMessage struct {
	ID          string    `db:"id" json:"id"`
	ChatID      int64     `db:"chat_id" json:"chat_id"` // чат туриста
	Username    string    `db:"username" json:"username"`
	Text        string    `db:"text" json:"text"`
	FromSupport bool      `db:"from_support" json:"from_support"` // ответ оператора
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
