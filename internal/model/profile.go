package model

import "time"

// Profile - учетная запись и публичный профиль пользователя.
type Profile struct {
	ID             string    `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	Username       string    `db:"username" json:"username"`
	FullName       string    `db:"full_name" json:"full_name"`
	AvatarURL      string    `db:"avatar_url" json:"avatar_url"`
	TelegramChatID *int64    `db:"telegram_chat_id" json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// ProfileUpdate - изменяемые поля профиля; nil означает "не менять".
type ProfileUpdate struct {
	Username       *string `json:"username"`
	FullName       *string `json:"full_name"`
	AvatarURL      *string `json:"avatar_url"`
	TelegramChatID *int64  `json:"telegram_chat_id"`
}

// AdminCredentials - логин и пароль администратора.
type AdminCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
