package model

import "time"

// Review - отзыв пользователя о направлении.
type Review struct {
	ID            string     `db:"id" json:"id"`
	UserID        string     `db:"user_id" json:"user_id"`
	DestinationID string     `db:"destination_id" json:"destination_id"`
	Rating        int        `db:"rating" json:"rating"`
	Title         string     `db:"title" json:"title"`
	Content       string     `db:"content" json:"content"`
	TravelDate    *time.Time `db:"travel_date" json:"travel_date,omitempty"`
	TravelType    string     `db:"travel_type" json:"travel_type,omitempty"`
	HelpfulCount  int        `db:"helpful_count" json:"helpful_count"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`

	// из связанных таблиц
	Username        string `db:"username" json:"username,omitempty"`
	AvatarURL       string `db:"avatar_url" json:"avatar_url,omitempty"`
	DestinationName string `db:"destination_name" json:"destination_name,omitempty"`
}

// ReviewForm - данные формы отзыва. При обновлении пустые поля не меняются.
type ReviewForm struct {
	DestinationID string `json:"destination_id"`
	Rating        int    `json:"rating"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	TravelDate    string `json:"travel_date"`
	TravelType    string `json:"travel_type"`
}
