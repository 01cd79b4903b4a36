package model

import "time"

// SavedDestination - направление в избранном пользователя. Поля направления
// копируются при сохранении, чтобы список открывался без join.
type SavedDestination struct {
	ID                  string    `db:"id" json:"id"`
	UserID              string    `db:"user_id" json:"user_id"`
	DestinationID       string    `db:"destination_id" json:"destination_id"`
	DestinationName     string    `db:"destination_name" json:"destination_name"`
	DestinationImage    string    `db:"destination_image" json:"destination_image"`
	DestinationLocation string    `db:"destination_location" json:"destination_location"`
	DestinationCategory string    `db:"destination_category" json:"destination_category"`
	Notes               string    `db:"notes" json:"notes,omitempty"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}
