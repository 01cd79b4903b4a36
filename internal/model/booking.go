package model

import "time"

// Статусы бронирования.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// ValidBookingStatus сообщает, допустим ли статус бронирования.
func ValidBookingStatus(status string) bool {
	switch status {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking представляет заявку на поездку к направлению.
type Booking struct {
	ID                string      `db:"id" json:"id"`
	UserID            string      `db:"user_id" json:"user_id"`
	DestinationID     string      `db:"destination_id" json:"destination_id"` // slug направления
	DestinationName   string      `db:"destination_name" json:"destination_name"`
	DestinationImage  string      `db:"destination_image" json:"destination_image"`
	BookingDate       time.Time   `db:"booking_date" json:"booking_date"`
	TravelDate        time.Time   `db:"travel_date" json:"travel_date"`
	NumberOfTravelers int         `db:"number_of_travelers" json:"number_of_travelers"`
	TotalCost         float64     `db:"total_cost" json:"total_cost"`
	Status            string      `db:"status" json:"status"` // "pending", "confirmed", "cancelled", "completed"
	SpecialRequests   string      `db:"special_requests" json:"special_requests,omitempty"`
	ContactInfo       ContactInfo `db:"contact_info" json:"contact_info"`
	CreatedAt         time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time   `db:"updated_at" json:"updated_at"`

	Username string `db:"username" json:"username,omitempty"` // заполняется только в списке для администратора
}

type ContactInfo struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// BookingForm - данные формы бронирования.
type BookingForm struct {
	DestinationID     string      `json:"destination_id" binding:"required"`
	TravelDate        string      `json:"travel_date" binding:"required"` // YYYY-MM-DD
	NumberOfTravelers int         `json:"number_of_travelers"`
	SpecialRequests   string      `json:"special_requests"`
	ContactInfo       ContactInfo `json:"contact_info"`
}
