package repository

import (
	"context"
	"fmt"

	"camtourvisor/internal/model"

	"github.com/jmoiron/sqlx"
)

const bookingColumns = `b.id, b.user_id, b.destination_id, b.destination_name, b.destination_image,
	b.booking_date, b.travel_date, b.number_of_travelers, b.total_cost, b.status, b.special_requests,
	b.contact_info, b.created_at, b.updated_at`

// BookingRepository обеспечивает доступ к данным бронирований в базе данных.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository создает новый репозиторий для бронирований.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create сохраняет новую заявку на бронирование.
func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO bookings
		(id, user_id, destination_id, destination_name, destination_image, booking_date, travel_date,
		 number_of_travelers, total_cost, status, special_requests, contact_info, created_at, updated_at)
		VALUES
		(:id, :user_id, :destination_id, :destination_name, :destination_image, :booking_date, :travel_date,
		 :number_of_travelers, :total_cost, :status, :special_requests, :contact_info, :created_at, :updated_at)`,
		booking)
	if err != nil {
		return fmt.Errorf("не удалось создать бронирование: %w", err)
	}
	return nil
}

// GetByID возвращает бронирование по ID.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.GetContext(ctx, &booking, "SELECT "+bookingColumns+" FROM bookings b WHERE b.id=$1", id)
	if err != nil {
		return nil, notFound(err)
	}
	return &booking, nil
}

// ListByUser возвращает бронирования пользователя, новые первыми.
func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	bookings := []model.Booking{}
	err := r.db.SelectContext(ctx, &bookings,
		"SELECT "+bookingColumns+" FROM bookings b WHERE b.user_id=$1 ORDER BY b.created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении бронирований пользователя: %w", err)
	}
	return bookings, nil
}

// ListAll возвращает все бронирования с именем пользователя, новые первыми.
func (r *BookingRepository) ListAll(ctx context.Context) ([]model.Booking, error) {
	bookings := []model.Booking{}
	err := r.db.SelectContext(ctx, &bookings,
		`SELECT `+bookingColumns+`, COALESCE(p.username, '') AS username
		 FROM bookings b LEFT JOIN profiles p ON p.id = b.user_id
		 ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка бронирований: %w", err)
	}
	return bookings, nil
}

// UpdateStatus обновляет статус бронирования.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2", status, id)
	if err != nil {
		return fmt.Errorf("не удалось обновить статус бронирования: %w", err)
	}
	return expectAffected(res)
}

// CancelForUser отменяет бронирование, только если оно принадлежит пользователю.
func (r *BookingRepository) CancelForUser(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 AND user_id=$3",
		model.BookingCancelled, id, userID)
	if err != nil {
		return fmt.Errorf("не удалось отменить бронирование: %w", err)
	}
	return expectAffected(res)
}
