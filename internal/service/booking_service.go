package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"camtourvisor/internal/export"
	"camtourvisor/internal/metrics"
	"camtourvisor/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// BookingService содержит бизнес-логику, связанную с бронированиями.
type BookingService struct {
	bookings     BookingStore
	destinations DestinationLookup
	profiles     ProfileStore
	notifier     Notifier
	log          *zap.Logger
	now          func() time.Time
}

// NewBookingService создает новый сервис бронирований.
func NewBookingService(bookings BookingStore, destinations DestinationLookup, profiles ProfileStore, notifier Notifier, log *zap.Logger) *BookingService {
	return &BookingService{
		bookings:     bookings,
		destinations: destinations,
		profiles:     profiles,
		notifier:     notifier,
		log:          log,
		now:          time.Now,
	}
}

// Create создает заявку со статусом "pending". Название и картинка направления
// копируются в заявку.
func (s *BookingService) Create(ctx context.Context, userID string, form model.BookingForm) (*model.Booking, error) {
	now := s.now().UTC()
	v := validator{}
	v.require("destination_id", form.DestinationID)
	v.require("travel_date", form.TravelDate)
	travelDate, err := time.Parse(dateLayout, strings.TrimSpace(form.TravelDate))
	if form.TravelDate != "" {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		v.check(err == nil, "travel_date", "must be a date in YYYY-MM-DD format")
		v.check(err != nil || !travelDate.Before(today), "travel_date", "must not be in the past")
	}
	v.check(form.NumberOfTravelers >= 1, "number_of_travelers", "must be at least 1")
	v.require("contact_info.phone", form.ContactInfo.Phone)
	v.require("contact_info.email", form.ContactInfo.Email)
	if err := v.err(); err != nil {
		return nil, err
	}

	dest, err := s.destinations.GetBySlug(ctx, form.DestinationID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, invalid("destination_id", "unknown destination")
		}
		return nil, err
	}

	b := &model.Booking{
		ID:                uuid.NewString(),
		UserID:            userID,
		DestinationID:     dest.Slug,
		DestinationName:   dest.Name,
		DestinationImage:  dest.ImageURL,
		BookingDate:       now,
		TravelDate:        travelDate,
		NumberOfTravelers: form.NumberOfTravelers,
		Status:            model.BookingPending,
		SpecialRequests:   strings.TrimSpace(form.SpecialRequests),
		ContactInfo:       form.ContactInfo,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	metrics.IncBookingCreated()
	s.log.Info("создано бронирование",
		zap.String("booking_id", b.ID), zap.String("user_id", userID), zap.String("destination", dest.Slug))
	return b, nil
}

// ListForUser возвращает бронирования пользователя, новые первыми.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]model.Booking, error) {
	return nonNil(s.bookings.ListByUser(ctx, userID))
}

// Cancel отменяет бронирование; чужие бронирования не находятся.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID string) error {
	if err := s.bookings.CancelForUser(ctx, bookingID, userID); err != nil {
		return err
	}
	metrics.IncBookingStatus(model.BookingCancelled)
	return nil
}

// UpdateStatus меняет статус (администратор) и уведомляет владельца в Telegram.
// Ошибка уведомления только логируется.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID, status string) (*model.Booking, error) {
	if !model.ValidBookingStatus(status) {
		return nil, invalid("status", "must be one of pending, confirmed, cancelled, completed")
	}
	if err := s.bookings.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	metrics.IncBookingStatus(status)

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	owner, err := s.profiles.GetByID(ctx, b.UserID)
	if err != nil {
		s.log.Warn("владелец бронирования не найден", zap.String("booking_id", bookingID), zap.Error(err))
		return b, nil
	}
	if err := s.notifier.BookingStatusChanged(ctx, owner, b); err != nil {
		s.log.Error("не удалось отправить уведомление о бронировании",
			zap.String("booking_id", bookingID), zap.Error(err))
	}
	return b, nil
}

// ListAll возвращает все бронирования с именами пользователей.
func (s *BookingService) ListAll(ctx context.Context) ([]model.Booking, error) {
	return nonNil(s.bookings.ListAll(ctx))
}

// Export пишет все бронирования в xlsx.
func (s *BookingService) Export(ctx context.Context, w io.Writer) error {
	list, err := s.bookings.ListAll(ctx)
	if err != nil {
		return err
	}
	return export.WriteBookings(w, list)
}

// nonNil заменяет nil на пустой список.
func nonNil[T any](list []T, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}
