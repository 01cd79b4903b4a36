package service

import (
	"context"

	"camtourvisor/internal/model"
)

// Интерфейсы хранилищ. Реализуются репозиториями из пакета repository.

type DestinationStore interface {
	List(ctx context.Context, category, search string) ([]model.Destination, error)
	GetBySlug(ctx context.Context, slug string) (*model.Destination, error)
	Upsert(ctx context.Context, d *model.Destination) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	RefreshRating(ctx context.Context, slug string) error
}

type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]model.Booking, error)
	ListAll(ctx context.Context) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CancelForUser(ctx context.Context, id, userID string) error
}

type ReviewStore interface {
	Create(ctx context.Context, r *model.Review) error
	GetByID(ctx context.Context, id string) (*model.Review, error)
	ListByDestination(ctx context.Context, destinationID string) ([]model.Review, error)
	ListByUser(ctx context.Context, userID string) ([]model.Review, error)
	ListAll(ctx context.Context) ([]model.Review, error)
	Update(ctx context.Context, r *model.Review) error
	Delete(ctx context.Context, id, userID string) (string, error)
	DeleteAny(ctx context.Context, id string) (string, error)
	IncrementHelpful(ctx context.Context, id string) error
}

type SavedStore interface {
	Save(ctx context.Context, s *model.SavedDestination) error
	Unsave(ctx context.Context, userID, destinationID string) error
	ListByUser(ctx context.Context, userID string) ([]model.SavedDestination, error)
	Exists(ctx context.Context, userID, destinationID string) (bool, error)
}

type ProfileStore interface {
	Create(ctx context.Context, p *model.Profile) error
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)
	Update(ctx context.Context, p *model.Profile) error
	List(ctx context.Context) ([]model.Profile, error)
	Delete(ctx context.Context, id string) error
}

type ChatStore interface {
	SaveChat(ctx context.Context, msgs ...model.ChatMessage) error
	ListChat(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error)
}

type SupportStore interface {
	SaveSupport(ctx context.Context, msg *model.SupportMessage) error
	ListSupport(ctx context.Context, chatID int64) ([]model.SupportMessage, error)
}

// DestinationCache - кэш чтения направлений (redis). Промах или сбой кэша
// означает чтение из базы.
type DestinationCache interface {
	GetList(ctx context.Context, category, search string) ([]model.Destination, bool)
	SetList(ctx context.Context, category, search string, list []model.Destination)
	GetDestination(ctx context.Context, slug string) (*model.Destination, bool)
	SetDestination(ctx context.Context, d *model.Destination)
	Invalidate(ctx context.Context) error
}

// Notifier сообщает пользователю об изменении бронирования.
type Notifier interface {
	BookingStatusChanged(ctx context.Context, p *model.Profile, b *model.Booking) error
}

// MessageSender отправляет текст в Telegram-чат.
type MessageSender interface {
	SendText(ctx context.Context, chatID int64, text string) error
}

// noCache используется, когда redis отключен.
type noCache struct{}

func (noCache) GetList(context.Context, string, string) ([]model.Destination, bool) { return nil, false }
func (noCache) SetList(context.Context, string, string, []model.Destination)        {}
func (noCache) GetDestination(context.Context, string) (*model.Destination, bool)   { return nil, false }
func (noCache) SetDestination(context.Context, *model.Destination)                  {}
func (noCache) Invalidate(context.Context) error                                    { return nil }

// DestinationLookup находит направление по slug (сервис с кэшем или репозиторий).
type DestinationLookup interface {
	GetBySlug(ctx context.Context, slug string) (*model.Destination, error)
}
