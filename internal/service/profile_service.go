package service

import (
	"context"
	"strings"
	"time"

	"camtourvisor/internal/model"
)

// ProfileService содержит бизнес-логику, связанную с профилями пользователей.
type ProfileService struct {
	profiles ProfileStore
	now      func() time.Time
}

// NewProfileService создает новый сервис профилей.
func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles, now: time.Now}
}

// Get возвращает профиль по ID.
func (s *ProfileService) Get(ctx context.Context, id string) (*model.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

// Update меняет только переданные поля.
func (s *ProfileService) Update(ctx context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Username != nil {
		name := strings.TrimSpace(*upd.Username)
		if name == "" {
			return nil, invalid("username", "must not be empty")
		}
		p.Username = name
	}
	if upd.FullName != nil {
		p.FullName = strings.TrimSpace(*upd.FullName)
	}
	if upd.AvatarURL != nil {
		p.AvatarURL = strings.TrimSpace(*upd.AvatarURL)
	}
	if upd.TelegramChatID != nil {
		if *upd.TelegramChatID == 0 {
			p.TelegramChatID = nil // 0 отвязывает Telegram
		} else {
			p.TelegramChatID = upd.TelegramChatID
		}
	}
	p.UpdatedAt = s.now().UTC()
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List возвращает все профили (администратор).
func (s *ProfileService) List(ctx context.Context) ([]model.Profile, error) {
	return nonNil(s.profiles.List(ctx))
}

// Delete удаляет профиль вместе с его бронированиями, отзывами и избранным.
func (s *ProfileService) Delete(ctx context.Context, id string) error {
	return s.profiles.Delete(ctx, id)
}
