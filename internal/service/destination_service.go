package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"camtourvisor/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DestinationService - каталог направлений. Чтение идет через кэш, запись его сбрасывает.
type DestinationService struct {
	repo  DestinationStore
	cache DestinationCache
	log   *zap.Logger
	now   func() time.Time
}

// NewDestinationService создает сервис направлений. cache может быть nil.
func NewDestinationService(repo DestinationStore, cache DestinationCache, log *zap.Logger) *DestinationService {
	if cache == nil {
		cache = noCache{}
	}
	return &DestinationService{repo: repo, cache: cache, log: log, now: time.Now}
}

// List возвращает направления категории ("all" или пусто - все), отфильтрованные по строке поиска.
func (s *DestinationService) List(ctx context.Context, category, search string) ([]model.Destination, error) {
	category = strings.TrimSpace(category)
	search = strings.TrimSpace(search)
	if list, ok := s.cache.GetList(ctx, category, search); ok {
		return list, nil
	}
	list, err := s.repo.List(ctx, category, search)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.Destination{}
	}
	s.cache.SetList(ctx, category, search, list)
	return list, nil
}

func (s *DestinationService) ByCategory(ctx context.Context, category string) ([]model.Destination, error) {
	return s.List(ctx, category, "")
}

// Search ищет по названию, месту и описанию без учета регистра.
func (s *DestinationService) Search(ctx context.Context, query string) ([]model.Destination, error) {
	return s.List(ctx, "", query)
}

// GetBySlug возвращает направление по его публичному идентификатору.
func (s *DestinationService) GetBySlug(ctx context.Context, slug string) (*model.Destination, error) {
	if d, ok := s.cache.GetDestination(ctx, slug); ok {
		return d, nil
	}
	d, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	s.cache.SetDestination(ctx, d)
	return d, nil
}

// Coordinates возвращает точку для карты. Направление без координат - ErrNotFound.
func (s *DestinationService) Coordinates(ctx context.Context, slug string) (*model.Coordinates, error) {
	d, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	c := d.Coordinates()
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// Save создает (пустой ID) или обновляет направление из админки.
func (s *DestinationService) Save(ctx context.Context, d *model.Destination) (*model.Destination, error) {
	if err := validateDestination(d); err != nil {
		return nil, err
	}
	if d.Slug == "" {
		d.Slug = Slugify(d.Name)
	}
	now := s.now().UTC()
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	// при обновлении created_at не перезаписывается, см. Upsert
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
	normalizeDestination(d)

	if err := s.repo.Upsert(ctx, d); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repo.GetBySlug(ctx, d.Slug)
}

// Delete удаляет направление по внутреннему ID.
func (s *DestinationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// RefreshRating пересчитывает рейтинг после изменения отзывов.
func (s *DestinationService) RefreshRating(ctx context.Context, slug string) error {
	if err := s.repo.RefreshRating(ctx, slug); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// SeedIfEmpty загружает стартовый каталог в пустую таблицу. Возвращает число добавленных записей.
func (s *DestinationService) SeedIfEmpty(ctx context.Context, catalogue []model.Destination) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	now := s.now().UTC()
	for i := range catalogue {
		d := catalogue[i]
		if d.ID == "" {
			d.ID = uuid.NewString()
		}
		d.CreatedAt, d.UpdatedAt = now, now
		normalizeDestination(&d)
		if err := s.repo.Upsert(ctx, &d); err != nil {
			return i, fmt.Errorf("не удалось загрузить направление %s: %w", d.Slug, err)
		}
	}
	s.invalidate(ctx)
	return len(catalogue), nil
}

func (s *DestinationService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("не удалось сбросить кэш направлений", zap.Error(err))
	}
}

func validateDestination(d *model.Destination) error {
	v := validator{}
	v.require("name", d.Name)
	v.require("location", d.Location)
	v.require("description", d.Description)
	v.require("category", d.Category)
	v.require("image", d.ImageURL)
	v.require("recommendedStay", d.RecommendedStay)
	v.require("budget", d.Budget)
	if d.BestTimeToVisit == nil {
		v["bestTimeToVisit.period"] = "is required"
	} else {
		v.require("bestTimeToVisit.period", d.BestTimeToVisit.Period)
		for _, m := range d.BestTimeToVisit.RecommendedMonths {
			v.check(m >= 1 && m <= 12, "bestTimeToVisit.recommendedMonths", "months must be between 1 and 12")
		}
	}
	v.check(len(d.GoodFor) > 0, "goodFor", "select at least one option")
	v.check(d.Rating >= 0 && d.Rating <= 5, "rating", "must be between 0 and 5")
	return v.err()
}

// колонки gallery и good_for объявлены NOT NULL. Highlights и CulturalEtiquette
// не трогаем: пустой список означает "оставить сохраненные".
func normalizeDestination(d *model.Destination) {
	if d.Gallery == nil {
		d.Gallery = []string{}
	}
	if d.GoodFor == nil {
		d.GoodFor = []string{}
	}
}

var accents = strings.NewReplacer("é", "e", "è", "e", "ê", "e", "à", "a", "â", "a", "ô", "o", "ç", "c", "î", "i", "û", "u")

// Slugify превращает название в идентификатор для URL: "Mount Cameroon" -> "mount-cameroon".
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range accents.Replace(strings.ToLower(strings.TrimSpace(name))) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
