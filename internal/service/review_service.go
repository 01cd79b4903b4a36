package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"camtourvisor/internal/metrics"
	"camtourvisor/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RatingRefresher пересчитывает рейтинг направления после изменения отзывов.
type RatingRefresher interface {
	RefreshRating(ctx context.Context, slug string) error
}

// ReviewService - отзывы о направлениях.
type ReviewService struct {
	reviews      ReviewStore
	destinations DestinationLookup
	ratings      RatingRefresher
	log          *zap.Logger
	now          func() time.Time
}

func NewReviewService(reviews ReviewStore, destinations DestinationLookup, ratings RatingRefresher, log *zap.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, destinations: destinations, ratings: ratings, log: log, now: time.Now}
}

// Create публикует отзыв и пересчитывает рейтинг направления.
func (s *ReviewService) Create(ctx context.Context, userID string, form model.ReviewForm) (*model.Review, error) {
	v := validator{}
	v.require("destination_id", form.DestinationID)
	v.check(form.Rating >= 1 && form.Rating <= 5, "rating", "must be between 1 and 5")
	v.require("title", form.Title)
	v.require("content", form.Content)
	travelDate, err := parseOptionalDate(form.TravelDate)
	v.check(err == nil, "travel_date", "must be a date in YYYY-MM-DD format")
	if err := v.err(); err != nil {
		return nil, err
	}
	if _, err := s.destinations.GetBySlug(ctx, form.DestinationID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, invalid("destination_id", "unknown destination")
		}
		return nil, err
	}

	now := s.now().UTC()
	r := &model.Review{
		ID:            uuid.NewString(),
		UserID:        userID,
		DestinationID: form.DestinationID,
		Rating:        form.Rating,
		Title:         strings.TrimSpace(form.Title),
		Content:       strings.TrimSpace(form.Content),
		TravelDate:    travelDate,
		TravelType:    form.TravelType,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.reviews.Create(ctx, r); err != nil {
		return nil, err
	}
	metrics.IncReviewCreated()
	s.refresh(ctx, r.DestinationID)
	return s.reviews.GetByID(ctx, r.ID)
}

func (s *ReviewService) ListForDestination(ctx context.Context, slug string) ([]model.Review, error) {
	return nonNil(s.reviews.ListByDestination(ctx, slug))
}

func (s *ReviewService) ListForUser(ctx context.Context, userID string) ([]model.Review, error) {
	return nonNil(s.reviews.ListByUser(ctx, userID))
}

func (s *ReviewService) ListAll(ctx context.Context) ([]model.Review, error) {
	return nonNil(s.reviews.ListAll(ctx))
}

// Update меняет переданные поля отзыва. Чужой отзыв - ErrNotFound.
func (s *ReviewService) Update(ctx context.Context, userID, reviewID string, form model.ReviewForm) (*model.Review, error) {
	r, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if r.UserID != userID {
		return nil, ErrNotFound
	}
	if form.Rating != 0 {
		if form.Rating < 1 || form.Rating > 5 {
			return nil, invalid("rating", "must be between 1 and 5")
		}
		r.Rating = form.Rating
	}
	if t := strings.TrimSpace(form.Title); t != "" {
		r.Title = t
	}
	if c := strings.TrimSpace(form.Content); c != "" {
		r.Content = c
	}
	if form.TravelDate != "" {
		d, err := parseOptionalDate(form.TravelDate)
		if err != nil {
			return nil, invalid("travel_date", "must be a date in YYYY-MM-DD format")
		}
		r.TravelDate = d
	}
	if form.TravelType != "" {
		r.TravelType = form.TravelType
	}
	r.UpdatedAt = s.now().UTC()
	if err := s.reviews.Update(ctx, r); err != nil {
		return nil, err
	}
	s.refresh(ctx, r.DestinationID)
	return s.reviews.GetByID(ctx, r.ID)
}

// Delete удаляет отзыв автора.
func (s *ReviewService) Delete(ctx context.Context, userID, reviewID string) error {
	slug, err := s.reviews.Delete(ctx, reviewID, userID)
	if err != nil {
		return err
	}
	s.refresh(ctx, slug)
	return nil
}

// AdminDelete удаляет любой отзыв.
func (s *ReviewService) AdminDelete(ctx context.Context, reviewID string) error {
	slug, err := s.reviews.DeleteAny(ctx, reviewID)
	if err != nil {
		return err
	}
	s.refresh(ctx, slug)
	return nil
}

// MarkHelpful увеличивает счетчик "полезно".
func (s *ReviewService) MarkHelpful(ctx context.Context, reviewID string) error {
	return s.reviews.IncrementHelpful(ctx, reviewID)
}

func (s *ReviewService) refresh(ctx context.Context, slug string) {
	if err := s.ratings.RefreshRating(ctx, slug); err != nil {
		s.log.Error("не удалось пересчитать рейтинг", zap.String("destination", slug), zap.Error(err))
	}
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
