package repository

import (
	"context"
	"fmt"

	"camtourvisor/internal/model"

	"github.com/jmoiron/sqlx"
)

const reviewColumns = `r.id, r.user_id, r.destination_id, r.rating, r.title, r.content, r.travel_date,
	r.travel_type, r.helpful_count, r.created_at, r.updated_at`

const reviewWithAuthor = `SELECT ` + reviewColumns + `,
	COALESCE(p.username, '') AS username, COALESCE(p.avatar_url, '') AS avatar_url
	FROM reviews r LEFT JOIN profiles p ON p.id = r.user_id`

// ReviewRepository обеспечивает доступ к отзывам.
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository создает новый репозиторий отзывов.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create сохраняет новый отзыв.
func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO reviews
		(id, user_id, destination_id, rating, title, content, travel_date, travel_type, helpful_count, created_at, updated_at)
		VALUES
		(:id, :user_id, :destination_id, :rating, :title, :content, :travel_date, :travel_type, :helpful_count, :created_at, :updated_at)`,
		review)
	if err != nil {
		return fmt.Errorf("не удалось создать отзыв: %w", err)
	}
	return nil
}

// GetByID возвращает отзыв вместе с автором.
func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*model.Review, error) {
	var review model.Review
	if err := r.db.GetContext(ctx, &review, reviewWithAuthor+" WHERE r.id=$1", id); err != nil {
		return nil, notFound(err)
	}
	return &review, nil
}

// ListByDestination возвращает отзывы о направлении, новые первыми.
func (r *ReviewRepository) ListByDestination(ctx context.Context, destinationID string) ([]model.Review, error) {
	reviews := []model.Review{}
	err := r.db.SelectContext(ctx, &reviews,
		reviewWithAuthor+" WHERE r.destination_id=$1 ORDER BY r.created_at DESC", destinationID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении отзывов направления: %w", err)
	}
	return reviews, nil
}

// ListByUser возвращает отзывы пользователя с названием направления.
func (r *ReviewRepository) ListByUser(ctx context.Context, userID string) ([]model.Review, error) {
	reviews := []model.Review{}
	err := r.db.SelectContext(ctx, &reviews,
		`SELECT `+reviewColumns+`, COALESCE(d.name, '') AS destination_name
		 FROM reviews r LEFT JOIN destinations d ON d.slug = r.destination_id
		 WHERE r.user_id=$1 ORDER BY r.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении отзывов пользователя: %w", err)
	}
	return reviews, nil
}

// ListAll возвращает все отзывы для панели администратора.
func (r *ReviewRepository) ListAll(ctx context.Context) ([]model.Review, error) {
	reviews := []model.Review{}
	if err := r.db.SelectContext(ctx, &reviews, reviewWithAuthor+" ORDER BY r.created_at DESC"); err != nil {
		return nil, fmt.Errorf("ошибка при получении списка отзывов: %w", err)
	}
	return reviews, nil
}

// Update изменяет отзыв, только если он принадлежит пользователю.
func (r *ReviewRepository) Update(ctx context.Context, review *model.Review) error {
	res, err := r.db.NamedExecContext(ctx, `UPDATE reviews SET
		rating=:rating, title=:title, content=:content, travel_date=:travel_date,
		travel_type=:travel_type, updated_at=:updated_at
		WHERE id=:id AND user_id=:user_id`, review)
	if err != nil {
		return fmt.Errorf("не удалось обновить отзыв: %w", err)
	}
	return expectAffected(res)
}

// Delete удаляет отзыв пользователя и возвращает slug направления.
func (r *ReviewRepository) Delete(ctx context.Context, id, userID string) (string, error) {
	var destinationID string
	err := r.db.GetContext(ctx, &destinationID,
		"DELETE FROM reviews WHERE id=$1 AND user_id=$2 RETURNING destination_id", id, userID)
	if err != nil {
		return "", notFound(err)
	}
	return destinationID, nil
}

// DeleteAny удаляет любой отзыв (администратор) и возвращает slug направления.
func (r *ReviewRepository) DeleteAny(ctx context.Context, id string) (string, error) {
	var destinationID string
	err := r.db.GetContext(ctx, &destinationID, "DELETE FROM reviews WHERE id=$1 RETURNING destination_id", id)
	if err != nil {
		return "", notFound(err)
	}
	return destinationID, nil
}

// IncrementHelpful увеличивает счетчик "полезно" на единицу.
func (r *ReviewRepository) IncrementHelpful(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE reviews SET helpful_count = helpful_count + 1 WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось обновить счетчик отзыва: %w", err)
	}
	return expectAffected(res)
}
