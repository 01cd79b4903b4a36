package repository

import (
	"context"
	"fmt"

	"camtourvisor/internal/model"

	"github.com/jmoiron/sqlx"
)

// SavedDestinationRepository обеспечивает доступ к избранным направлениям.
type SavedDestinationRepository struct {
	db *sqlx.DB
}

// NewSavedDestinationRepository создает новый репозиторий избранного.
func NewSavedDestinationRepository(db *sqlx.DB) *SavedDestinationRepository {
	return &SavedDestinationRepository{db: db}
}

// Save добавляет направление в избранное. Повторное сохранение возвращает ErrConflict.
func (r *SavedDestinationRepository) Save(ctx context.Context, saved *model.SavedDestination) error {
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO saved_destinations
		(id, user_id, destination_id, destination_name, destination_image, destination_location,
		 destination_category, notes, created_at)
		VALUES
		(:id, :user_id, :destination_id, :destination_name, :destination_image, :destination_location,
		 :destination_category, :notes, :created_at)`, saved)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("не удалось сохранить направление в избранное: %w", err)
	}
	return nil
}

// Unsave удаляет направление из избранного пользователя.
func (r *SavedDestinationRepository) Unsave(ctx context.Context, userID, destinationID string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM saved_destinations WHERE user_id=$1 AND destination_id=$2", userID, destinationID)
	if err != nil {
		return fmt.Errorf("не удалось удалить направление из избранного: %w", err)
	}
	return expectAffected(res)
}

// ListByUser возвращает избранное пользователя, новые первыми.
func (r *SavedDestinationRepository) ListByUser(ctx context.Context, userID string) ([]model.SavedDestination, error) {
	saved := []model.SavedDestination{}
	err := r.db.SelectContext(ctx, &saved,
		`SELECT id, user_id, destination_id, destination_name, destination_image, destination_location,
		        destination_category, notes, created_at
		 FROM saved_destinations WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении избранного: %w", err)
	}
	return saved, nil
}

// Exists проверяет, сохранено ли направление пользователем.
func (r *SavedDestinationRepository) Exists(ctx context.Context, userID, destinationID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM saved_destinations WHERE user_id=$1 AND destination_id=$2)",
		userID, destinationID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке избранного: %w", err)
	}
	return exists, nil
}
