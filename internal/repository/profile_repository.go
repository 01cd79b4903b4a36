package repository

import (
	"context"
	"fmt"

	"camtourvisor/internal/model"

	"github.com/jmoiron/sqlx"
)

const profileColumns = `id, email, password_hash, username, full_name, avatar_url, telegram_chat_id, created_at, updated_at`

// ProfileRepository обеспечивает доступ к профилям пользователей.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository создаёт новый репозиторий профилей.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create добавляет новый профиль. Занятый email возвращает ErrConflict.
func (r *ProfileRepository) Create(ctx context.Context, p *model.Profile) error {
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO profiles (`+profileColumns+`)
		VALUES (:id, :email, :password_hash, :username, :full_name, :avatar_url, :telegram_chat_id, :created_at, :updated_at)`, p)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("не удалось создать профиль: %w", err)
	}
	return nil
}

// GetByID возвращает профиль по идентификатору.
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	var p model.Profile
	if err := r.db.GetContext(ctx, &p, "SELECT "+profileColumns+" FROM profiles WHERE id=$1", id); err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// GetByEmail ищет профиль по email без учета регистра.
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var p model.Profile
	err := r.db.GetContext(ctx, &p, "SELECT "+profileColumns+" FROM profiles WHERE LOWER(email)=LOWER($1)", email)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// Update сохраняет изменяемые поля профиля.
func (r *ProfileRepository) Update(ctx context.Context, p *model.Profile) error {
	res, err := r.db.NamedExecContext(ctx, `UPDATE profiles SET
		username=:username, full_name=:full_name, avatar_url=:avatar_url,
		telegram_chat_id=:telegram_chat_id, updated_at=:updated_at
		WHERE id=:id`, p)
	if err != nil {
		return fmt.Errorf("не удалось обновить профиль: %w", err)
	}
	return expectAffected(res)
}

// List возвращает все профили, новые первыми.
func (r *ProfileRepository) List(ctx context.Context) ([]model.Profile, error) {
	profiles := []model.Profile{}
	if err := r.db.SelectContext(ctx, &profiles, "SELECT "+profileColumns+" FROM profiles ORDER BY created_at DESC"); err != nil {
		return nil, fmt.Errorf("ошибка при получении списка профилей: %w", err)
	}
	return profiles, nil
}

// Delete удаляет профиль вместе со связанными данными.
func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM profiles WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить профиль: %w", err)
	}
	return expectAffected(res)
}
