package repository

import (
	"context"
	"fmt"
	"strings"

	"camtourvisor/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const destinationColumns = `id, slug, name, location, description, category, image_url, gallery,
	rating, review_count, activities, recommended_stay, budget_range, good_for, best_time_to_visit,
	local_phrases, itineraries, amenities, latitude, longitude, created_at, updated_at`

// DestinationRepository обеспечивает доступ к направлениям и их упорядоченным спискам
// (достопримечательности, правила этикета).
type DestinationRepository struct {
	db *sqlx.DB
}

// NewDestinationRepository создает новый репозиторий направлений.
func NewDestinationRepository(db *sqlx.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

// List возвращает направления, отсортированные по названию. Пустая категория или "all"
// не фильтрует; search ищет подстроку в названии, местоположении и описании.
func (r *DestinationRepository) List(ctx context.Context, category, search string) ([]model.Destination, error) {
	query := "SELECT " + destinationColumns + " FROM destinations WHERE 1=1"
	args := []interface{}{}
	if category != "" && strings.ToLower(category) != "all" {
		query += " AND LOWER(category)=LOWER(?)"
		args = append(args, category)
	}
	if search != "" {
		kw := "%" + strings.ToLower(search) + "%"
		query += " AND (LOWER(name) LIKE ? OR LOWER(location) LIKE ? OR LOWER(description) LIKE ?)"
		args = append(args, kw, kw, kw)
	}
	query += " ORDER BY name"
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	destinations := []model.Destination{}
	if err := r.db.SelectContext(ctx, &destinations, query, args...); err != nil {
		return nil, fmt.Errorf("ошибка при получении списка направлений: %w", err)
	}
	if err := r.loadLists(ctx, destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

// GetBySlug возвращает направление по slug.
func (r *DestinationRepository) GetBySlug(ctx context.Context, slug string) (*model.Destination, error) {
	return r.getOne(ctx, "slug", slug)
}

// GetByID возвращает направление по внутреннему идентификатору.
func (r *DestinationRepository) GetByID(ctx context.Context, id string) (*model.Destination, error) {
	return r.getOne(ctx, "id", id)
}

func (r *DestinationRepository) getOne(ctx context.Context, column, value string) (*model.Destination, error) {
	var d model.Destination
	query := "SELECT " + destinationColumns + " FROM destinations WHERE " + column + "=$1"
	if err := r.db.GetContext(ctx, &d, query, value); err != nil {
		return nil, notFound(err)
	}
	list := []model.Destination{d}
	if err := r.loadLists(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

type listRow struct {
	DestinationID string `db:"destination_id"`
	Text          string `db:"text"`
}

// loadLists заполняет Highlights и CulturalEtiquette одним запросом на таблицу.
func (r *DestinationRepository) loadLists(ctx context.Context, destinations []model.Destination) error {
	if len(destinations) == 0 {
		return nil
	}
	ids := make([]string, len(destinations))
	index := make(map[string]int, len(destinations))
	for i, d := range destinations {
		ids[i] = d.ID
		index[d.ID] = i
		destinations[i].Highlights = []string{}
		destinations[i].CulturalEtiquette = []string{}
	}

	var highlights []listRow
	err := r.db.SelectContext(ctx, &highlights,
		`SELECT destination_id, highlight AS text FROM destination_highlights
		 WHERE destination_id = ANY($1) ORDER BY destination_id, order_index`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("ошибка при получении достопримечательностей: %w", err)
	}
	for _, h := range highlights {
		if i, ok := index[h.DestinationID]; ok {
			destinations[i].Highlights = append(destinations[i].Highlights, h.Text)
		}
	}

	var tips []listRow
	err = r.db.SelectContext(ctx, &tips,
		`SELECT destination_id, etiquette_tip AS text FROM cultural_etiquette
		 WHERE destination_id = ANY($1) ORDER BY destination_id, order_index`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("ошибка при получении правил этикета: %w", err)
	}
	for _, t := range tips {
		if i, ok := index[t.DestinationID]; ok {
			destinations[i].CulturalEtiquette = append(destinations[i].CulturalEtiquette, t.Text)
		}
	}
	return nil
}

// Upsert создает или обновляет направление по ID. Списки Highlights и CulturalEtiquette
// заменяются целиком, только если они не пусты. ID должен быть заполнен вызывающей стороной.
func (r *DestinationRepository) Upsert(ctx context.Context, d *model.Destination) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	_, err = tx.NamedExecContext(ctx, `INSERT INTO destinations
		(id, slug, name, location, description, category, image_url, gallery, rating, review_count,
		 activities, recommended_stay, budget_range, good_for, best_time_to_visit, local_phrases,
		 itineraries, amenities, latitude, longitude, created_at, updated_at)
		VALUES
		(:id, :slug, :name, :location, :description, :category, :image_url, :gallery, :rating, :review_count,
		 :activities, :recommended_stay, :budget_range, :good_for, :best_time_to_visit, :local_phrases,
		 :itineraries, :amenities, :latitude, :longitude, :created_at, :updated_at)
		ON CONFLICT (id) DO UPDATE SET
		 slug=EXCLUDED.slug, name=EXCLUDED.name, location=EXCLUDED.location,
		 description=EXCLUDED.description, category=EXCLUDED.category, image_url=EXCLUDED.image_url,
		 gallery=EXCLUDED.gallery, activities=EXCLUDED.activities,
		 recommended_stay=EXCLUDED.recommended_stay, budget_range=EXCLUDED.budget_range,
		 good_for=EXCLUDED.good_for, best_time_to_visit=EXCLUDED.best_time_to_visit,
		 local_phrases=EXCLUDED.local_phrases, itineraries=EXCLUDED.itineraries,
		 amenities=EXCLUDED.amenities, latitude=EXCLUDED.latitude, longitude=EXCLUDED.longitude,
		 updated_at=EXCLUDED.updated_at`, d)
	if err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("не удалось сохранить направление: %w", err)
	}
	if len(d.Highlights) > 0 {
		if err := replaceList(ctx, tx, "destination_highlights", "highlight", d.ID, d.Highlights); err != nil {
			tx.Rollback()
			return err
		}
	}
	if len(d.CulturalEtiquette) > 0 {
		if err := replaceList(ctx, tx, "cultural_etiquette", "etiquette_tip", d.ID, d.CulturalEtiquette); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func replaceList(ctx context.Context, tx *sqlx.Tx, table, column, destinationID string, items []string) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE destination_id=$1", destinationID); err != nil {
		return fmt.Errorf("не удалось очистить %s: %w", table, err)
	}
	insert := "INSERT INTO " + table + " (destination_id, " + column + ", order_index) VALUES ($1, $2, $3)"
	for idx, item := range items {
		if _, err := tx.ExecContext(ctx, insert, destinationID, item, idx); err != nil {
			return fmt.Errorf("не удалось сохранить %s: %w", table, err)
		}
	}
	return nil
}

// Delete удаляет направление (дочерние списки удаляются каскадно).
func (r *DestinationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM destinations WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить направление: %w", err)
	}
	return expectAffected(res)
}

// Count возвращает количество направлений.
func (r *DestinationRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM destinations"); err != nil {
		return 0, fmt.Errorf("ошибка при подсчете направлений: %w", err)
	}
	return n, nil
}

// RefreshRating пересчитывает средний рейтинг и количество отзывов по таблице reviews.
func (r *DestinationRepository) RefreshRating(ctx context.Context, slug string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE destinations SET
		rating = COALESCE((SELECT ROUND(AVG(rating)::numeric, 1) FROM reviews WHERE destination_id=$1), 0),
		review_count = (SELECT COUNT(*) FROM reviews WHERE destination_id=$1),
		updated_at = now()
		WHERE slug=$1`, slug)
	if err != nil {
		return fmt.Errorf("не удалось обновить рейтинг направления: %w", err)
	}
	return nil
}
