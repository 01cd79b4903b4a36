package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound возвращается, когда запись не найдена или не принадлежит пользователю.
	ErrNotFound = errors.New("запись не найдена")
	// ErrConflict возвращается при нарушении уникальности.
	ErrConflict = errors.New("запись уже существует")
)

// uniqueViolation - код ошибки PostgreSQL unique_violation.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// notFound переводит sql.ErrNoRows в ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// expectAffected возвращает ErrNotFound, если запрос не затронул ни одной строки.
func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
