package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"camtourvisor/internal/repository"
)

var (
	// ErrNotFound - запись не найдена или принадлежит другому пользователю.
	ErrNotFound = repository.ErrNotFound
	// ErrConflict - запись уже существует.
	ErrConflict = repository.ErrConflict
	// ErrUnauthorized - неверные учетные данные или токен.
	ErrUnauthorized = errors.New("требуется авторизация")
	// ErrForbidden - недостаточно прав.
	ErrForbidden = errors.New("доступ запрещен")
	// ErrNoOperators - не настроены чаты поддержки.
	ErrNoOperators = errors.New("операторы поддержки не настроены")
)

// ValidationError содержит ошибки по полям формы.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

// validator накапливает ошибки полей.
type validator map[string]string

func (v validator) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		v[field] = "is required"
	}
}

func (v validator) check(ok bool, field, msg string) {
	if !ok {
		if _, exists := v[field]; !exists {
			v[field] = msg
		}
	}
}

func (v validator) err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Fields: map[string]string(v)}
}

func invalid(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
