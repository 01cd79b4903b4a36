// Package database открывает подключение к PostgreSQL и применяет SQL-миграции.
package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"camtourvisor/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL драйвер
	"go.uber.org/zap"
)

// Connect подключается к базе и проверяет соединение.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к базе данных: %w", err)
	}
	if cfg.MaxConnections > 0 {
		db.SetMaxOpenConns(cfg.MaxConnections)
	}
	return db, nil
}

// Migrate выполняет файлы dir/*.sql в лексическом порядке, каждый в своей транзакции.
// Миграции должны быть идемпотентными: они выполняются при каждом запуске.
func Migrate(ctx context.Context, db *sqlx.DB, dir string, log *zap.Logger) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("ошибка поиска миграций: %w", err)
	}
	sort.Strings(files)
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("не удалось прочитать миграцию %s: %w", file, err)
		}
		if err := applyMigration(ctx, db, string(content)); err != nil {
			return fmt.Errorf("миграция %s завершилась ошибкой: %w", file, err)
		}
		log.Info("миграция применена", zap.String("file", filepath.Base(file)))
	}
	return nil
}

func applyMigration(ctx context.Context, db *sqlx.DB, content string) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, content); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
