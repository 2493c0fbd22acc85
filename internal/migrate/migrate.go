package migrate

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/txmanager"
)

//go:embed *.sql
var migrations embed.FS

// ErrMigration возвращается при ошибке применения миграции
var ErrMigration = errors.New("migrate: failed to apply migration")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Database то, что нужно миграциям от БД
type Database interface {
	dbmetrics.DBExecutor
	txmanager.TxBeginner
}

// Up применяет все еще не примененные миграции по порядку имен файлов
// Каждая миграция выполняется в отдельной транзакции вместе с записью в schema_migrations
func Up(ctx context.Context, db Database, log Logger) (int, error) {
	files, err := files()
	if err != nil {
		return 0, err
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		return 0, fmt.Errorf("%w: create schema_migrations: %v", ErrMigration, err)
	}

	txManager := txmanager.NewTransactionManager(db)
	applied := 0

	for _, name := range files {
		var exists bool
		err := db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, name).Scan(&exists)
		if err != nil {
			return applied, fmt.Errorf("%w: check %s: %v", ErrMigration, name, err)
		}
		if exists {
			continue
		}

		body, err := migrations.ReadFile(name)
		if err != nil {
			return applied, fmt.Errorf("%w: read %s: %v", ErrMigration, name, err)
		}

		err = txManager.Do(ctx, func(txCtx context.Context) error {
			executor := dbmetrics.GetExecutor(txCtx, db)
			if _, err := executor.ExecContext(txCtx, string(body)); err != nil {
				return err
			}
			_, err := executor.ExecContext(txCtx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name)
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("%w: apply %s: %v", ErrMigration, name, err)
		}

		log.Info("Applied migration %s", name)
		applied++
	}

	return applied, nil
}

// files возвращает имена встроенных миграций в порядке применения
func files() ([]string, error) {
	entries, err := migrations.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("%w: read embedded migrations: %v", ErrMigration, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
