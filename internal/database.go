package internal

import (
	"context"
	"database/sql"
	"fmt"

	"authntik/internal/migrations"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

type Database struct {
	*sqlx.DB
	log zerolog.Logger
}

// sqlxConnect и gooseUpContext подменяются в тестах.
var sqlxConnect = sqlx.ConnectContext

var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func NewDatabaseConnection(ctx context.Context, dbDriver string, dbConnectionStr string, log zerolog.Logger) (*Database, error) {
	database, err := sqlxConnect(ctx, dbDriver, dbConnectionStr)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	log.Info().Str("driver", dbDriver).Msg("подключение к БД успешно выполнено")
	return NewDatabase(database, log), nil
}

func NewDatabase(db *sqlx.DB, log zerolog.Logger) *Database {
	return &Database{DB: db, log: log}
}

// Migrate применяет встроенные миграции схемы.
func (db *Database) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(db.DriverName()); err != nil {
		return fmt.Errorf("ошибка выбора диалекта миграций: %w", err)
	}

	if err := gooseUpContext(ctx, db.DB.DB, "."); err != nil {
		return fmt.Errorf("ошибка применения миграций: %w", err)
	}

	db.log.Info().Msg("миграции применены")
	return nil
}

func (db *Database) Close() error {
	err := db.DB.Close()
	if err != nil {
		return fmt.Errorf("ошибка закрытия соединения с БД: %w", err)
	}

	return nil
}
