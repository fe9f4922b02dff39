package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"authntik/config"
	"authntik/internal"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

// SetupDatabase подключается к БД и, если включено, применяет миграции.
func SetupDatabase(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*internal.Database, error) {
	database, err := internal.NewDatabaseConnection(ctx, cfg.Driver, cfg.ConnectionString, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения: %w", err)
	}

	if cfg.Migrate {
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return nil, err
		}
	}

	return database, nil
}

func SetupServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Address(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
