package postgres

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/medical_dispatch/internal/config"
)

// NewPostgresDB создает пул соединений PostgreSQL.
// DATABASE_NAME, если задан, заменяет имя базы из DATABASE_URL.
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	if appCfg.DatabaseName != "" {
		cfgPool.ConnConfig.Database = appCfg.DatabaseName
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Проверяем соединение с базой данных
	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return dbpool, nil
}

// MigrationURL строит URL для golang-migrate (драйвер pgx5) с учетом DATABASE_NAME
func MigrationURL(appCfg *config.Config) (string, error) {
	u, err := url.Parse(appCfg.DatabaseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse DATABASE_URL: %w", err)
	}
	switch u.Scheme {
	case "postgres", "postgresql", "pgx5":
	default:
		return "", fmt.Errorf("unsupported DATABASE_URL scheme %q", u.Scheme)
	}
	u.Scheme = "pgx5"
	if appCfg.DatabaseName != "" {
		u.Path = "/" + appCfg.DatabaseName
	}
	return u.String(), nil
}
