package database

import (
	"context"
	"fmt"
	"time"

	"aesthetic-cakes/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema creates the catalogue tables. Position columns carry the
// declaration order of products and category labels.
const Schema = `
	CREATE TABLE IF NOT EXISTS catalog_products (
		kind        TEXT    NOT NULL CHECK (kind IN ('cake', 'sweet')),
		id          INTEGER NOT NULL CHECK (id >= 0),
		position    INTEGER NOT NULL,
		name        TEXT    NOT NULL,
		description TEXT    NOT NULL DEFAULT '',
		category    TEXT    NOT NULL DEFAULT '',
		price       TEXT    NOT NULL DEFAULT '',
		image       TEXT    NOT NULL DEFAULT '',
		PRIMARY KEY (kind, id)
	);
	CREATE INDEX IF NOT EXISTS idx_catalog_products_position ON catalog_products(kind, position);

	CREATE TABLE IF NOT EXISTS catalog_categories (
		kind     TEXT    NOT NULL CHECK (kind IN ('cake', 'sweet')),
		label    TEXT    NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (kind, label)
	);
`

// NewPool creates a new PostgreSQL connection pool.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("max_connections", cfg.MaxConnections).
		Int("min_connections", cfg.MinConnections).
		Msg("creating database connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("database connection pool created successfully")

	return pool, nil
}

// EnsureSchema creates the catalogue tables if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		logger.Error().Err(err).Msg("failed to apply catalog schema")
		return fmt.Errorf("failed to apply catalog schema: %w", err)
	}

	logger.Debug().Msg("catalog schema ensured")
	return nil
}
