package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/redade943-code/FabiansWelt/internal/config"
)

// InitPostgres initializes and returns a PostgreSQL connection pool
func InitPostgres(cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Set connection pool settings
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30
	poolConfig.HealthCheckPeriod = time.Minute * 5

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createTables(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return pool, nil
}

// createTables creates all required tables if they don't exist
func createTables(ctx context.Context, pool *pgxpool.Pool) error {
	// Entries table - one row per submitted record. Rows are insert-only;
	// created_at is assigned by the database and drives ordering.
	entriesTable := `
		CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			country_code VARCHAR(2) NOT NULL,
			title TEXT,
			info TEXT,
			image_url TEXT,
			audio_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, entriesTable); err != nil {
		return fmt.Errorf("failed to create entries table: %w", err)
	}

	entriesIndex := `
		CREATE INDEX IF NOT EXISTS idx_entries_country_created
		ON entries (country_code, created_at DESC)
	`
	if _, err := pool.Exec(ctx, entriesIndex); err != nil {
		return fmt.Errorf("failed to create entries index: %w", err)
	}

	return nil
}
