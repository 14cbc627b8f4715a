// Package store persists farm profiles and generated plans in Postgres.
// The engine never touches this package; only the API layer does, so the
// core stays free of I/O.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB initializes the connection pool from DATABASE_URL. Safe to call
// more than once; only the first call connects.
func InitDB(ctx context.Context) error {
	var err error
	once.Do(func() {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			err = fmt.Errorf("DATABASE_URL environment variable not set")
			return
		}

		config, parseErr := pgxpool.ParseConfig(dbURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse database config: %w", parseErr)
			return
		}

		pool, err = pgxpool.NewWithConfig(ctx, config)
	})
	return err
}

// GetPool returns the shared pool, or nil when InitDB has not succeeded.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close releases the pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
