package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gyeh/facilities/internal/config"
	"github.com/gyeh/facilities/internal/db"
)

// Open builds the store selected by cfg.StoreDriver. The Postgres backend has
// its migrations applied before it is returned.
func Open(ctx context.Context, cfg config.Config, log zerolog.Logger) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory, "":
		return NewMemoryStore(), nil
	case config.DriverSQLite:
		s, err := NewSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, nil
	case config.DriverPostgres:
		pool, err := db.NewPool(ctx, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		if _, err := db.ApplyMigrations(ctx, pool, log); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate postgres store: %w", err)
		}
		return NewPostgresStore(pool), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
