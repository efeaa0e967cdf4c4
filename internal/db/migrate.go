package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/facilities/internal/normalize"
	embedsql "github.com/gyeh/facilities/internal/sql"
)

const createLedger = `CREATE TABLE IF NOT EXISTS schema_migrations (
    name        TEXT PRIMARY KEY,
    checksum    TEXT NOT NULL,
    applied_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// ErrMigrationChanged reports an embedded migration whose content no longer
// matches the checksum recorded when it was applied.
var ErrMigrationChanged = errors.New("applied migration was modified")

// ApplyMigrations runs the embedded SQL migrations in filename order, each in
// its own transaction, and records them in schema_migrations. Migrations
// already recorded are skipped. Returns the number applied by this call.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) (int, error) {
	entries, err := fs.ReadDir(embedsql.Migrations, "migrations")
	if err != nil {
		return 0, fmt.Errorf("read migrations dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	if _, err := pool.Exec(ctx, createLedger); err != nil {
		return 0, fmt.Errorf("create migration ledger: %w", err)
	}
	recorded, err := appliedMigrations(ctx, pool)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		data, err := fs.ReadFile(embedsql.Migrations, "migrations/"+name)
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", name, err)
		}
		sum := normalize.ContentHash(data)

		if prev, ok := recorded[name]; ok {
			if prev != sum {
				return applied, fmt.Errorf("%s: %w", name, ErrMigrationChanged)
			}
			log.Debug().Str("migration", name).Msg("already applied")
			continue
		}

		log.Info().Str("migration", name).Msg("applying migration")
		if err := applyOne(ctx, pool, name, string(data), sum); err != nil {
			return applied, err
		}
		applied++
	}

	log.Info().Int("applied", applied).Int("total", len(recorded)+applied).Msg("migrations up to date")
	return applied, nil
}

func appliedMigrations(ctx context.Context, pool *pgxpool.Pool) (map[string]string, error) {
	rows, err := pool.Query(ctx, `SELECT name, checksum FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("read migration ledger: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var name, sum string
		if err := rows.Scan(&name, &sum); err != nil {
			return nil, fmt.Errorf("scan migration ledger: %w", err)
		}
		out[name] = sum
	}
	return out, rows.Err()
}

func applyOne(ctx context.Context, pool *pgxpool.Pool, name, ddl, sum string) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("execute migration %s: %w", name, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO schema_migrations (name, checksum) VALUES ($1, $2)`, name, sum); err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		return nil
	})
}
