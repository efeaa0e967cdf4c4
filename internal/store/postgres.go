package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/facilities/internal/codec"
	"github.com/gyeh/facilities/internal/model"
	embedsql "github.com/gyeh/facilities/internal/sql"
)

var _ Store = (*PostgresStore)(nil)

// PostgresStore persists facilities as JSONB and overlays as four text
// columns. Schema comes from db.ApplyMigrations.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an open pool. Close closes the pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Pool exposes the pool for the collector load pipeline.
func (s *PostgresStore) Pool() *pgxpool.Pool { return s.pool }

func (s *PostgresStore) GetFacility(ctx context.Context, id string) (model.Facility, bool, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, embedsql.GetFacility, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Facility{}, false, nil
	}
	if err != nil {
		return model.Facility{}, false, fmt.Errorf("select facility %s: %w", id, err)
	}
	f, err := decodeFacility(raw)
	if err != nil {
		return model.Facility{}, false, err
	}
	return f, true, nil
}

func (s *PostgresStore) PutFacility(ctx context.Context, f model.Facility) error {
	raw, hash, err := encodeFacility(f)
	if err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, embedsql.UpsertFacility, f.ID, raw, hash); err != nil {
		return fmt.Errorf("upsert facility %s: %w", f.ID, err)
	}
	return nil
}

func (s *PostgresStore) ListFacilities(ctx context.Context) ([]model.Facility, error) {
	rows, err := s.pool.Query(ctx, embedsql.ListFacilities)
	if err != nil {
		return nil, fmt.Errorf("select facilities: %w", err)
	}
	defer rows.Close()

	var out []model.Facility
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan facility: %w", err)
		}
		f, err := decodeFacility(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate facilities: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) GetOverlay(ctx context.Context, id string) (codec.Record, bool, error) {
	var r codec.Record
	err := s.pool.QueryRow(ctx, embedsql.GetOverlay, id).
		Scan(&r.ID, &r.Core, &r.OperatingStatus, &r.Services, &r.HealthCareSystem)
	if errors.Is(err, pgx.ErrNoRows) {
		return codec.Record{}, false, nil
	}
	if err != nil {
		return codec.Record{}, false, fmt.Errorf("select overlay %s: %w", id, err)
	}
	return r, true, nil
}

func (s *PostgresStore) PutOverlay(ctx context.Context, rec codec.Record) error {
	_, err := s.pool.Exec(ctx, embedsql.UpsertOverlay,
		rec.ID, rec.Core, rec.OperatingStatus, rec.Services, rec.HealthCareSystem)
	if err != nil {
		return fmt.Errorf("upsert overlay %s: %w", rec.ID, err)
	}
	return nil
}

func (s *PostgresStore) ListOverlays(ctx context.Context) ([]codec.Record, error) {
	rows, err := s.pool.Query(ctx, embedsql.ListOverlays)
	if err != nil {
		return nil, fmt.Errorf("select overlays: %w", err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (codec.Record, error) {
		var r codec.Record
		err := row.Scan(&r.ID, &r.Core, &r.OperatingStatus, &r.Services, &r.HealthCareSystem)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect overlays: %w", err)
	}
	return records, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
