package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/gyeh/facilities/internal/codec"
	"github.com/gyeh/facilities/internal/model"
)

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore is the single-file backend for local runs. It mirrors the
// Postgres tables with TEXT in place of JSONB.
type SQLiteStore struct {
	db *sql.DB
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS facilities (
		id TEXT PRIMARY KEY,
		facility TEXT NOT NULL,
		content_hash TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS cms_overlays (
		id TEXT PRIMARY KEY,
		core TEXT,
		operating_status TEXT,
		services TEXT,
		health_care_system TEXT,
		updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		path = "facilities.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer; modernc serializes anyway and this avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	for _, ddl := range sqliteSchema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) GetFacility(ctx context.Context, id string) (model.Facility, bool, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT facility FROM facilities WHERE id = ?`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
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

func (s *SQLiteStore) PutFacility(ctx context.Context, f model.Facility) error {
	raw, hash, err := encodeFacility(f)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO facilities(id, facility, content_hash, updated_at)
		VALUES(?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET facility = excluded.facility,
			content_hash = excluded.content_hash, updated_at = CURRENT_TIMESTAMP
		WHERE facilities.content_hash IS NOT excluded.content_hash`,
		f.ID, string(raw), hash)
	if err != nil {
		return fmt.Errorf("upsert facility %s: %w", f.ID, err)
	}
	return nil
}

func (s *SQLiteStore) ListFacilities(ctx context.Context) ([]model.Facility, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT facility FROM facilities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select facilities: %w", err)
	}
	defer func() { _ = rows.Close() }()

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

func (s *SQLiteStore) GetOverlay(ctx context.Context, id string) (codec.Record, bool, error) {
	var r codec.Record
	var core, status, services, system sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT id, core, operating_status, services, health_care_system
		FROM cms_overlays WHERE id = ?`, id).Scan(&r.ID, &core, &status, &services, &system)
	if errors.Is(err, sql.ErrNoRows) {
		return codec.Record{}, false, nil
	}
	if err != nil {
		return codec.Record{}, false, fmt.Errorf("select overlay %s: %w", id, err)
	}
	r.Core, r.OperatingStatus, r.Services, r.HealthCareSystem =
		nullable(core), nullable(status), nullable(services), nullable(system)
	return r, true, nil
}

func (s *SQLiteStore) PutOverlay(ctx context.Context, rec codec.Record) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO cms_overlays(id, core, operating_status, services, health_care_system, updated_at)
		VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET core = excluded.core,
			operating_status = excluded.operating_status,
			services = excluded.services,
			health_care_system = excluded.health_care_system,
			updated_at = CURRENT_TIMESTAMP`,
		rec.ID, rec.Core, rec.OperatingStatus, rec.Services, rec.HealthCareSystem)
	if err != nil {
		return fmt.Errorf("upsert overlay %s: %w", rec.ID, err)
	}
	return nil
}

func (s *SQLiteStore) ListOverlays(ctx context.Context) ([]codec.Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, core, operating_status, services, health_care_system
		FROM cms_overlays ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select overlays: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []codec.Record
	for rows.Next() {
		var r codec.Record
		var core, status, services, system sql.NullString
		if err := rows.Scan(&r.ID, &core, &status, &services, &system); err != nil {
			return nil, fmt.Errorf("scan overlay: %w", err)
		}
		r.Core, r.OperatingStatus, r.Services, r.HealthCareSystem =
			nullable(core), nullable(status), nullable(services), nullable(system)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate overlays: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
