package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/facilities/internal/sql"
)

// UpsertResult holds metrics from the upsert phase.
type UpsertResult struct {
	RowsUpserted int64
	Duration     time.Duration
}

// Upsert moves a staged batch into facilities. Rows whose content hash is
// unchanged are left alone and not counted; when a dump repeats an id the
// later row wins.
func Upsert(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, batchID uuid.UUID) (*UpsertResult, error) {
	start := time.Now()

	tag, err := pool.Exec(ctx, embedsql.UpsertStagedFacilities, batchID)
	if err != nil {
		return nil, fmt.Errorf("upsert staged facilities: %w", err)
	}

	dur := time.Since(start)
	log.Info().
		Int64("rows_upserted", tag.RowsAffected()).
		Dur("duration", dur).
		Msg("upsert complete")

	return &UpsertResult{RowsUpserted: tag.RowsAffected(), Duration: dur}, nil
}
