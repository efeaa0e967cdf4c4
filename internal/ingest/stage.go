package ingest

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/facilities/internal/db"
	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/normalize"
)

const stageBufferSize = 1024

// StageResult holds metrics from the staging phase.
type StageResult struct {
	RowsRead     int64
	RowsStaged   int64
	RowsRejected int64
	Duration     time.Duration
}

// Stage streams the dump, validates each facility, and COPY-loads the
// survivors into the staging table via a channel-backed CopyFromSource.
// Invalid rows are logged and counted, never fatal.
func Stage(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult) (*StageResult, error) {
	start := time.Now()

	f, err := os.Open(pf.FilePath)
	if err != nil {
		return nil, fmt.Errorf("stage open: %w", err)
	}
	defer f.Close()

	ch := make(chan *model.StagingRow, stageBufferSize)
	errCh := make(chan error, 1)

	var rowsRead, rowsRejected int64

	// Producer goroutine: scan dump → validate → push to channel
	go func() {
		defer close(ch)
		sc := newDumpScanner(f)
		for {
			rowNum, line, ok := sc.Next()
			if !ok {
				break
			}
			rowsRead++

			fac, doc, parseErr := ParseFacility(line)
			if parseErr != nil {
				rowsRejected++
				log.Warn().Err(parseErr).Int64("row", rowNum).Msg("row rejected")
				continue
			}

			staging := &model.StagingRow{
				IngestBatchID:   pf.IngestBatchID,
				SourceRowNumber: rowNum,
				ID:              fac.ID,
				Facility:        doc,
				ContentHash:     normalize.ContentHash(doc),
			}
			select {
			case ch <- staging:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
		if scanErr := sc.Err(); scanErr != nil {
			errCh <- fmt.Errorf("scan dump after row %d: %w", rowsRead, scanErr)
			return
		}
		errCh <- nil
	}()

	// Consumer: COPY from channel into staging table
	source := db.NewChannelSource(ch)
	rowsStaged, err := pool.CopyFrom(ctx,
		pgx.Identifier{"ingest", "stage_facilities"},
		model.StagingColumns(),
		source,
	)
	if err != nil {
		// COPY stopped reading; drain so the producer can finish.
		for range ch {
		}
	}

	prodErr := <-errCh
	if prodErr != nil {
		return nil, fmt.Errorf("stage producer: %w", prodErr)
	}
	if err != nil {
		return nil, fmt.Errorf("stage copy: %w", err)
	}

	dur := time.Since(start)
	log.Info().
		Int64("rows_read", rowsRead).
		Int64("rows_staged", rowsStaged).
		Int64("rows_rejected", rowsRejected).
		Str("duration", dur.String()).
		Float64("rows_per_sec", float64(rowsStaged)/dur.Seconds()).
		Msg("staging complete")

	return &StageResult{
		RowsRead:     rowsRead,
		RowsStaged:   rowsStaged,
		RowsRejected: rowsRejected,
		Duration:     dur,
	}, nil
}
