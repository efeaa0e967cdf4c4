// Package ingest loads collector facility dumps into the facility store.
// A dump is newline-delimited canonical facility JSON.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/facilities/internal/metrics"
	"github.com/gyeh/facilities/internal/model"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Options controls a single load.
type Options struct {
	FilePath    string
	KeepStaging bool
	Metrics     *metrics.Metrics
}

// Run executes the Postgres load pipeline: preflight → stage → upsert →
// finalize → cleanup.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, opts Options) (*model.ImportSummary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	log.Info().Str("file", opts.FilePath).Msg("starting preflight")
	pf, err := Preflight(ctx, log, opts.FilePath)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}
	log = log.With().Str("ingest_batch_id", pf.IngestBatchID.String()).Logger()

	// Phase 2: Stage
	log.Info().Msg("starting staging")
	stageResult, err := Stage(ctx, pool, log, pf)
	if err != nil {
		if cerr := Cleanup(ctx, pool, log, pf.IngestBatchID); cerr != nil {
			log.Warn().Err(cerr).Msg("staging cleanup after failure failed")
		}
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	// Phase 3: Upsert
	log.Info().Msg("starting upsert")
	upsertResult, err := Upsert(ctx, pool, log, pf.IngestBatchID)
	if err != nil {
		return nil, &PipelineError{Phase: "upsert", Err: err}
	}

	// Phase 4: Finalize
	if _, err := Finalize(ctx, pool, log); err != nil {
		return nil, &PipelineError{Phase: "finalize", Err: err}
	}

	// Phase 5: Cleanup staging
	if !opts.KeepStaging {
		log.Info().Msg("cleaning up staging")
		if err := Cleanup(ctx, pool, log, pf.IngestBatchID); err != nil {
			log.Warn().Err(err).Msg("staging cleanup failed (non-fatal)")
		}
	}

	summary := &model.ImportSummary{
		FilePath:       pf.FilePath,
		FileSHA256:     pf.FileSHA256,
		IngestBatchID:  pf.IngestBatchID.String(),
		RowsRead:       stageResult.RowsRead,
		RowsStaged:     stageResult.RowsStaged,
		RowsRejected:   stageResult.RowsRejected,
		RowsUpserted:   upsertResult.RowsUpserted,
		DurationStage:  stageResult.Duration,
		DurationUpsert: upsertResult.Duration,
		DurationTotal:  time.Since(totalStart),
	}
	recordSummary(opts.Metrics, summary)
	logSummary(log, summary)

	return summary, nil
}

func recordSummary(m *metrics.Metrics, s *model.ImportSummary) {
	m.AddImportRows("staged", s.RowsStaged)
	m.AddImportRows("rejected", s.RowsRejected)
	m.AddImportRows("upserted", s.RowsUpserted)
}

func logSummary(log zerolog.Logger, s *model.ImportSummary) {
	log.Info().
		Int64("rows_read", s.RowsRead).
		Int64("rows_staged", s.RowsStaged).
		Int64("rows_upserted", s.RowsUpserted).
		Int64("rows_rejected", s.RowsRejected).
		Str("total_duration", s.DurationTotal.String()).
		Msg("import complete")
}
