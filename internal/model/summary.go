package model

import "time"

// ImportSummary captures metrics from a single collector dump load.
type ImportSummary struct {
	FilePath       string
	FileSHA256     string
	IngestBatchID  string
	RowsRead       int64
	RowsStaged     int64
	RowsRejected   int64
	RowsUpserted   int64
	DurationStage  time.Duration
	DurationUpsert time.Duration
	DurationTotal  time.Duration
}
