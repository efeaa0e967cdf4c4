package model

import (
	"github.com/google/uuid"
)

// StagingRow is one collector dump line, validated and ready for COPY into
// ingest.stage_facilities.
type StagingRow struct {
	IngestBatchID   uuid.UUID
	SourceRowNumber int64
	ID              string
	Facility        []byte // canonical JSON
	ContentHash     string
}

// StagingColumns returns the COPY column list in the order CopyValues emits.
func StagingColumns() []string {
	return []string{"ingest_batch_id", "source_row_number", "id", "facility", "content_hash"}
}

// CopyValues returns the row's values in StagingColumns order.
func (r *StagingRow) CopyValues() []any {
	return []any{r.IngestBatchID, r.SourceRowNumber, r.ID, r.Facility, r.ContentHash}
}
