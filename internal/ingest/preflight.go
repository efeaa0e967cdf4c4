package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/normalize"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	// FilePath is the original path passed to Preflight, stored as-is.
	FilePath string
	// FileSHA256 is the hex-encoded SHA-256 digest of the dump.
	FileSHA256 string
	// FileSize is the file size in bytes from os.Stat.
	FileSize int64
	// IngestBatchID tags staged rows for this run so upsert and cleanup only
	// touch them.
	IngestBatchID uuid.UUID
	// NumRows is the count of non-blank lines in the dump.
	NumRows int64
	// FirstRow is the first facility in the dump. A dump whose first line
	// does not parse is refused outright.
	FirstRow *model.Facility
}

// Preflight hashes the dump, counts its rows and checks that the first row
// is a valid facility.
func Preflight(ctx context.Context, log zerolog.Logger, filePath string) (*PreflightResult, error) {
	start := time.Now()

	sha, err := normalize.FileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight stat: %w", err)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight open: %w", err)
	}
	defer f.Close()

	var (
		numRows  int64
		firstRow *model.Facility
	)
	sc := newDumpScanner(f)
	for {
		row, line, ok := sc.Next()
		if !ok {
			break
		}
		if row == 1 {
			fac, _, err := ParseFacility(line)
			if err != nil {
				return nil, fmt.Errorf("preflight first row: %w", err)
			}
			firstRow = &fac
		}
		if row%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		numRows = row
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("preflight scan: %w", err)
	}
	if numRows == 0 {
		return nil, fmt.Errorf("preflight: %s contains no facilities", filePath)
	}

	log.Info().
		Str("file", filepath.Base(filePath)).
		Str("sha256", sha).
		Int64("rows", numRows).
		Str("first_facility", firstRow.ID).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	return &PreflightResult{
		FilePath:      filePath,
		FileSHA256:    sha,
		FileSize:      stat.Size(),
		IngestBatchID: uuid.New(),
		NumRows:       numRows,
		FirstRow:      firstRow,
	}, nil
}
