// Package export writes every stored facility, in its v1 shape, to flat CSV
// and Parquet files and optionally uploads them to S3.
package export

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/gyeh/facilities/internal/metrics"
	"github.com/gyeh/facilities/internal/model"
	v1 "github.com/gyeh/facilities/internal/transform/v1"
)

type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

var contentTypes = map[Format]string{
	FormatCSV:     "text/csv",
	FormatParquet: "application/vnd.apache.parquet",
}

// ParseFormats parses a comma-separated format list, e.g. "csv,parquet".
// Duplicates collapse; an empty list is an error.
func ParseFormats(s string) ([]Format, error) {
	var out []Format
	for _, part := range strings.Split(s, ",") {
		f := Format(strings.ToLower(strings.TrimSpace(part)))
		if f == "" {
			continue
		}
		if _, ok := contentTypes[f]; !ok {
			return nil, fmt.Errorf("unknown export format %q", part)
		}
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no export format given")
	}
	return out, nil
}

// Lister is the slice of the store an export reads.
type Lister interface {
	ListFacilities(ctx context.Context) ([]model.Facility, error)
}

// Uploader receives finished export files.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
}

type Options struct {
	Dir     string
	Formats []Format
	// Workers bounds concurrent facility conversions. Values below 1 mean 1.
	Workers int
	// Uploader is optional. Keys are KeyPrefix joined with the file name.
	Uploader  Uploader
	KeyPrefix string
}

type File struct {
	Format Format
	Path   string
	Key    string // empty when not uploaded
}

type Result struct {
	Facilities int
	Files      []File
	Duration   time.Duration
}

type Exporter struct {
	store   Lister
	v1      *v1.Transformer
	log     zerolog.Logger
	metrics *metrics.Metrics
}

func New(store Lister, tr *v1.Transformer, log zerolog.Logger, m *metrics.Metrics) *Exporter {
	return &Exporter{
		store:   store,
		v1:      tr,
		log:     log.With().Str("component", "export").Logger(),
		metrics: m,
	}
}

// Rows converts every stored facility to an export row. Conversion fans out
// per facility; the result is ordered by facility id.
func (e *Exporter) Rows(ctx context.Context, workers int) ([]model.FacilityRow, error) {
	facilities, err := e.store.ListFacilities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}

	rows := make([]model.FacilityRow, len(facilities))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, f := range facilities {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = Flatten(e.v1.ToV1(f))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(rows, func(a, b model.FacilityRow) int { return cmp.Compare(a.ID, b.ID) })
	return rows, nil
}

// Run writes one file per requested format into opts.Dir and uploads each
// when an Uploader is set.
func (e *Exporter) Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	rows, err := e.Rows(ctx, opts.Workers)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	res := &Result{Facilities: len(rows)}
	for _, format := range opts.Formats {
		formatStart := time.Now()
		file := File{Format: format, Path: filepath.Join(opts.Dir, "facilities."+string(format))}

		switch format {
		case FormatCSV:
			err = writeCSV(file.Path, rows)
		case FormatParquet:
			err = writeParquet(file.Path, rows)
		default:
			err = fmt.Errorf("unknown export format %q", format)
		}
		if err != nil {
			return nil, err
		}

		if opts.Uploader != nil {
			file.Key = path.Join(opts.KeyPrefix, filepath.Base(file.Path))
			if err := upload(ctx, opts.Uploader, file); err != nil {
				return nil, err
			}
		}

		dur := time.Since(formatStart)
		e.metrics.ObserveExport(string(format), len(rows), dur)
		e.log.Info().
			Str("format", string(format)).
			Str("path", file.Path).
			Str("key", file.Key).
			Int("facilities", len(rows)).
			Dur("duration", dur).
			Msg("export written")
		res.Files = append(res.Files, file)
	}

	res.Duration = time.Since(start)
	return res, nil
}

func upload(ctx context.Context, u Uploader, file File) error {
	f, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("open %s for upload: %w", file.Path, err)
	}
	defer f.Close()
	return u.Upload(ctx, file.Key, contentTypes[file.Format], f)
}
