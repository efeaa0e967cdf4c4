package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/facilities/internal/exitcode"
	"github.com/gyeh/facilities/internal/ingest"
	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/store"
)

var (
	importFile        string
	importKeepStaging bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load a collector facility dump (newline-delimited JSON) into the store",
	Run:   runImport,
}

func init() {
	f := importCmd.Flags()
	f.StringVar(&importFile, "file", "", "Path to the facility dump (required)")
	f.BoolVar(&importKeepStaging, "keep-staging", false, "Keep Postgres staging rows after upsert")
	f.BoolVar(&cfg.DryRun, "dry-run", false, "Validate every row without writing to the store")
	_ = importCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	a := openApp(ctx)
	defer a.close()

	opts := ingest.Options{FilePath: importFile, KeepStaging: importKeepStaging, Metrics: a.metrics}

	var (
		summary *model.ImportSummary
		err     error
	)
	pg, isPostgres := a.store.(*store.PostgresStore)
	switch {
	case cfg.DryRun:
		summary, err = ingest.Load(ctx, store.NewMemoryStore(), a.log, opts)
	case isPostgres:
		summary, err = ingest.Run(ctx, pg.Pool(), a.log, opts)
	default:
		summary, err = ingest.Load(ctx, a.store, a.log, opts)
	}
	if err != nil {
		a.fail(err, "import failed")
	}

	verb := "upserted"
	if cfg.DryRun {
		verb = "valid"
	}
	fmt.Printf("Import complete: %d rows read, %d %s, %d rejected (%.1fs)\n",
		summary.RowsRead, summary.RowsUpserted, verb, summary.RowsRejected, summary.DurationTotal.Seconds())

	if summary.RowsRejected > 0 {
		a.close()
		os.Exit(exitcode.PartialSuccess)
	}
}
