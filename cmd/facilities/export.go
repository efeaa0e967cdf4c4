package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/facilities/internal/exitcode"
	"github.com/gyeh/facilities/internal/export"
	v1 "github.com/gyeh/facilities/internal/transform/v1"
)

var (
	exportFormats string
	exportPrefix  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every facility, in the v1 shape, to CSV and/or Parquet",
	Run:   runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFormats, "format", "csv,parquet", "Comma-separated formats: csv, parquet")
	f.StringVar(&cfg.ExportDir, "dir", "", "Output directory (default .)")
	f.IntVar(&cfg.ExportWorkers, "workers", 0, "Concurrent facility conversions (default 4)")
	f.StringVar(&cfg.S3Bucket, "s3-bucket", "", "Upload finished files to this bucket")
	f.StringVar(&cfg.S3Region, "s3-region", "", "S3 region")
	f.StringVar(&cfg.S3Endpoint, "s3-endpoint", "", "S3-compatible endpoint, e.g. MinIO")
	f.StringVar(&exportPrefix, "s3-prefix", "", "Object key prefix")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	a := openApp(ctx)
	defer a.close()

	formats, err := export.ParseFormats(exportFormats)
	if err != nil {
		a.fail(err, "bad export format")
	}

	opts := export.Options{
		Dir:       cfg.ExportDir,
		Formats:   formats,
		Workers:   cfg.ExportWorkers,
		KeyPrefix: exportPrefix,
	}
	if cfg.S3Bucket != "" {
		up, err := export.NewS3Uploader(ctx, export.S3Config{
			Bucket:   cfg.S3Bucket,
			Region:   cfg.S3Region,
			Endpoint: cfg.S3Endpoint,
		})
		if err != nil {
			a.fail(err, "s3 setup failed")
		}
		opts.Uploader = up
	}

	tr := v1.New(cfg.LinkerURL, a.names(ctx, false))
	res, err := export.New(a.store, tr, a.log, a.metrics).Run(ctx, opts)
	if err != nil {
		a.log.Error().Err(err).Msg("export failed")
		a.close()
		os.Exit(exitcode.ExportError)
	}

	for _, f := range res.Files {
		if f.Key != "" {
			fmt.Printf("%s\t%s\ts3://%s/%s\n", f.Format, f.Path, cfg.S3Bucket, f.Key)
			continue
		}
		fmt.Printf("%s\t%s\n", f.Format, f.Path)
	}
	fmt.Printf("Export complete: %d facilities (%.1fs)\n", res.Facilities, res.Duration.Seconds())
}
