package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/gyeh/facilities/internal/aggregator"
	"github.com/gyeh/facilities/internal/apperr"
	"github.com/gyeh/facilities/internal/codec"
	"github.com/gyeh/facilities/internal/exitcode"
	"github.com/gyeh/facilities/internal/ingest"
	"github.com/gyeh/facilities/internal/logging"
	"github.com/gyeh/facilities/internal/metrics"
	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/overlay"
	"github.com/gyeh/facilities/internal/store"
)

const (
	versionV0 = "v0"
	versionV1 = "v1"
)

// app is the per-command runtime: logger, store and metrics.
type app struct {
	log     zerolog.Logger
	store   store.Store
	metrics *metrics.Metrics
}

// openApp validates cfg and opens the configured store, exiting on failure.
func openApp(ctx context.Context) *app {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	m, err := metrics.New()
	if err != nil {
		log.Error().Err(err).Msg("metrics setup failed")
		os.Exit(exitcode.UsageError)
	}

	st, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.StoreDriver).Msg("store open failed")
		os.Exit(exitcode.DBConnError)
	}

	return &app{log: log, store: st, metrics: m}
}

func (a *app) close() {
	if err := a.metrics.WriteTextfile(cfg.MetricsFile); err != nil {
		a.log.Warn().Err(err).Msg("metrics textfile not written")
	}
	if err := a.store.Close(); err != nil {
		a.log.Warn().Err(err).Msg("store close failed")
	}
}

// fail logs err, releases the store and exits with the code err maps to.
func (a *app) fail(err error, msg string) {
	a.log.Error().Err(err).Msg(msg)
	a.close()
	os.Exit(exitCodeFor(err))
}

func exitCodeFor(err error) int {
	var pe *ingest.PipelineError
	switch {
	case apperr.IsNotFound(err):
		return exitcode.NotFound
	case apperr.IsInvalidParameter(err):
		return exitcode.ValidationError
	case errors.As(err, &pe):
		switch pe.Phase {
		case "preflight":
			return exitcode.ValidationError
		case "stage", "load":
			return exitcode.CopyError
		default:
			return exitcode.TransformError
		}
	}
	return exitcode.TransformError
}

// names builds and loads the service name aggregator. A failed reload is
// not fatal: lookups fall back to the taxonomy's canonical names.
func (a *app) names(ctx context.Context, v0 bool) *aggregator.Aggregator {
	cms := aggregator.NewCMSAuthority(a.store)
	atc := aggregator.NewATCAuthority(cfg.ATCCatalog)
	opts := []aggregator.Option{aggregator.WithLogger(a.log), aggregator.WithMetrics(a.metrics)}

	build := aggregator.New
	if v0 {
		build = aggregator.NewV0
	}
	agg := build(cms, atc, opts...)
	if err := agg.ReloadAll(ctx); err != nil {
		a.log.Warn().Err(err).Msg("service name reload incomplete")
	}
	return agg
}

// namesFor picks the aggregator flavour that matches an API version.
func (a *app) namesFor(ctx context.Context, version string) *aggregator.Aggregator {
	return a.names(ctx, version == versionV0)
}

func (a *app) overlays(st overlay.Store, names overlay.NameResolver) *overlay.Service {
	return overlay.NewService(st,
		overlay.WithNames(names),
		overlay.WithLogger(a.log),
		overlay.WithMetrics(a.metrics),
	)
}

// dryRunStore reads through to the real store and discards writes.
type dryRunStore struct {
	store.Store
}

func (dryRunStore) PutFacility(context.Context, model.Facility) error { return nil }
func (dryRunStore) PutOverlay(context.Context, codec.Record) error    { return nil }

func checkVersion(v string) error {
	if v != versionV0 && v != versionV1 {
		return apperr.InvalidParameter("api version %q (want v0 or v1)", v)
	}
	return nil
}

// readInput reads path, or stdin for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
