// Package metrics holds the Prometheus collectors for overlay merges, name
// reloads, collector loads and exports. A nil *Metrics is valid and records
// nothing.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "facilities"

type Metrics struct {
	registry *prometheus.Registry

	overlayMerges   *prometheus.CounterVec   // by outcome: accepted, facility_unknown, error
	overlayServices *prometheus.CounterVec   // by change: kept, added, dropped
	mergeDuration   prometheus.Histogram
	nameReloads     *prometheus.CounterVec   // by result: ok, error
	aggregatedNames prometheus.Gauge
	importedRows    *prometheus.CounterVec   // by result: staged, upserted, rejected
	exported        *prometheus.CounterVec   // by format: csv, parquet
	exportDuration  *prometheus.HistogramVec // by format
}

// New creates the collectors on a private registry.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		overlayMerges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "overlay",
			Name:      "merges_total",
			Help:      "Overlay submissions processed, by outcome",
		}, []string{"outcome"}),
		overlayServices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "overlay",
			Name:      "detailed_services_total",
			Help:      "Detailed services handled by overlay merges, by change",
		}, []string{"change"}),
		mergeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "overlay",
			Name:      "merge_duration_seconds",
			Help:      "Read-merge-write duration of one overlay submission",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		nameReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "names",
			Name:      "reloads_total",
			Help:      "Service name aggregator reloads, by result",
		}, []string{"result"}),
		aggregatedNames: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "names",
			Name:      "aggregated",
			Help:      "Service ids in the published name mapping",
		}),
		importedRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "import",
			Name:      "rows_total",
			Help:      "Collector dump rows, by result",
		}, []string{"result"}),
		exported: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "export",
			Name:      "facilities_total",
			Help:      "Facilities written by bulk export, by format",
		}, []string{"format"}),
		exportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "export",
			Name:      "duration_seconds",
			Help:      "Bulk export duration, by format",
			Buckets:   prometheus.DefBuckets,
		}, []string{"format"}),
	}

	for _, c := range []prometheus.Collector{
		m.overlayMerges, m.overlayServices, m.mergeDuration,
		m.nameReloads, m.aggregatedNames, m.importedRows,
		m.exported, m.exportDuration,
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return m, nil
}

// Registry exposes the private registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveMerge(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.overlayMerges.WithLabelValues(outcome).Inc()
	m.mergeDuration.Observe(d.Seconds())
}

func (m *Metrics) AddOverlayServices(kept, added, dropped int) {
	if m == nil {
		return
	}
	m.overlayServices.WithLabelValues("kept").Add(float64(kept))
	m.overlayServices.WithLabelValues("added").Add(float64(added))
	m.overlayServices.WithLabelValues("dropped").Add(float64(dropped))
}

func (m *Metrics) ObserveReload(err error, names int) {
	if m == nil {
		return
	}
	if err != nil {
		m.nameReloads.WithLabelValues("error").Inc()
		return
	}
	m.nameReloads.WithLabelValues("ok").Inc()
	m.aggregatedNames.Set(float64(names))
}

func (m *Metrics) AddImportRows(result string, n int64) {
	if m == nil {
		return
	}
	m.importedRows.WithLabelValues(result).Add(float64(n))
}

func (m *Metrics) ObserveExport(format string, n int, d time.Duration) {
	if m == nil {
		return
	}
	m.exported.WithLabelValues(format).Add(float64(n))
	m.exportDuration.WithLabelValues(format).Observe(d.Seconds())
}

// WriteTextfile writes the registry in the node-exporter textfile format.
// An empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
