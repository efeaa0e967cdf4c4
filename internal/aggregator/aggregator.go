// Package aggregator consolidates service display names from the CMS and ATC
// naming authorities into one id <-> name lookup.
//
// CMS wins whenever both authorities know an id. The mapping is rebuilt on
// explicit reloads only and published as an immutable value, so readers never
// see a half-built map.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/gyeh/facilities/internal/metrics"
	"github.com/gyeh/facilities/internal/normalize"
	"github.com/gyeh/facilities/internal/taxonomy"
)

type mapping struct {
	byID   map[string]string
	byName map[string]string // normalize.NameKey(name) -> id
}

var emptyMapping = &mapping{byID: map[string]string{}, byName: map[string]string{}}

type Aggregator struct {
	cms, atc Authority
	// covidFromCMS pins the Covid-19 vaccine name to the CMS authority.
	covidFromCMS bool

	current atomic.Pointer[mapping]
	log     zerolog.Logger
	metrics *metrics.Metrics
}

// Option configures an Aggregator.
type Option func(*Aggregator)

func WithLogger(log zerolog.Logger) Option {
	return func(a *Aggregator) { a.log = log }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Aggregator) { a.metrics = m }
}

// New returns an aggregator with an empty mapping. Call ReloadAll before use
// to pick up authority names; until then lookups fall back to the taxonomy.
func New(cms, atc Authority, opts ...Option) *Aggregator {
	a := &Aggregator{cms: cms, atc: atc, log: zerolog.Nop()}
	for _, o := range opts {
		o(a)
	}
	a.log = a.log.With().Str("component", "aggregator").Logger()
	a.current.Store(emptyMapping)
	return a
}

// NewV0 returns the v0 flavour, where CMS is the only source of truth for the
// Covid-19 vaccine name.
func NewV0(cms, atc Authority, opts ...Option) *Aggregator {
	a := New(cms, atc, opts...)
	a.covidFromCMS = true
	return a
}

// ReloadAll reloads both authorities and rebuilds the mapping only if both
// succeed. Otherwise the published mapping is left as it was.
func (a *Aggregator) ReloadAll(ctx context.Context) error {
	var errs []error
	for _, auth := range []Authority{a.cms, a.atc} {
		if err := auth.Reload(ctx); err != nil {
			errs = append(errs, fmt.Errorf("reload %s names: %w", auth.Name(), err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		a.metrics.ObserveReload(err, 0)
		a.log.Error().Err(err).Msg("name reload failed, keeping previous mapping")
		return err
	}
	a.ReloadMapping()
	return nil
}

// ReloadMapping rebuilds from whatever the authorities currently hold.
func (a *Aggregator) ReloadMapping() {
	m := a.build(a.cms.ServiceNames(), a.atc.ServiceNames())
	a.current.Store(m)
	a.metrics.ObserveReload(nil, len(m.byID))
	a.log.Info().Int("services", len(m.byID)).Msg("service name mapping rebuilt")
}

func (a *Aggregator) build(cms, atc map[string]string) *mapping {
	m := &mapping{
		byID:   make(map[string]string, len(cms)+len(atc)),
		byName: make(map[string]string, len(cms)+len(atc)),
	}
	for _, id := range slices.Sorted(maps.Keys(cms)) {
		if atcName, ok := atc[id]; ok {
			a.log.Debug().Str("service_id", id).Str("cms_name", cms[id]).Str("atc_name", atcName).
				Msg("service named by both authorities, using CMS")
		}
		m.put(id, cms[id])
	}
	for _, id := range slices.Sorted(maps.Keys(atc)) {
		if _, ok := cms[id]; ok {
			continue
		}
		if a.covidFromCMS && id == taxonomy.Covid19VaccineID {
			continue
		}
		a.log.Warn().Str("service_id", id).Str("atc_name", atc[id]).
			Msg("service named only by ATC, source of truth mismatch")
		m.put(id, atc[id])
	}
	if a.covidFromCMS {
		if _, ok := m.byID[taxonomy.Covid19VaccineID]; !ok {
			m.put(taxonomy.Covid19VaccineID, taxonomy.Covid19VaccineAltName)
		}
	}
	return m
}

func (m *mapping) put(id, name string) {
	m.byID[id] = name
	m.byName[normalize.NameKey(name)] = id
}

// ServiceName returns the aggregated name for id, falling back to the
// taxonomy's canonical name. ok is false when id is wholly unrecognized.
func (a *Aggregator) ServiceName(id string) (string, bool) {
	if name, ok := a.current.Load().byID[id]; ok {
		return name, true
	}
	if entry, ok := taxonomy.Lookup(id); ok {
		return entry.Name, true
	}
	return "", false
}

// ServiceID is a reverse lookup over the aggregated names only.
func (a *Aggregator) ServiceID(name string) (string, bool) {
	id, ok := a.current.Load().byName[normalize.NameKey(name)]
	return id, ok
}

// IsRecognizedServiceName is true for aggregated names and for any name the
// taxonomy recognizes.
func (a *Aggregator) IsRecognizedServiceName(name string) bool {
	if _, ok := a.ServiceID(name); ok {
		return true
	}
	return taxonomy.IsRecognizedServiceName(name)
}

// Mapping returns a copy of the published serviceId -> name map.
func (a *Aggregator) Mapping() map[string]string {
	return maps.Clone(a.current.Load().byID)
}
