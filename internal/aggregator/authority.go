package aggregator

import (
	"context"
	"fmt"
	"maps"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/facilities/internal/codec"
	"github.com/gyeh/facilities/internal/taxonomy"
)

// Authority is an upstream source of service display names.
type Authority interface {
	Name() string
	// Reload re-pulls the authority's names. On error the previous names
	// are kept.
	Reload(ctx context.Context) error
	// ServiceNames returns a copy of the current serviceId -> name map.
	ServiceNames() map[string]string
}

// OverlayLister is the slice of the store the CMS authority reads.
type OverlayLister interface {
	ListOverlays(ctx context.Context) ([]codec.Record, error)
}

type nameSet struct {
	mu    sync.RWMutex
	names map[string]string
}

func (n *nameSet) get() map[string]string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return maps.Clone(n.names)
}

func (n *nameSet) set(names map[string]string) {
	n.mu.Lock()
	n.names = names
	n.mu.Unlock()
}

// CMSAuthority names services the way operators named them in persisted
// overlays.
type CMSAuthority struct {
	store OverlayLister
	nameSet
}

var _ Authority = (*CMSAuthority)(nil)

func NewCMSAuthority(store OverlayLister) *CMSAuthority {
	return &CMSAuthority{store: store}
}

func (a *CMSAuthority) Name() string { return "CMS" }

// Reload scans every overlay. Records come back ordered by facility id, so
// when two facilities disagree on a name the later id wins.
func (a *CMSAuthority) Reload(ctx context.Context) error {
	records, err := a.store.ListOverlays(ctx)
	if err != nil {
		return fmt.Errorf("list overlays: %w", err)
	}
	names := make(map[string]string)
	for _, rec := range records {
		services, err := codec.DecodeDetailedServices(rec.Services)
		if err != nil {
			return fmt.Errorf("decode services of %s: %w", rec.ID, err)
		}
		for _, ds := range services {
			if ds.ServiceInfo == nil || !ds.ServiceInfo.Valid() || ds.Name() == "" {
				continue
			}
			names[ds.ServiceID()] = ds.Name()
		}
	}
	a.set(names)
	return nil
}

func (a *CMSAuthority) ServiceNames() map[string]string { return a.get() }

// ATCAuthority reads the access-to-care catalog from a YAML file.
type ATCAuthority struct {
	path string
	nameSet
}

var _ Authority = (*ATCAuthority)(nil)

type atcCatalog struct {
	Services []struct {
		ServiceID string `yaml:"service_id"`
		Name      string `yaml:"name"`
	} `yaml:"services"`
}

// NewATCAuthority returns an authority over the catalog at path. An empty
// path yields an authority that always knows nothing.
func NewATCAuthority(path string) *ATCAuthority {
	return &ATCAuthority{path: path}
}

func (a *ATCAuthority) Name() string { return "ATC" }

func (a *ATCAuthority) Reload(_ context.Context) error {
	if a.path == "" {
		a.set(map[string]string{})
		return nil
	}
	data, err := os.ReadFile(a.path)
	if err != nil {
		return fmt.Errorf("read atc catalog: %w", err)
	}
	var cat atcCatalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return fmt.Errorf("parse atc catalog: %w", err)
	}
	names := make(map[string]string, len(cat.Services))
	for i, s := range cat.Services {
		id, name := strings.TrimSpace(s.ServiceID), strings.TrimSpace(s.Name)
		if id == "" || name == "" {
			return fmt.Errorf("atc catalog row %d: service_id and name are required", i+1)
		}
		if !taxonomy.IsRecognizedServiceID(id) {
			continue
		}
		names[id] = name
	}
	a.set(names)
	return nil
}

func (a *ATCAuthority) ServiceNames() map[string]string { return a.get() }

// StaticAuthority serves a fixed map. Reload is a no-op.
type StaticAuthority struct {
	name  string
	names map[string]string
}

var _ Authority = StaticAuthority{}

func NewStaticAuthority(name string, names map[string]string) StaticAuthority {
	return StaticAuthority{name: name, names: maps.Clone(names)}
}

func (a StaticAuthority) Name() string                    { return a.name }
func (a StaticAuthority) Reload(context.Context) error    { return nil }
func (a StaticAuthority) ServiceNames() map[string]string { return maps.Clone(a.names) }
