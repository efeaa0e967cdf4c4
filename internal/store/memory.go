package store

import (
	"context"
	"sort"
	"sync"

	"github.com/gyeh/facilities/internal/codec"
	"github.com/gyeh/facilities/internal/model"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps everything in process. Values are copied on the way in
// and out so callers never share state with the store.
type MemoryStore struct {
	mu         sync.RWMutex
	facilities map[string]model.Facility
	overlays   map[string]codec.Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		facilities: make(map[string]model.Facility),
		overlays:   make(map[string]codec.Record),
	}
}

func (s *MemoryStore) GetFacility(_ context.Context, id string) (model.Facility, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.facilities[id]
	if !ok {
		return model.Facility{}, false, nil
	}
	return f.Clone(), true, nil
}

func (s *MemoryStore) PutFacility(_ context.Context, f model.Facility) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facilities[f.ID] = f.Clone()
	return nil
}

func (s *MemoryStore) ListFacilities(_ context.Context) ([]model.Facility, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Facility, 0, len(s.facilities))
	for _, f := range s.facilities {
		out = append(out, f.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetOverlay(_ context.Context, id string) (codec.Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.overlays[id]
	return r, ok, nil
}

// PutOverlay stores rec. Record columns are immutable strings, so a shallow
// copy is enough.
func (s *MemoryStore) PutOverlay(_ context.Context, rec codec.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlays[rec.ID] = rec
	return nil
}

func (s *MemoryStore) ListOverlays(_ context.Context) ([]codec.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]codec.Record, 0, len(s.overlays))
	for _, r := range s.overlays {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
