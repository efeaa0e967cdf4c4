// Package store is the persistence collaborator: a key-value view of
// facilities and their overlays keyed by facility id.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gyeh/facilities/internal/codec"
	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/normalize"
)

// Store persists facilities and overlay records. Writes are last-write-wins;
// there is no version check between a read and the following write.
type Store interface {
	GetFacility(ctx context.Context, id string) (model.Facility, bool, error)
	PutFacility(ctx context.Context, f model.Facility) error
	ListFacilities(ctx context.Context) ([]model.Facility, error)

	GetOverlay(ctx context.Context, id string) (codec.Record, bool, error)
	PutOverlay(ctx context.Context, rec codec.Record) error
	ListOverlays(ctx context.Context) ([]codec.Record, error)

	Close() error
}

// encodeFacility returns the JSON document and its content hash.
func encodeFacility(f model.Facility) ([]byte, string, error) {
	raw, err := json.Marshal(f)
	if err != nil {
		return nil, "", fmt.Errorf("encode facility %s: %w", f.ID, err)
	}
	return raw, normalize.ContentHash(raw), nil
}

func decodeFacility(raw []byte) (model.Facility, error) {
	var f model.Facility
	if err := json.Unmarshal(raw, &f); err != nil {
		return model.Facility{}, fmt.Errorf("decode facility: %w", err)
	}
	return f, nil
}
