package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gyeh/facilities/internal/codec"
	"github.com/gyeh/facilities/internal/model"
)

func strPtr(s string) *string { return &s }

func testFacility(id, name string) model.Facility {
	return model.Facility{
		ID:   id,
		Type: model.FacilityType,
		Attributes: model.FacilityAttributes{
			Name:         name,
			FacilityType: "va_health_facility",
			ActiveStatus: model.ActiveStatusActive,
		},
	}
}

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.GetFacility(ctx, "vha_missing"); err != nil || ok {
		t.Fatalf("GetFacility(missing) = ok %v, err %v", ok, err)
	}
	if _, ok, err := s.GetOverlay(ctx, "vha_missing"); err != nil || ok {
		t.Fatalf("GetOverlay(missing) = ok %v, err %v", ok, err)
	}

	for _, f := range []model.Facility{
		testFacility("vha_688", "Washington VA Medical Center"),
		testFacility("vha_402", "Togus VA Medical Center"),
	} {
		if err := s.PutFacility(ctx, f); err != nil {
			t.Fatalf("PutFacility(%s): %v", f.ID, err)
		}
	}

	got, ok, err := s.GetFacility(ctx, "vha_688")
	if err != nil || !ok {
		t.Fatalf("GetFacility: ok %v, err %v", ok, err)
	}
	if got.Attributes.Name != "Washington VA Medical Center" {
		t.Errorf("name = %q", got.Attributes.Name)
	}

	updated := testFacility("vha_688", "Washington DC VA Medical Center")
	if err := s.PutFacility(ctx, updated); err != nil {
		t.Fatalf("PutFacility(update): %v", err)
	}
	got, _, _ = s.GetFacility(ctx, "vha_688")
	if got.Attributes.Name != "Washington DC VA Medical Center" {
		t.Errorf("update not applied, name = %q", got.Attributes.Name)
	}

	list, err := s.ListFacilities(ctx)
	if err != nil {
		t.Fatalf("ListFacilities: %v", err)
	}
	if len(list) != 2 || list[0].ID != "vha_402" || list[1].ID != "vha_688" {
		t.Errorf("ListFacilities order = %+v", ids(list))
	}

	rec := codec.Record{
		ID:              "vha_688",
		OperatingStatus: strPtr(`{"code":"NORMAL"}`),
		Services:        strPtr(`[]`),
	}
	if err := s.PutOverlay(ctx, rec); err != nil {
		t.Fatalf("PutOverlay: %v", err)
	}
	gotRec, ok, err := s.GetOverlay(ctx, "vha_688")
	if err != nil || !ok {
		t.Fatalf("GetOverlay: ok %v, err %v", ok, err)
	}
	if gotRec.Core != nil || gotRec.HealthCareSystem != nil {
		t.Errorf("null columns came back non-nil: %+v", gotRec)
	}
	if gotRec.OperatingStatus == nil || *gotRec.OperatingStatus != `{"code":"NORMAL"}` {
		t.Errorf("operating status column = %v", gotRec.OperatingStatus)
	}
	if gotRec.Services == nil || *gotRec.Services != `[]` {
		t.Errorf("services column = %v", gotRec.Services)
	}

	rec.Core = strPtr(`{"facility_url":"https://www.va.gov/washington-dc-health-care"}`)
	if err := s.PutOverlay(ctx, rec); err != nil {
		t.Fatalf("PutOverlay(update): %v", err)
	}
	overlays, err := s.ListOverlays(ctx)
	if err != nil {
		t.Fatalf("ListOverlays: %v", err)
	}
	if len(overlays) != 1 || overlays[0].Core == nil {
		t.Errorf("ListOverlays = %+v", overlays)
	}
}

func ids(fs []model.Facility) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.ID
	}
	return out
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	exerciseStore(t, s)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	f := testFacility("vha_688", "Washington VA Medical Center")
	f.Attributes.Services = &model.Services{LastUpdated: "2020-01-01"}
	if err := s.PutFacility(ctx, f); err != nil {
		t.Fatalf("PutFacility: %v", err)
	}
	f.Attributes.Services.LastUpdated = "mutated"

	got, _, _ := s.GetFacility(ctx, "vha_688")
	if got.Attributes.Services.LastUpdated != "2020-01-01" {
		t.Errorf("store shares state with caller: %q", got.Attributes.Services.LastUpdated)
	}
	got.Attributes.Services.LastUpdated = "mutated again"
	again, _, _ := s.GetFacility(ctx, "vha_688")
	if again.Attributes.Services.LastUpdated != "2020-01-01" {
		t.Errorf("returned value aliases store: %q", again.Attributes.Services.LastUpdated)
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "facilities.db")
	s, err := NewSQLiteStore(context.Background(), path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "facilities.db")

	s, err := NewSQLiteStore(ctx, path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	if err := s.PutFacility(ctx, testFacility("vba_306", "New York Regional Benefit Office")); err != nil {
		t.Fatalf("PutFacility: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = NewSQLiteStore(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, ok, err := s.GetFacility(ctx, "vba_306")
	if err != nil || !ok {
		t.Fatalf("GetFacility after reopen: ok %v, err %v", ok, err)
	}
	if got.Attributes.Name != "New York Regional Benefit Office" {
		t.Errorf("name = %q", got.Attributes.Name)
	}
}
