package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gyeh/facilities/internal/apperr"
	"github.com/gyeh/facilities/internal/model"
)

const sampleDump = `{"id":"vha_402","type":"va_facilities","attributes":{"name":"Togus VA Medical Center","facilityType":"va_health_facility"}}

{"id":"bogus_1","attributes":{"name":"Nowhere"}}
{"id":"vba_306","attributes":{"name":"New York Regional Office","detailedServices":[{"serviceInfo":{"serviceId":"homelessAssistance","name":"HomelessAssistance","serviceType":"benefits"},"active":true}]}}
not json
{"id":"nca_808","attributes":{"name":"Calverton National Cemetery"}}
`

func writeDump(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "facilities.ndjson")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write dump: %v", err)
	}
	return path
}

type mapWriter map[string]model.Facility

func (m mapWriter) PutFacility(_ context.Context, f model.Facility) error {
	m[f.ID] = f
	return nil
}

func TestDumpScannerSkipsBlankLines(t *testing.T) {
	sc := newDumpScanner(strings.NewReader("a\n\n  \nb\n"))
	var got []string
	var rows []int64
	for {
		row, line, ok := sc.Next()
		if !ok {
			break
		}
		got = append(got, string(line))
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("lines: got %q", got)
	}
	if rows[0] != 1 || rows[1] != 2 {
		t.Errorf("row numbers: got %v, want [1 2]", rows)
	}
}

func TestParseFacility(t *testing.T) {
	f, doc, err := ParseFacility([]byte(`{"id":"vc_0102V","attributes":{"name":"Vet Center"}}`))
	if err != nil {
		t.Fatalf("ParseFacility: %v", err)
	}
	if f.Type != model.FacilityType {
		t.Errorf("Type: got %q, want %q", f.Type, model.FacilityType)
	}
	if !strings.Contains(string(doc), `"type":"va_facilities"`) {
		t.Errorf("document not re-encoded with type: %s", doc)
	}

	if _, _, err := ParseFacility([]byte(`{"id":"402","attributes":{}}`)); !apperr.IsInvalidParameter(err) {
		t.Errorf("malformed id: got %v, want InvalidParameter", err)
	}
	if _, _, err := ParseFacility([]byte(`{`)); err == nil {
		t.Error("truncated json: expected error")
	}
}

func TestParseFacilityRejectsUnknownOperatingStatus(t *testing.T) {
	line := `{"id":"vha_402","attributes":{"name":"x","operatingStatus":{"code":"closed"}}}`
	if _, _, err := ParseFacility([]byte(line)); !errors.Is(err, model.ErrUnknownOperatingStatus) {
		t.Fatalf("lowercase status code: got %v, want ErrUnknownOperatingStatus", err)
	}
	line = `{"id":"vha_402","attributes":{"name":"x","operatingStatus":{"code":"CLOSED"}}}`
	if _, _, err := ParseFacility([]byte(line)); err != nil {
		t.Fatalf("CLOSED: %v", err)
	}
}

func TestParseFacilityRejectsUnknownServiceType(t *testing.T) {
	line := `{"id":"vha_402","attributes":{"name":"x","detailedServices":[{"serviceInfo":{"serviceId":"audiology","serviceType":"dental"}}]}}`
	if _, _, err := ParseFacility([]byte(line)); err == nil {
		t.Fatal("expected unknown serviceType to fail the row")
	}
}

func TestParseFacilityCanonicalizesLastUpdated(t *testing.T) {
	f, _, err := ParseFacility([]byte(`{"id":"vha_402","attributes":{"services":{"lastUpdated":"03/14/2024"}}}`))
	if err != nil {
		t.Fatalf("ParseFacility: %v", err)
	}
	if got := f.Attributes.Services.LastUpdated; got != "2024-03-14" {
		t.Errorf("lastUpdated: got %q, want 2024-03-14", got)
	}

	f, _, err = ParseFacility([]byte(`{"id":"vha_402","attributes":{"services":{"lastUpdated":"last tuesday"}}}`))
	if err != nil {
		t.Fatalf("ParseFacility: %v", err)
	}
	if got := f.Attributes.Services.LastUpdated; got != "" {
		t.Errorf("unparseable lastUpdated: got %q, want empty", got)
	}
}

func TestPreflight(t *testing.T) {
	path := writeDump(t, sampleDump)
	pf, err := Preflight(context.Background(), zerolog.Nop(), path)
	if err != nil {
		t.Fatalf("Preflight: %v", err)
	}
	if pf.NumRows != 5 {
		t.Errorf("NumRows: got %d, want 5", pf.NumRows)
	}
	if pf.FirstRow == nil || pf.FirstRow.ID != "vha_402" {
		t.Errorf("FirstRow: got %+v", pf.FirstRow)
	}
	if len(pf.FileSHA256) != 64 {
		t.Errorf("FileSHA256: got %q", pf.FileSHA256)
	}
}

func TestPreflightRefusesBadFirstRow(t *testing.T) {
	path := writeDump(t, "not json\n"+sampleDump)
	if _, err := Preflight(context.Background(), zerolog.Nop(), path); err == nil {
		t.Fatal("expected preflight failure")
	}
}

func TestPreflightRefusesEmptyDump(t *testing.T) {
	path := writeDump(t, "\n\n")
	if _, err := Preflight(context.Background(), zerolog.Nop(), path); err == nil {
		t.Fatal("expected preflight failure")
	}
}

func TestLoad(t *testing.T) {
	path := writeDump(t, sampleDump)
	w := mapWriter{}

	summary, err := Load(context.Background(), w, zerolog.Nop(), Options{FilePath: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if summary.RowsRead != 5 {
		t.Errorf("RowsRead: got %d, want 5", summary.RowsRead)
	}
	if summary.RowsRejected != 2 {
		t.Errorf("RowsRejected: got %d, want 2", summary.RowsRejected)
	}
	if summary.RowsUpserted != 3 {
		t.Errorf("RowsUpserted: got %d, want 3", summary.RowsUpserted)
	}
	for _, id := range []string{"vha_402", "vba_306", "nca_808"} {
		if _, ok := w[id]; !ok {
			t.Errorf("facility %s not loaded", id)
		}
	}
	ds := w["vba_306"].Attributes.DetailedServices
	if len(ds) != 1 || ds[0].ServiceID() != "homelessAssistance" {
		t.Errorf("detailed services: got %+v", ds)
	}
}

func TestLoadWrapsPhase(t *testing.T) {
	_, err := Load(context.Background(), mapWriter{}, zerolog.Nop(), Options{FilePath: filepath.Join(t.TempDir(), "missing")})
	pe, ok := err.(*PipelineError)
	if !ok {
		t.Fatalf("expected *PipelineError, got %T: %v", err, err)
	}
	if pe.Phase != "preflight" {
		t.Errorf("Phase: got %q, want preflight", pe.Phase)
	}
}
