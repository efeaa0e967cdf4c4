package ingest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/normalize"
)

// maxLineBytes bounds a single dump line. Facilities with many detailed
// services run to a few hundred KB.
const maxLineBytes = 16 << 20

// dumpScanner walks a newline-delimited facility dump, skipping blank lines.
// Row numbers count non-blank lines from 1.
type dumpScanner struct {
	sc  *bufio.Scanner
	row int64
}

func newDumpScanner(r io.Reader) *dumpScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &dumpScanner{sc: sc}
}

// Next returns the next non-blank line. The slice is only valid until the
// following call.
func (d *dumpScanner) Next() (int64, []byte, bool) {
	for d.sc.Scan() {
		line := bytes.TrimSpace(d.sc.Bytes())
		if len(line) == 0 {
			continue
		}
		d.row++
		return d.row, line, true
	}
	return d.row, nil, false
}

func (d *dumpScanner) Err() error {
	return d.sc.Err()
}

// ParseFacility decodes one dump line into a canonical facility and returns
// it with its re-encoded JSON document. The facility id and any operating
// status code must be well formed.
// Detailed services go through the same ServiceInfo normalization as overlay
// submissions, and services.lastUpdated is rewritten as YYYY-MM-DD (dropped
// when unparseable).
func ParseFacility(line []byte) (model.Facility, []byte, error) {
	var f model.Facility
	if err := json.Unmarshal(line, &f); err != nil {
		return model.Facility{}, nil, fmt.Errorf("decode facility: %w", err)
	}
	if err := model.ValidateFacilityID(f.ID); err != nil {
		return model.Facility{}, nil, err
	}
	if f.Type == "" {
		f.Type = model.FacilityType
	}
	if st := f.Attributes.OperatingStatus; st != nil {
		if _, err := model.ParseOperatingStatusCode(string(st.Code)); err != nil {
			return model.Facility{}, nil, fmt.Errorf("facility %s: %w", f.ID, err)
		}
	}
	if s := f.Attributes.Services; s != nil {
		s.LastUpdated = normalize.CanonicalDate(s.LastUpdated)
	}
	doc, err := json.Marshal(f)
	if err != nil {
		return model.Facility{}, nil, fmt.Errorf("encode facility %s: %w", f.ID, err)
	}
	return f, doc, nil
}
