// mkfixture writes a synthetic collector dump (newline-delimited facility
// JSON) for local runs and tests, or checks an existing dump or export.
// Usage:
//
//	go run ./cmd/mkfixture --out testdata/facilities.ndjson --count 200
//	go run ./cmd/mkfixture --check testdata/facilities.ndjson
//	go run ./cmd/mkfixture --check out/facilities.parquet
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/gyeh/facilities/internal/ingest"
	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/parquetread"
	"github.com/gyeh/facilities/internal/taxonomy"
)

var prefixes = []struct {
	prefix       string
	facilityType string
}{
	{"vha", "va_health_facility"},
	{"vba", "va_benefits_facility"},
	{"vc", "vet_center"},
	{"nca", "va_cemetery"},
}

var states = []string{"ME", "NY", "CA", "TX", "FL", "WA", "OH", "GA"}

func main() {
	out := flag.String("out", "testdata/facilities.ndjson", "output dump")
	count := flag.Int("count", 200, "facilities to generate")
	seed := flag.Uint64("seed", 1, "random seed")
	rejects := flag.Int("rejects", 0, "malformed rows to mix in")
	check := flag.String("check", "", "check an existing .ndjson dump or .parquet export instead of writing")
	flag.Parse()

	if *check != "" {
		var err error
		if strings.EqualFold(filepath.Ext(*check), ".parquet") {
			err = checkExport(*check)
		} else {
			err = checkDump(*check)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "check: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}
	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for i := 0; i < *count; i++ {
		if err := enc.Encode(synthesize(rng, i)); err != nil {
			fmt.Fprintf(os.Stderr, "write: %v\n", err)
			os.Exit(1)
		}
		if *rejects > 0 && i%(*count / *rejects+1) == 0 {
			fmt.Fprintf(w, `{"id":"bad-%d","attributes":{"name":"malformed id"}}`+"\n", i)
		}
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "flush: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d facilities to %s\n", *count, *out)
}

func synthesize(rng *rand.Rand, i int) model.Facility {
	p := prefixes[i%len(prefixes)]
	id := fmt.Sprintf("%s_%d", p.prefix, 100+i)
	state := states[rng.IntN(len(states))]

	a := model.FacilityAttributes{
		Name:         fmt.Sprintf("Synthetic %s %d", strings.ToUpper(p.prefix), i),
		FacilityType: p.facilityType,
		Latitude:     25 + rng.Float64()*20,
		Longitude:    -120 + rng.Float64()*50,
		Address: &model.Addresses{Physical: &model.Address{
			Address1: fmt.Sprintf("%d Main St", 1+rng.IntN(9000)),
			City:     "Springfield",
			State:    state,
			Zip:      fmt.Sprintf("%05d", rng.IntN(99999)),
		}},
		Phone:        &model.Phone{Main: fmt.Sprintf("555-%03d-%04d", rng.IntN(1000), rng.IntN(10000))},
		ActiveStatus: model.ActiveStatusActive,
		Services:     &model.Services{},
	}
	if rng.IntN(10) == 0 {
		a.ActiveStatus = model.ActiveStatusTemporary
	}
	if rng.IntN(4) == 0 {
		a.OperationalHoursSpecialInstructions = "Closed on federal holidays | Call ahead for walk-ins"
	}

	switch p.prefix {
	case "vha":
		a.Services.Health = pick(rng, taxonomy.Health.All(), 6)
	case "vba":
		a.Services.Benefits = pick(rng, taxonomy.Benefits.All(), 4)
	}
	if rng.IntN(3) == 0 {
		a.Services.Other = pick(rng, taxonomy.Other.All(), 1)
	}
	return model.Facility{ID: id, Type: model.FacilityType, Attributes: a}
}

// pick returns up to n distinct collector-sourced tags from all.
func pick[T taxonomy.Kind](rng *rand.Rand, all []T, n int) []model.Service[T] {
	idx := rng.Perm(len(all))
	n = min(n, len(all))
	out := make([]model.Service[T], 0, n)
	for _, i := range idx[:n] {
		out = append(out, model.NewService(all[i], "", model.SourceATC))
	}
	return model.SortServices(out)
}

func checkDump(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)
	byType := make(map[string]int)
	var total, rejected, detailed int
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		total++
		fac, _, err := ingest.ParseFacility([]byte(line))
		if err != nil {
			rejected++
			if rejected <= 3 {
				fmt.Printf("Rejected row %d: %v\n", total, err)
			}
			continue
		}
		byType[fac.Attributes.FacilityType]++
		detailed += len(fac.Attributes.DetailedServices)
	}
	if err := sc.Err(); err != nil {
		return err
	}

	fmt.Printf("\nTotal: %d, Rejected: %d, Detailed services: %d\n", total, rejected, detailed)
	for _, p := range prefixes {
		if c := byType[p.facilityType]; c > 0 {
			fmt.Printf("  %-22s %d\n", p.facilityType, c)
		}
	}
	return nil
}

func checkExport(path string) error {
	rows, err := parquetread.ReadAll(path)
	if err != nil {
		return err
	}
	byStatus := make(map[string]int)
	var withHealth int
	for _, r := range rows {
		byStatus[r.OperatingStatus]++
		if r.HealthServices != nil {
			withHealth++
		}
	}
	fmt.Printf("Rows: %d, with health services: %d\n", len(rows), withHealth)
	for _, code := range []model.OperatingStatusCode{model.StatusNormal, model.StatusNotice, model.StatusLimited, model.StatusClosed} {
		if c := byStatus[string(code)]; c > 0 {
			fmt.Printf("  %-8s %d\n", code, c)
		}
	}
	return nil
}
