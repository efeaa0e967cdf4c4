package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	goparquet "github.com/parquet-go/parquet-go"

	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/normalize"
)

// CSVHeader lists the CSV columns, named as in the Parquet schema.
func CSVHeader() []string {
	return []string{
		"id", "name", "facility_type", "classification", "website",
		"latitude", "longitude", "address", "city", "state", "zip",
		"main_phone", "operational_hours_special_instructions",
		"operating_status", "operating_status_info", "visn", "mobile",
		"health_services", "benefits_services", "other_services",
		"detailed_services",
	}
}

func csvRecord(r model.FacilityRow) []string {
	d := normalize.DerefString
	return []string{
		r.ID, r.Name, r.FacilityType, d(r.Classification), d(r.Website),
		optFloat(r.Latitude), optFloat(r.Longitude), d(r.Address), d(r.City), d(r.State), d(r.Zip),
		d(r.MainPhone), d(r.OperationalHoursSpecialInstructions),
		r.OperatingStatus, d(r.OperatingStatusInfo), d(r.Visn), optBool(r.Mobile),
		d(r.HealthServices), d(r.BenefitsServices), d(r.OtherServices),
		strconv.Itoa(int(r.DetailedServices)),
	}
}

func optFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func optBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

func writeCSV(path string, rows []model.FacilityRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write(csvRecord(r)); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}

func writeParquet(path string, rows []model.FacilityRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parquet: %w", err)
	}
	defer f.Close()

	writer := goparquet.NewGenericWriter[model.FacilityRow](f)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return f.Close()
}
