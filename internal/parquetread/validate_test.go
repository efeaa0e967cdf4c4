package parquetread

import (
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/facilities/internal/model"
)

func TestValidateSchemaAcceptsExportRow(t *testing.T) {
	if err := ValidateSchema(parquet.SchemaOf(model.FacilityRow{})); err != nil {
		t.Fatalf("ValidateSchema: %v", err)
	}
}

func TestValidateSchemaMissingColumns(t *testing.T) {
	type noName struct {
		ID              string `parquet:"id"`
		FacilityType    string `parquet:"facility_type"`
		OperatingStatus string `parquet:"operating_status"`
		HealthServices  string `parquet:"health_services"`
	}
	err := ValidateSchema(parquet.SchemaOf(noName{}))
	if err == nil || !strings.Contains(err.Error(), "name") {
		t.Fatalf("got %v, want missing name", err)
	}

	type noServices struct {
		ID              string `parquet:"id"`
		Name            string `parquet:"name"`
		FacilityType    string `parquet:"facility_type"`
		OperatingStatus string `parquet:"operating_status"`
	}
	err = ValidateSchema(parquet.SchemaOf(noServices{}))
	if err == nil || !strings.Contains(err.Error(), "service columns") {
		t.Fatalf("got %v, want missing service columns", err)
	}
}
