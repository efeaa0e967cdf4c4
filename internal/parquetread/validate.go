package parquetread

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// ServiceColumns are the per-family service list columns of an export.
func ServiceColumns() []string {
	return []string{"health_services", "benefits_services", "other_services"}
}

// ValidateSchema checks that the Parquet schema contains all required columns
// and at least one service list column.
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = true
	}

	required := []string{"id", "name", "facility_type", "operating_status"}
	for _, col := range required {
		if !columns[col] {
			return fmt.Errorf("missing required column: %s", col)
		}
	}

	serviceCols := ServiceColumns()
	hasServices := false
	for _, col := range serviceCols {
		if columns[col] {
			hasServices = true
			break
		}
	}
	if !hasServices {
		return fmt.Errorf("no service columns found; need at least one of: %s",
			strings.Join(serviceCols, ", "))
	}

	return nil
}
