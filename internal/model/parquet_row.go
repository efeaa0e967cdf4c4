package model

// FacilityRow is one facility flattened for bulk export. Column names match
// between the CSV header and the Parquet schema.
type FacilityRow struct {
	ID                                  string   `parquet:"id"`
	Name                                string   `parquet:"name"`
	FacilityType                        string   `parquet:"facility_type"`
	Classification                      *string  `parquet:"classification,optional"`
	Website                             *string  `parquet:"website,optional"`
	Latitude                            *float64 `parquet:"latitude,optional"`
	Longitude                           *float64 `parquet:"longitude,optional"`
	Address                             *string  `parquet:"address,optional"`
	City                                *string  `parquet:"city,optional"`
	State                               *string  `parquet:"state,optional"`
	Zip                                 *string  `parquet:"zip,optional"`
	MainPhone                           *string  `parquet:"main_phone,optional"`
	OperationalHoursSpecialInstructions *string  `parquet:"operational_hours_special_instructions,optional"`
	OperatingStatus                     string   `parquet:"operating_status"`
	OperatingStatusInfo                 *string  `parquet:"operating_status_info,optional"`
	Visn                                *string  `parquet:"visn,optional"`
	Mobile                              *bool    `parquet:"mobile,optional"`
	HealthServices                      *string  `parquet:"health_services,optional"`
	BenefitsServices                    *string  `parquet:"benefits_services,optional"`
	OtherServices                       *string  `parquet:"other_services,optional"`
	DetailedServices                    int32    `parquet:"detailed_services"`
}
