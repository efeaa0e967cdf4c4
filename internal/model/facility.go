package model

// FacilityType is the JSON:API resource type of every facility.
const FacilityType = "va_facilities"

// ActiveStatus is the collector's open/closed flag.
type ActiveStatus string

const (
	ActiveStatusActive    ActiveStatus = "A"
	ActiveStatusTemporary ActiveStatus = "T"
)

// Facility is the canonical, version-agnostic facility.
type Facility struct {
	ID         string             `json:"id"`
	Type       string             `json:"type"`
	Attributes FacilityAttributes `json:"attributes"`
}

type FacilityAttributes struct {
	Name                                string            `json:"name"`
	FacilityType                        string            `json:"facilityType,omitempty"`
	Classification                      string            `json:"classification,omitempty"`
	Website                             string            `json:"website,omitempty"`
	Latitude                            float64           `json:"lat,omitempty"`
	Longitude                           float64           `json:"long,omitempty"`
	TimeZone                            string            `json:"timeZone,omitempty"`
	Address                             *Addresses        `json:"address,omitempty"`
	Phone                               *Phone            `json:"phone,omitempty"`
	Hours                               *Hours            `json:"hours,omitempty"`
	OperationalHoursSpecialInstructions string            `json:"operationalHoursSpecialInstructions,omitempty"`
	Services                            *Services         `json:"services,omitempty"`
	DetailedServices                    []DetailedService `json:"detailedServices,omitempty"`
	OperatingStatus                     *OperatingStatus  `json:"operatingStatus,omitempty"`
	ActiveStatus                        ActiveStatus      `json:"activeStatus,omitempty"`
	Visn                                string            `json:"visn,omitempty"`
	Mobile                              *bool             `json:"mobile,omitempty"`
	ParentID                            string            `json:"parentId,omitempty"`
}

type Addresses struct {
	Mailing  *Address `json:"mailing,omitempty"`
	Physical *Address `json:"physical,omitempty"`
}

type Address struct {
	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	Address3 string `json:"address3,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Zip      string `json:"zip,omitempty"`
}

type Phone struct {
	Main                  string `json:"main,omitempty"`
	Fax                   string `json:"fax,omitempty"`
	Pharmacy              string `json:"pharmacy,omitempty"`
	AfterHours            string `json:"afterHours,omitempty"`
	PatientAdvocate       string `json:"patientAdvocate,omitempty"`
	MentalHealthClinic    string `json:"mentalHealthClinic,omitempty"`
	EnrollmentCoordinator string `json:"enrollmentCoordinator,omitempty"`
	HealthConnect         string `json:"healthConnect,omitempty"`
}

type Hours struct {
	Monday    string `json:"monday,omitempty"`
	Tuesday   string `json:"tuesday,omitempty"`
	Wednesday string `json:"wednesday,omitempty"`
	Thursday  string `json:"thursday,omitempty"`
	Friday    string `json:"friday,omitempty"`
	Saturday  string `json:"saturday,omitempty"`
	Sunday    string `json:"sunday,omitempty"`
}
