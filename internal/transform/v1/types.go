// Package v1 is the current facilities API shape: camelCase attributes,
// services as linked objects, and special instructions as a list.
package v1

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
	OperationalHoursSpecialInstructions []string          `json:"operationalHoursSpecialInstructions,omitempty"`
	Services                            *Services         `json:"services,omitempty"`
	DetailedServices                    []DetailedService `json:"detailedServices,omitempty"`
	OperatingStatus                     *OperatingStatus  `json:"operatingStatus,omitempty"`
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

type Services struct {
	Health      []Service `json:"health,omitempty"`
	Benefits    []Service `json:"benefits,omitempty"`
	Other       []Service `json:"other,omitempty"`
	LastUpdated string    `json:"lastUpdated,omitempty"`
}

// Service is one facility-level service with its detail link.
type Service struct {
	ServiceType string `json:"serviceType"`
	Name        string `json:"name"`
	ServiceID   string `json:"serviceId"`
	Link        string `json:"link,omitempty"`
}

type OperatingStatus struct {
	Code                 string               `json:"code"`
	AdditionalInfo       string               `json:"additionalInfo,omitempty"`
	SupplementalStatuses []SupplementalStatus `json:"supplementalStatus,omitempty"`
}

type SupplementalStatus struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

type HealthCareSystem struct {
	Name                 string `json:"name,omitempty"`
	URL                  string `json:"url,omitempty"`
	CovidURL             string `json:"covid_url,omitempty"`
	VAHealthConnectPhone string `json:"va_health_connect_phone,omitempty"`
}

type ServiceInfo struct {
	ServiceID   string `json:"serviceId,omitempty"`
	Name        string `json:"name,omitempty"`
	ServiceType string `json:"serviceType,omitempty"`
}

type DetailedService struct {
	ServiceInfo               *ServiceInfo              `json:"serviceInfo,omitempty"`
	Active                    bool                      `json:"active"`
	DescriptionFacility       string                    `json:"descriptionFacility,omitempty"`
	AppointmentLeadIn         string                    `json:"appointmentLeadin,omitempty"`
	AppointmentPhones         []AppointmentPhoneNumber  `json:"appointmentPhones,omitempty"`
	OnlineSchedulingAvailable string                    `json:"onlineSchedulingAvailable,omitempty"`
	ReferralRequired          string                    `json:"referralRequired,omitempty"`
	WalkInsAccepted           string                    `json:"walkInsAccepted,omitempty"`
	ServiceLocations          []DetailedServiceLocation `json:"serviceLocations,omitempty"`
	Path                      string                    `json:"path,omitempty"`
}

type AppointmentPhoneNumber struct {
	Extension string `json:"extension,omitempty"`
	Label     string `json:"label,omitempty"`
	Number    string `json:"number,omitempty"`
	Type      string `json:"type,omitempty"`
}

type DetailedServiceLocation struct {
	ServiceLocationAddress *DetailedServiceAddress       `json:"serviceLocationAddress,omitempty"`
	AppointmentPhones      []AppointmentPhoneNumber      `json:"appointmentPhones,omitempty"`
	EmailContacts          []DetailedServiceEmailContact `json:"emailContacts,omitempty"`
	FacilityServiceHours   *DetailedServiceHours         `json:"facilityServiceHours,omitempty"`
	AdditionalHoursInfo    string                        `json:"additionalHoursInfo,omitempty"`
}

type DetailedServiceAddress struct {
	BuildingNameNumber    string `json:"buildingNameNumber,omitempty"`
	ClinicName            string `json:"clinicName,omitempty"`
	WingFloorOrRoomNumber string `json:"wingFloorOrRoomNumber,omitempty"`
	AddressLine1          string `json:"addressLine1,omitempty"`
	AddressLine2          string `json:"addressLine2,omitempty"`
	City                  string `json:"city,omitempty"`
	State                 string `json:"state,omitempty"`
	ZipCode               string `json:"zipCode,omitempty"`
	CountryCode           string `json:"countryCode,omitempty"`
}

type DetailedServiceEmailContact struct {
	EmailAddress string `json:"emailAddress,omitempty"`
	EmailLabel   string `json:"emailLabel,omitempty"`
}

type DetailedServiceHours struct {
	Monday    string `json:"Monday,omitempty"`
	Tuesday   string `json:"Tuesday,omitempty"`
	Wednesday string `json:"Wednesday,omitempty"`
	Thursday  string `json:"Thursday,omitempty"`
	Friday    string `json:"Friday,omitempty"`
	Saturday  string `json:"Saturday,omitempty"`
	Sunday    string `json:"Sunday,omitempty"`
}

// CmsOverlay is the v1 overlay submission; it has no core block.
type CmsOverlay struct {
	OperatingStatus  *OperatingStatus   `json:"operating_status,omitempty"`
	DetailedServices *[]DetailedService `json:"detailed_services,omitempty"`
	HealthCareSystem *HealthCareSystem  `json:"system,omitempty"`
}
