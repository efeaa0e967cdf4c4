// Package v0 is the legacy facilities API shape: snake_case attributes,
// services as lists of names, and the pre-rename Dental and MentalHealth
// literals.
package v0

type Facility struct {
	ID         string             `json:"id"`
	Type       string             `json:"type"`
	Attributes FacilityAttributes `json:"attributes"`
}

type FacilityAttributes struct {
	Name                                string            `json:"name"`
	FacilityType                        string            `json:"facility_type,omitempty"`
	Classification                      string            `json:"classification,omitempty"`
	Website                             string            `json:"website,omitempty"`
	Latitude                            float64           `json:"lat,omitempty"`
	Longitude                           float64           `json:"long,omitempty"`
	TimeZone                            string            `json:"time_zone,omitempty"`
	Address                             *Addresses        `json:"address,omitempty"`
	Phone                               *Phone            `json:"phone,omitempty"`
	Hours                               *Hours            `json:"hours,omitempty"`
	OperationalHoursSpecialInstructions string            `json:"operational_hours_special_instructions,omitempty"`
	Services                            *Services         `json:"services,omitempty"`
	DetailedServices                    []DetailedService `json:"detailed_services,omitempty"`
	OperatingStatus                     *OperatingStatus  `json:"operating_status,omitempty"`
	ActiveStatus                        string            `json:"active_status,omitempty"`
	Visn                                string            `json:"visn,omitempty"`
	Mobile                              *bool             `json:"mobile,omitempty"`
}

type Addresses struct {
	Mailing  *Address `json:"mailing,omitempty"`
	Physical *Address `json:"physical,omitempty"`
}

type Address struct {
	Address1 string `json:"address_1,omitempty"`
	Address2 string `json:"address_2,omitempty"`
	Address3 string `json:"address_3,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Zip      string `json:"zip,omitempty"`
}

type Phone struct {
	Main                  string `json:"main,omitempty"`
	Fax                   string `json:"fax,omitempty"`
	Pharmacy              string `json:"pharmacy,omitempty"`
	AfterHours            string `json:"after_hours,omitempty"`
	PatientAdvocate       string `json:"patient_advocate,omitempty"`
	MentalHealthClinic    string `json:"mental_health_clinic,omitempty"`
	EnrollmentCoordinator string `json:"enrollment_coordinator,omitempty"`
	HealthConnect         string `json:"health_connect,omitempty"`
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

// Services lists service names per family.
type Services struct {
	Health      []string `json:"health,omitempty"`
	Benefits    []string `json:"benefits,omitempty"`
	Other       []string `json:"other,omitempty"`
	LastUpdated string   `json:"last_updated,omitempty"`
}

type OperatingStatus struct {
	Code               string               `json:"code"`
	AdditionalInfo     string               `json:"additional_info,omitempty"`
	SupplementalStatus []SupplementalStatus `json:"supplemental_status,omitempty"`
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

type Core struct {
	FacilityURL string `json:"facility_url,omitempty"`
}

// ServiceInfo keeps the raw request strings; validation happens in
// ToCanonical.
type ServiceInfo struct {
	ServiceID   string `json:"serviceId,omitempty"`
	Name        string `json:"name,omitempty"`
	ServiceType string `json:"serviceType,omitempty"`
}

type DetailedService struct {
	ServiceInfo               *ServiceInfo              `json:"serviceInfo,omitempty"`
	Name                      string                    `json:"name,omitempty"`
	Active                    bool                      `json:"active"`
	DescriptionFacility       string                    `json:"description_facility,omitempty"`
	AppointmentLeadIn         string                    `json:"appointment_leadin,omitempty"`
	AppointmentPhones         []AppointmentPhoneNumber  `json:"appointment_phones,omitempty"`
	OnlineSchedulingAvailable string                    `json:"online_scheduling_available,omitempty"`
	ReferralRequired          string                    `json:"referral_required,omitempty"`
	WalkInsAccepted           string                    `json:"walk_ins_accepted,omitempty"`
	ServiceLocations          []DetailedServiceLocation `json:"service_locations,omitempty"`
	Path                      string                    `json:"path,omitempty"`
}

type AppointmentPhoneNumber struct {
	Extension string `json:"extension,omitempty"`
	Label     string `json:"label,omitempty"`
	Number    string `json:"number,omitempty"`
	Type      string `json:"type,omitempty"`
}

type DetailedServiceLocation struct {
	ServiceLocationAddress *DetailedServiceAddress       `json:"service_location_address,omitempty"`
	AppointmentPhones      []AppointmentPhoneNumber      `json:"appointment_phones,omitempty"`
	EmailContacts          []DetailedServiceEmailContact `json:"email_contacts,omitempty"`
	FacilityServiceHours   *DetailedServiceHours         `json:"facility_service_hours,omitempty"`
	AdditionalHoursInfo    string                        `json:"additional_hours_info,omitempty"`
}

type DetailedServiceAddress struct {
	BuildingNameNumber    string `json:"building_name_number,omitempty"`
	ClinicName            string `json:"clinic_name,omitempty"`
	WingFloorOrRoomNumber string `json:"wing_floor_or_room_number,omitempty"`
	AddressLine1          string `json:"address_line1,omitempty"`
	AddressLine2          string `json:"address_line2,omitempty"`
	City                  string `json:"city,omitempty"`
	State                 string `json:"state,omitempty"`
	ZipCode               string `json:"zip_code,omitempty"`
	CountryCode           string `json:"country_code,omitempty"`
}

type DetailedServiceEmailContact struct {
	EmailAddress string `json:"email_address,omitempty"`
	EmailLabel   string `json:"email_label,omitempty"`
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

// CmsOverlay is the v0 overlay submission. A nil DetailedServices means the
// key was absent or null; an empty non-nil slice is an explicit clear.
type CmsOverlay struct {
	Core             *Core              `json:"core,omitempty"`
	OperatingStatus  *OperatingStatus   `json:"operating_status,omitempty"`
	DetailedServices *[]DetailedService `json:"detailed_services,omitempty"`
	HealthCareSystem *HealthCareSystem  `json:"system,omitempty"`
}
