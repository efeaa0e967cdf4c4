package model

import (
	"encoding/json"
	"time"
)

// DetailedService is the rich, per-facility overlay record for one service.
// It is replaced wholesale on each submission, keyed by service id.
type DetailedService struct {
	ServiceInfo               *ServiceInfo              `json:"serviceInfo,omitempty"`
	Active                    bool                      `json:"active"`
	DescriptionFacility       string                    `json:"description_facility,omitempty"`
	AppointmentLeadIn         string                    `json:"appointment_leadin,omitempty"`
	AppointmentPhones         []AppointmentPhoneNumber  `json:"appointment_phones,omitempty"`
	OnlineSchedulingAvailable string                    `json:"online_scheduling_available,omitempty"`
	ReferralRequired          string                    `json:"referral_required,omitempty"`
	WalkInsAccepted           string                    `json:"walk_ins_accepted,omitempty"`
	ServiceLocations          []DetailedServiceLocation `json:"service_locations,omitempty"`
	Path                      string                    `json:"path,omitempty"`
	LastUpdated               *time.Time                `json:"last_updated,omitempty"`
}

// UnmarshalJSON accepts the legacy top-level "name" key, which back-fills
// serviceInfo when no serviceInfo block is present.
func (d *DetailedService) UnmarshalJSON(data []byte) error {
	type plain DetailedService
	var aux struct {
		plain
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*d = DetailedService(aux.plain)
	if d.ServiceInfo == nil && aux.Name != nil {
		info, err := NormalizeServiceInfo("", *aux.Name, "")
		if err != nil {
			return err
		}
		d.ServiceInfo = &info
	}
	return nil
}

// ServiceID returns the service id, or "" when serviceInfo is missing.
func (d DetailedService) ServiceID() string {
	if d.ServiceInfo == nil {
		return ""
	}
	return d.ServiceInfo.ServiceID
}

// Name returns the service name, or "" when serviceInfo is missing.
func (d DetailedService) Name() string {
	if d.ServiceInfo == nil {
		return ""
	}
	return d.ServiceInfo.Name
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

// DetailedServiceHours keys use capitalized day names on the wire.
type DetailedServiceHours struct {
	Monday    string `json:"Monday,omitempty"`
	Tuesday   string `json:"Tuesday,omitempty"`
	Wednesday string `json:"Wednesday,omitempty"`
	Thursday  string `json:"Thursday,omitempty"`
	Friday    string `json:"Friday,omitempty"`
	Saturday  string `json:"Saturday,omitempty"`
	Sunday    string `json:"Sunday,omitempty"`
}
