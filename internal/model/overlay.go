package model

import (
	"errors"
	"fmt"
)

// ErrUnknownOperatingStatus reports a status code outside the four literals.
var ErrUnknownOperatingStatus = errors.New("unknown operating status code")

// OperatingStatusCode is the coarse open/closed state of a facility.
type OperatingStatusCode string

const (
	StatusNormal  OperatingStatusCode = "NORMAL"
	StatusNotice  OperatingStatusCode = "NOTICE"
	StatusLimited OperatingStatusCode = "LIMITED"
	StatusClosed  OperatingStatusCode = "CLOSED"
)

// ParseOperatingStatusCode is case-sensitive. Like a serviceType, a status
// code has no fallback value, so anything else is an error.
func ParseOperatingStatusCode(s string) (OperatingStatusCode, error) {
	switch OperatingStatusCode(s) {
	case StatusNormal, StatusNotice, StatusLimited, StatusClosed:
		return OperatingStatusCode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperatingStatus, s)
}

type OperatingStatus struct {
	Code               OperatingStatusCode  `json:"code"`
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

// Core carries overlay fields that only the v0 API accepts.
type Core struct {
	FacilityURL string `json:"facility_url,omitempty"`
}

// CmsOverlay is one overlay submission, or the merged overlay state of a
// facility. Nil pointers and an unset DetailedServices mean "no change".
type CmsOverlay struct {
	Core             *Core                       `json:"core,omitempty"`
	OperatingStatus  *OperatingStatus            `json:"operating_status,omitempty"`
	DetailedServices Optional[[]DetailedService] `json:"detailed_services,omitzero"`
	HealthCareSystem *HealthCareSystem           `json:"system,omitempty"`
}
