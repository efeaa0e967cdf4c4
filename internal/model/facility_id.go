package model

import (
	"regexp"

	"github.com/gyeh/facilities/internal/apperr"
)

// Facility ids are a station-type prefix and a station number, e.g. vha_402GA.
var facilityIDPattern = regexp.MustCompile(`^(vha|vba|vc|nca)_[0-9A-Za-z-]+$`)

// ValidateFacilityID returns an apperr InvalidParameter for malformed ids.
func ValidateFacilityID(id string) error {
	if !facilityIDPattern.MatchString(id) {
		return apperr.InvalidParameter("facility id %q", id)
	}
	return nil
}
