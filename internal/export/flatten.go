package export

import (
	"strings"

	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/normalize"
	v1 "github.com/gyeh/facilities/internal/transform/v1"
)

// ServiceListSeparator joins service ids within one service list column.
const ServiceListSeparator = ";"

// Flatten maps a v1 facility onto one export row. Service list columns carry
// service ids in the facility's own order.
func Flatten(f v1.Facility) model.FacilityRow {
	a := f.Attributes
	row := model.FacilityRow{
		ID:               f.ID,
		Name:             a.Name,
		FacilityType:     a.FacilityType,
		Classification:   normalize.OptString(a.Classification),
		Website:          normalize.OptString(a.Website),
		Visn:             normalize.OptString(a.Visn),
		Mobile:           a.Mobile,
		DetailedServices: int32(len(a.DetailedServices)),
		OperationalHoursSpecialInstructions: normalize.OptString(
			normalize.JoinInstructions(a.OperationalHoursSpecialInstructions)),
	}

	if a.Latitude != 0 || a.Longitude != 0 {
		lat, long := a.Latitude, a.Longitude
		row.Latitude, row.Longitude = &lat, &long
	}
	if a.Address != nil && a.Address.Physical != nil {
		p := a.Address.Physical
		row.Address = normalize.OptString(joinNonEmpty(", ", p.Address1, p.Address2, p.Address3))
		row.City = normalize.OptString(p.City)
		row.State = normalize.OptString(p.State)
		row.Zip = normalize.OptString(p.Zip)
	}
	if a.Phone != nil {
		row.MainPhone = normalize.OptString(a.Phone.Main)
	}
	if a.OperatingStatus != nil {
		row.OperatingStatus = a.OperatingStatus.Code
		row.OperatingStatusInfo = normalize.OptString(a.OperatingStatus.AdditionalInfo)
	}
	if a.Services != nil {
		row.HealthServices = serviceIDs(a.Services.Health)
		row.BenefitsServices = serviceIDs(a.Services.Benefits)
		row.OtherServices = serviceIDs(a.Services.Other)
	}
	return row
}

func serviceIDs(in []v1.Service) *string {
	ids := make([]string, 0, len(in))
	for _, s := range in {
		ids = append(ids, s.ServiceID)
	}
	return normalize.OptString(strings.Join(ids, ServiceListSeparator))
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
