package v0

import (
	"fmt"

	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/taxonomy"
	"github.com/gyeh/facilities/internal/transform"
)

// Transformer maps between the canonical model and the v0 shape. The zero
// value is ready to use.
type Transformer struct{}

func New() Transformer { return Transformer{} }

func (t Transformer) ToV0(f model.Facility) Facility {
	a := f.Attributes
	return Facility{
		ID:   f.ID,
		Type: f.Type,
		Attributes: FacilityAttributes{
			Name:                                a.Name,
			FacilityType:                        a.FacilityType,
			Classification:                      a.Classification,
			Website:                             a.Website,
			Latitude:                            a.Latitude,
			Longitude:                           a.Longitude,
			TimeZone:                            a.TimeZone,
			Address:                             addressesToV0(a.Address),
			Phone:                               phoneToV0(a.Phone),
			Hours:                               hoursToV0(a.Hours),
			OperationalHoursSpecialInstructions: a.OperationalHoursSpecialInstructions,
			Services:                            t.ServicesToV0(a.Services),
			DetailedServices:                    transform.MapSlice(a.DetailedServices, t.DetailedServiceToV0),
			OperatingStatus:                     t.OperatingStatusToV0(transform.DeriveOperatingStatus(a.OperatingStatus, a.ActiveStatus)),
			ActiveStatus:                        string(a.ActiveStatus),
			Visn:                                a.Visn,
			Mobile:                              a.Mobile,
		},
	}
}

// ToCanonical fails only when a detailed service carries an unknown
// serviceType literal.
func (t Transformer) ToCanonical(f Facility) (model.Facility, error) {
	a := f.Attributes
	detailed, err := t.DetailedServicesToCanonical(a.DetailedServices)
	if err != nil {
		return model.Facility{}, fmt.Errorf("facility %s: %w", f.ID, err)
	}
	status, err := t.OperatingStatusToCanonical(a.OperatingStatus)
	if err != nil {
		return model.Facility{}, fmt.Errorf("facility %s: %w", f.ID, err)
	}
	return model.Facility{
		ID:   f.ID,
		Type: f.Type,
		Attributes: model.FacilityAttributes{
			Name:                                a.Name,
			FacilityType:                        a.FacilityType,
			Classification:                      a.Classification,
			Website:                             a.Website,
			Latitude:                            a.Latitude,
			Longitude:                           a.Longitude,
			TimeZone:                            a.TimeZone,
			Address:                             addressesToCanonical(a.Address),
			Phone:                               phoneToCanonical(a.Phone),
			Hours:                               hoursToCanonical(a.Hours),
			OperationalHoursSpecialInstructions: a.OperationalHoursSpecialInstructions,
			Services:                            t.ServicesToCanonical(a.Services),
			DetailedServices:                    detailed,
			OperatingStatus:                     status,
			ActiveStatus:                        model.ActiveStatus(a.ActiveStatus),
			Visn:                                a.Visn,
			Mobile:                              a.Mobile,
		},
	}, nil
}

func (t Transformer) ServicesToV0(s *model.Services) *Services {
	if s == nil {
		return nil
	}
	return &Services{
		Health:      t.HealthToV0(s.Health),
		Benefits:    t.BenefitsToV0(s.Benefits),
		Other:       t.OtherToV0(s.Other),
		LastUpdated: s.LastUpdated,
	}
}

func (t Transformer) ServicesToCanonical(s *Services) *model.Services {
	if s == nil {
		return nil
	}
	return &model.Services{
		Health:      t.HealthToCanonical(s.Health),
		Benefits:    t.BenefitsToCanonical(s.Benefits),
		Other:       t.OtherToCanonical(s.Other),
		LastUpdated: s.LastUpdated,
	}
}

// HealthToV0 emits the v0 literal for each tag. Dental and MentalHealth use
// their pre-rename literals, which is the only name v0 clients know.
func (t Transformer) HealthToV0(in model.HealthServices) []string {
	return transform.FacilityList(taxonomy.Health, in, func(v taxonomy.HealthService, _ model.Service[taxonomy.HealthService]) string {
		if v.IsRenamed() {
			return v.LegacyName()
		}
		return v.Name()
	})
}

func (t Transformer) BenefitsToV0(in model.BenefitsServices) []string {
	return transform.FacilityList(taxonomy.Benefits, in, func(v taxonomy.BenefitsService, _ model.Service[taxonomy.BenefitsService]) string {
		return v.Name()
	})
}

func (t Transformer) OtherToV0(in model.OtherServices) []string {
	return transform.FacilityList(taxonomy.Other, in, func(v taxonomy.OtherService, _ model.Service[taxonomy.OtherService]) string {
		return v.Name()
	})
}

func (t Transformer) HealthToCanonical(names []string) model.HealthServices {
	return transform.FromNames(taxonomy.Health, names)
}

func (t Transformer) BenefitsToCanonical(names []string) model.BenefitsServices {
	return transform.FromNames(taxonomy.Benefits, names)
}

func (t Transformer) OtherToCanonical(names []string) model.OtherServices {
	return transform.FromNames(taxonomy.Other, names)
}

func (t Transformer) DetailedServiceToV0(d model.DetailedService) DetailedService {
	out := DetailedService{
		Active:                    d.Active,
		DescriptionFacility:       d.DescriptionFacility,
		AppointmentLeadIn:         d.AppointmentLeadIn,
		AppointmentPhones:         transform.MapSlice(d.AppointmentPhones, phoneNumberToV0),
		OnlineSchedulingAvailable: d.OnlineSchedulingAvailable,
		ReferralRequired:          d.ReferralRequired,
		WalkInsAccepted:           d.WalkInsAccepted,
		ServiceLocations:          transform.MapSlice(d.ServiceLocations, t.LocationToV0),
		Path:                      d.Path,
	}
	if d.ServiceInfo != nil {
		out.ServiceInfo = &ServiceInfo{
			ServiceID:   d.ServiceInfo.ServiceID,
			Name:        d.ServiceInfo.Name,
			ServiceType: string(d.ServiceInfo.ServiceType),
		}
	}
	return out
}

// DetailedServiceToCanonical normalizes the service info. The legacy "name"
// key stands in for a missing serviceInfo block.
func (t Transformer) DetailedServiceToCanonical(d DetailedService) (model.DetailedService, error) {
	out := model.DetailedService{
		Active:                    d.Active,
		DescriptionFacility:       d.DescriptionFacility,
		AppointmentLeadIn:         d.AppointmentLeadIn,
		AppointmentPhones:         transform.MapSlice(d.AppointmentPhones, phoneNumberToCanonical),
		OnlineSchedulingAvailable: d.OnlineSchedulingAvailable,
		ReferralRequired:          d.ReferralRequired,
		WalkInsAccepted:           d.WalkInsAccepted,
		ServiceLocations:          transform.MapSlice(d.ServiceLocations, t.LocationToCanonical),
		Path:                      d.Path,
	}
	var (
		info model.ServiceInfo
		err  error
	)
	switch {
	case d.ServiceInfo != nil:
		info, err = model.NormalizeServiceInfo(d.ServiceInfo.ServiceID, d.ServiceInfo.Name, d.ServiceInfo.ServiceType)
	case d.Name != "":
		info, err = model.NormalizeServiceInfo("", d.Name, "")
	default:
		return out, nil
	}
	if err != nil {
		return model.DetailedService{}, err
	}
	out.ServiceInfo = &info
	return out, nil
}

func (t Transformer) DetailedServicesToCanonical(in []DetailedService) ([]model.DetailedService, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]model.DetailedService, 0, len(in))
	for i, d := range in {
		c, err := t.DetailedServiceToCanonical(d)
		if err != nil {
			return nil, fmt.Errorf("detailed service %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (t Transformer) LocationToV0(l model.DetailedServiceLocation) DetailedServiceLocation {
	return DetailedServiceLocation{
		ServiceLocationAddress: serviceAddressToV0(l.ServiceLocationAddress),
		AppointmentPhones:      transform.MapSlice(l.AppointmentPhones, phoneNumberToV0),
		EmailContacts:          transform.MapSlice(l.EmailContacts, emailToV0),
		FacilityServiceHours:   serviceHoursToV0(l.FacilityServiceHours),
		AdditionalHoursInfo:    l.AdditionalHoursInfo,
	}
}

func (t Transformer) LocationToCanonical(l DetailedServiceLocation) model.DetailedServiceLocation {
	return model.DetailedServiceLocation{
		ServiceLocationAddress: serviceAddressToCanonical(l.ServiceLocationAddress),
		AppointmentPhones:      transform.MapSlice(l.AppointmentPhones, phoneNumberToCanonical),
		EmailContacts:          transform.MapSlice(l.EmailContacts, emailToCanonical),
		FacilityServiceHours:   serviceHoursToCanonical(l.FacilityServiceHours),
		AdditionalHoursInfo:    l.AdditionalHoursInfo,
	}
}

func (t Transformer) OperatingStatusToV0(o *model.OperatingStatus) *OperatingStatus {
	if o == nil {
		return nil
	}
	return &OperatingStatus{
		Code:               string(o.Code),
		AdditionalInfo:     o.AdditionalInfo,
		SupplementalStatus: transform.MapSlice(o.SupplementalStatus, t.SupplementalStatusToV0),
	}
}

func (t Transformer) OperatingStatusToCanonical(o *OperatingStatus) (*model.OperatingStatus, error) {
	if o == nil {
		return nil, nil
	}
	code, err := model.ParseOperatingStatusCode(o.Code)
	if err != nil {
		return nil, err
	}
	return &model.OperatingStatus{
		Code:               code,
		AdditionalInfo:     o.AdditionalInfo,
		SupplementalStatus: transform.MapSlice(o.SupplementalStatus, t.SupplementalStatusToCanonical),
	}, nil
}

func (t Transformer) SupplementalStatusToV0(s model.SupplementalStatus) SupplementalStatus {
	return SupplementalStatus{ID: s.ID, Label: s.Label}
}

func (t Transformer) SupplementalStatusToCanonical(s SupplementalStatus) model.SupplementalStatus {
	return model.SupplementalStatus{ID: s.ID, Label: s.Label}
}

func (t Transformer) HealthCareSystemToV0(h *model.HealthCareSystem) *HealthCareSystem {
	if h == nil {
		return nil
	}
	return &HealthCareSystem{Name: h.Name, URL: h.URL, CovidURL: h.CovidURL, VAHealthConnectPhone: h.VAHealthConnectPhone}
}

func (t Transformer) HealthCareSystemToCanonical(h *HealthCareSystem) *model.HealthCareSystem {
	if h == nil {
		return nil
	}
	return &model.HealthCareSystem{Name: h.Name, URL: h.URL, CovidURL: h.CovidURL, VAHealthConnectPhone: h.VAHealthConnectPhone}
}

func (t Transformer) OverlayToV0(o model.CmsOverlay) CmsOverlay {
	out := CmsOverlay{
		OperatingStatus:  t.OperatingStatusToV0(o.OperatingStatus),
		HealthCareSystem: t.HealthCareSystemToV0(o.HealthCareSystem),
	}
	if o.Core != nil {
		out.Core = &Core{FacilityURL: o.Core.FacilityURL}
	}
	if services, ok := o.DetailedServices.Get(); ok {
		v0 := transform.MapSlice(services, t.DetailedServiceToV0)
		if v0 == nil {
			v0 = []DetailedService{}
		}
		out.DetailedServices = &v0
	}
	return out
}

// OverlayToCanonical keeps the absent/empty distinction of detailed_services.
func (t Transformer) OverlayToCanonical(o CmsOverlay) (model.CmsOverlay, error) {
	status, err := t.OperatingStatusToCanonical(o.OperatingStatus)
	if err != nil {
		return model.CmsOverlay{}, fmt.Errorf("overlay: %w", err)
	}
	out := model.CmsOverlay{
		OperatingStatus:  status,
		HealthCareSystem: t.HealthCareSystemToCanonical(o.HealthCareSystem),
	}
	if o.Core != nil {
		out.Core = &model.Core{FacilityURL: o.Core.FacilityURL}
	}
	if o.DetailedServices != nil {
		services, err := t.DetailedServicesToCanonical(*o.DetailedServices)
		if err != nil {
			return model.CmsOverlay{}, fmt.Errorf("overlay: %w", err)
		}
		if services == nil {
			services = []model.DetailedService{}
		}
		out.DetailedServices = model.Some(services)
	}
	return out, nil
}
