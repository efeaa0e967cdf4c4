package v1

import (
	"fmt"

	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/normalize"
	"github.com/gyeh/facilities/internal/taxonomy"
	"github.com/gyeh/facilities/internal/transform"
)

// NameResolver supplies display names for service ids. *aggregator.Aggregator
// satisfies it.
type NameResolver interface {
	ServiceName(id string) (string, bool)
}

// Transformer maps between the canonical model and the v1 shape.
type Transformer struct {
	linkerURL string
	names     NameResolver
}

// New returns a transformer that builds service links under linkerURL. A nil
// names falls back to the names carried on each tag.
func New(linkerURL string, names NameResolver) *Transformer {
	return &Transformer{linkerURL: linkerURL, names: names}
}

func (t *Transformer) ToV1(f model.Facility) Facility {
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
			Address:                             addressesToV1(a.Address),
			Phone:                               phoneToV1(a.Phone),
			Hours:                               hoursToV1(a.Hours),
			OperationalHoursSpecialInstructions: normalize.SplitInstructions(a.OperationalHoursSpecialInstructions),
			Services:                            t.ServicesToV1(f.ID, a.Services),
			DetailedServices:                    transform.MapSlice(a.DetailedServices, t.DetailedServiceToV1),
			OperatingStatus:                     t.OperatingStatusToV1(transform.DeriveOperatingStatus(a.OperatingStatus, a.ActiveStatus)),
			Visn:                                a.Visn,
			Mobile:                              a.Mobile,
			ParentID:                            a.ParentID,
		},
	}
}

// ToCanonical infers activeStatus from the operating status, since v1 does
// not carry it.
func (t *Transformer) ToCanonical(f Facility) (model.Facility, error) {
	a := f.Attributes
	detailed, err := t.DetailedServicesToCanonical(a.DetailedServices)
	if err != nil {
		return model.Facility{}, fmt.Errorf("facility %s: %w", f.ID, err)
	}
	status, err := t.OperatingStatusToCanonical(a.OperatingStatus)
	if err != nil {
		return model.Facility{}, fmt.Errorf("facility %s: %w", f.ID, err)
	}
	var active model.ActiveStatus
	if status != nil {
		active = model.ActiveStatusActive
		if status.Code == model.StatusClosed {
			active = model.ActiveStatusTemporary
		}
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
			OperationalHoursSpecialInstructions: normalize.JoinInstructions(a.OperationalHoursSpecialInstructions),
			Services:                            t.ServicesToCanonical(a.Services),
			DetailedServices:                    detailed,
			OperatingStatus:                     status,
			ActiveStatus:                        active,
			Visn:                                a.Visn,
			Mobile:                              a.Mobile,
			ParentID:                            a.ParentID,
		},
	}, nil
}

func (t *Transformer) ServicesToV1(facilityID string, s *model.Services) *Services {
	if s == nil {
		return nil
	}
	return &Services{
		Health:      t.HealthToV1(facilityID, s.Health),
		Benefits:    t.BenefitsToV1(facilityID, s.Benefits),
		Other:       t.OtherToV1(facilityID, s.Other),
		LastUpdated: s.LastUpdated,
	}
}

func (t *Transformer) ServicesToCanonical(s *Services) *model.Services {
	if s == nil {
		return nil
	}
	return &model.Services{
		Health:      HealthToCanonical(s.Health),
		Benefits:    BenefitsToCanonical(s.Benefits),
		Other:       OtherToCanonical(s.Other),
		LastUpdated: s.LastUpdated,
	}
}

func (t *Transformer) HealthToV1(facilityID string, in model.HealthServices) []Service {
	return transform.FacilityList(taxonomy.Health, in, serviceToV1[taxonomy.HealthService](t, facilityID))
}

func (t *Transformer) BenefitsToV1(facilityID string, in model.BenefitsServices) []Service {
	return transform.FacilityList(taxonomy.Benefits, in, serviceToV1[taxonomy.BenefitsService](t, facilityID))
}

func (t *Transformer) OtherToV1(facilityID string, in model.OtherServices) []Service {
	return transform.FacilityList(taxonomy.Other, in, serviceToV1[taxonomy.OtherService](t, facilityID))
}

func serviceToV1[T taxonomy.Kind](t *Transformer, facilityID string) func(T, model.Service[T]) Service {
	return func(v T, s model.Service[T]) Service {
		return Service{
			ServiceType: v.Name(),
			Name:        t.displayName(v.ServiceID(), s.Name),
			ServiceID:   v.ServiceID(),
			Link:        transform.ServiceLink(t.linkerURL, facilityID, v.ServiceID()),
		}
	}
}

func (t *Transformer) displayName(id, fallback string) string {
	if t.names != nil {
		if name, ok := t.names.ServiceName(id); ok {
			return name
		}
	}
	return fallback
}

func HealthToCanonical(in []Service) model.HealthServices {
	return serviceListToCanonical(taxonomy.Health, in)
}

func BenefitsToCanonical(in []Service) model.BenefitsServices {
	return serviceListToCanonical(taxonomy.Benefits, in)
}

func OtherToCanonical(in []Service) model.OtherServices {
	return serviceListToCanonical(taxonomy.Other, in)
}

// serviceListToCanonical resolves each entry by id, then by serviceType
// literal, then by name. Entries that resolve no way are omitted.
func serviceListToCanonical[T taxonomy.Kind](fam *taxonomy.Family[T], in []Service) []model.Service[T] {
	var out []model.Service[T]
	for _, s := range in {
		v, ok := fam.FromServiceID(s.ServiceID)
		if !ok {
			var err error
			if v, err = fam.FromName(s.ServiceType); err != nil {
				if v, err = fam.FromName(s.Name); err != nil {
					continue
				}
			}
		}
		out = append(out, model.NewService(v, s.Name, ""))
	}
	if len(out) == 0 {
		return nil
	}
	return model.SortServices(out)
}

func (t *Transformer) DetailedServiceToV1(d model.DetailedService) DetailedService {
	out := DetailedService{
		Active:                    d.Active,
		DescriptionFacility:       d.DescriptionFacility,
		AppointmentLeadIn:         d.AppointmentLeadIn,
		AppointmentPhones:         transform.MapSlice(d.AppointmentPhones, phoneNumberToV1),
		OnlineSchedulingAvailable: d.OnlineSchedulingAvailable,
		ReferralRequired:          d.ReferralRequired,
		WalkInsAccepted:           d.WalkInsAccepted,
		ServiceLocations:          transform.MapSlice(d.ServiceLocations, t.LocationToV1),
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

func (t *Transformer) DetailedServiceToCanonical(d DetailedService) (model.DetailedService, error) {
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
	if d.ServiceInfo == nil {
		return out, nil
	}
	info, err := model.NormalizeServiceInfo(d.ServiceInfo.ServiceID, d.ServiceInfo.Name, d.ServiceInfo.ServiceType)
	if err != nil {
		return model.DetailedService{}, err
	}
	out.ServiceInfo = &info
	return out, nil
}

func (t *Transformer) DetailedServicesToCanonical(in []DetailedService) ([]model.DetailedService, error) {
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

func (t *Transformer) LocationToV1(l model.DetailedServiceLocation) DetailedServiceLocation {
	return DetailedServiceLocation{
		ServiceLocationAddress: serviceAddressToV1(l.ServiceLocationAddress),
		AppointmentPhones:      transform.MapSlice(l.AppointmentPhones, phoneNumberToV1),
		EmailContacts:          transform.MapSlice(l.EmailContacts, emailToV1),
		FacilityServiceHours:   serviceHoursToV1(l.FacilityServiceHours),
		AdditionalHoursInfo:    l.AdditionalHoursInfo,
	}
}

func (t *Transformer) LocationToCanonical(l DetailedServiceLocation) model.DetailedServiceLocation {
	return model.DetailedServiceLocation{
		ServiceLocationAddress: serviceAddressToCanonical(l.ServiceLocationAddress),
		AppointmentPhones:      transform.MapSlice(l.AppointmentPhones, phoneNumberToCanonical),
		EmailContacts:          transform.MapSlice(l.EmailContacts, emailToCanonical),
		FacilityServiceHours:   serviceHoursToCanonical(l.FacilityServiceHours),
		AdditionalHoursInfo:    l.AdditionalHoursInfo,
	}
}

func (t *Transformer) OperatingStatusToV1(o *model.OperatingStatus) *OperatingStatus {
	if o == nil {
		return nil
	}
	return &OperatingStatus{
		Code:                 string(o.Code),
		AdditionalInfo:       o.AdditionalInfo,
		SupplementalStatuses: transform.MapSlice(o.SupplementalStatus, t.SupplementalStatusToV1),
	}
}

// OperatingStatusToCanonical fails on a code outside NORMAL, NOTICE, LIMITED
// and CLOSED.
func (t *Transformer) OperatingStatusToCanonical(o *OperatingStatus) (*model.OperatingStatus, error) {
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
		SupplementalStatus: transform.MapSlice(o.SupplementalStatuses, t.SupplementalStatusToCanonical),
	}, nil
}

func (t *Transformer) SupplementalStatusToV1(s model.SupplementalStatus) SupplementalStatus {
	return SupplementalStatus{ID: s.ID, Label: s.Label}
}

func (t *Transformer) SupplementalStatusToCanonical(s SupplementalStatus) model.SupplementalStatus {
	return model.SupplementalStatus{ID: s.ID, Label: s.Label}
}

func (t *Transformer) HealthCareSystemToV1(h *model.HealthCareSystem) *HealthCareSystem {
	if h == nil {
		return nil
	}
	v := HealthCareSystem(*h)
	return &v
}

func (t *Transformer) HealthCareSystemToCanonical(h *HealthCareSystem) *model.HealthCareSystem {
	if h == nil {
		return nil
	}
	v := model.HealthCareSystem(*h)
	return &v
}

// OverlayToV1 drops the core block, which v1 does not expose.
func (t *Transformer) OverlayToV1(o model.CmsOverlay) CmsOverlay {
	out := CmsOverlay{
		OperatingStatus:  t.OperatingStatusToV1(o.OperatingStatus),
		HealthCareSystem: t.HealthCareSystemToV1(o.HealthCareSystem),
	}
	if services, ok := o.DetailedServices.Get(); ok {
		v1 := transform.MapSlice(services, t.DetailedServiceToV1)
		if v1 == nil {
			v1 = []DetailedService{}
		}
		out.DetailedServices = &v1
	}
	return out
}

func (t *Transformer) OverlayToCanonical(o CmsOverlay) (model.CmsOverlay, error) {
	status, err := t.OperatingStatusToCanonical(o.OperatingStatus)
	if err != nil {
		return model.CmsOverlay{}, fmt.Errorf("overlay: %w", err)
	}
	out := model.CmsOverlay{
		OperatingStatus:  status,
		HealthCareSystem: t.HealthCareSystemToCanonical(o.HealthCareSystem),
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
