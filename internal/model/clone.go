package model

func cloneSlice[T any](in []T, fn func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func identity[T any](v T) T { return v }

// Clone deep-copies the detailed service.
func (d DetailedService) Clone() DetailedService {
	cp := d
	cp.ServiceInfo = clonePtr(d.ServiceInfo)
	cp.AppointmentPhones = cloneSlice(d.AppointmentPhones, identity[AppointmentPhoneNumber])
	cp.ServiceLocations = cloneSlice(d.ServiceLocations, DetailedServiceLocation.Clone)
	cp.LastUpdated = clonePtr(d.LastUpdated)
	return cp
}

func (l DetailedServiceLocation) Clone() DetailedServiceLocation {
	cp := l
	cp.ServiceLocationAddress = clonePtr(l.ServiceLocationAddress)
	cp.AppointmentPhones = cloneSlice(l.AppointmentPhones, identity[AppointmentPhoneNumber])
	cp.EmailContacts = cloneSlice(l.EmailContacts, identity[DetailedServiceEmailContact])
	cp.FacilityServiceHours = clonePtr(l.FacilityServiceHours)
	return cp
}

// CloneDetailedServices deep-copies a list of detailed services.
func CloneDetailedServices(in []DetailedService) []DetailedService {
	return cloneSlice(in, DetailedService.Clone)
}

func (o OperatingStatus) Clone() OperatingStatus {
	cp := o
	cp.SupplementalStatus = cloneSlice(o.SupplementalStatus, identity[SupplementalStatus])
	return cp
}

func cloneOperatingStatus(o *OperatingStatus) *OperatingStatus {
	if o == nil {
		return nil
	}
	cp := o.Clone()
	return &cp
}

// Clone deep-copies the overlay.
func (c CmsOverlay) Clone() CmsOverlay {
	cp := c
	cp.Core = clonePtr(c.Core)
	cp.OperatingStatus = cloneOperatingStatus(c.OperatingStatus)
	cp.HealthCareSystem = clonePtr(c.HealthCareSystem)
	if services, ok := c.DetailedServices.Get(); ok {
		cp.DetailedServices = Some(CloneDetailedServices(services))
	}
	return cp
}

// Clone deep-copies the facility so callers can mutate the copy freely.
func (f Facility) Clone() Facility {
	cp := f
	a := &cp.Attributes
	if f.Attributes.Address != nil {
		a.Address = &Addresses{
			Mailing:  clonePtr(f.Attributes.Address.Mailing),
			Physical: clonePtr(f.Attributes.Address.Physical),
		}
	}
	a.Phone = clonePtr(f.Attributes.Phone)
	a.Hours = clonePtr(f.Attributes.Hours)
	if s := f.Attributes.Services; s != nil {
		a.Services = &Services{
			Health:      append(HealthServices(nil), s.Health...),
			Benefits:    append(BenefitsServices(nil), s.Benefits...),
			Other:       append(OtherServices(nil), s.Other...),
			LastUpdated: s.LastUpdated,
		}
	}
	a.DetailedServices = CloneDetailedServices(f.Attributes.DetailedServices)
	a.OperatingStatus = cloneOperatingStatus(f.Attributes.OperatingStatus)
	a.Mobile = clonePtr(f.Attributes.Mobile)
	return cp
}
