package v1

import "github.com/gyeh/facilities/internal/model"

func addressesToV1(a *model.Addresses) *Addresses {
	if a == nil {
		return nil
	}
	return &Addresses{Mailing: addressToV1(a.Mailing), Physical: addressToV1(a.Physical)}
}

func addressToV1(a *model.Address) *Address {
	if a == nil {
		return nil
	}
	v := Address(*a)
	return &v
}

func addressesToCanonical(a *Addresses) *model.Addresses {
	if a == nil {
		return nil
	}
	return &model.Addresses{Mailing: addressToCanonical(a.Mailing), Physical: addressToCanonical(a.Physical)}
}

func addressToCanonical(a *Address) *model.Address {
	if a == nil {
		return nil
	}
	v := model.Address(*a)
	return &v
}

func phoneToV1(p *model.Phone) *Phone {
	if p == nil {
		return nil
	}
	v := Phone(*p)
	return &v
}

func phoneToCanonical(p *Phone) *model.Phone {
	if p == nil {
		return nil
	}
	v := model.Phone(*p)
	return &v
}

func hoursToV1(h *model.Hours) *Hours {
	if h == nil {
		return nil
	}
	v := Hours(*h)
	return &v
}

func hoursToCanonical(h *Hours) *model.Hours {
	if h == nil {
		return nil
	}
	v := model.Hours(*h)
	return &v
}

func phoneNumberToV1(p model.AppointmentPhoneNumber) AppointmentPhoneNumber {
	return AppointmentPhoneNumber(p)
}

func phoneNumberToCanonical(p AppointmentPhoneNumber) model.AppointmentPhoneNumber {
	return model.AppointmentPhoneNumber(p)
}

func emailToV1(e model.DetailedServiceEmailContact) DetailedServiceEmailContact {
	return DetailedServiceEmailContact(e)
}

func emailToCanonical(e DetailedServiceEmailContact) model.DetailedServiceEmailContact {
	return model.DetailedServiceEmailContact(e)
}

func serviceAddressToV1(a *model.DetailedServiceAddress) *DetailedServiceAddress {
	if a == nil {
		return nil
	}
	v := DetailedServiceAddress(*a)
	return &v
}

func serviceAddressToCanonical(a *DetailedServiceAddress) *model.DetailedServiceAddress {
	if a == nil {
		return nil
	}
	v := model.DetailedServiceAddress(*a)
	return &v
}

func serviceHoursToV1(h *model.DetailedServiceHours) *DetailedServiceHours {
	if h == nil {
		return nil
	}
	v := DetailedServiceHours(*h)
	return &v
}

func serviceHoursToCanonical(h *DetailedServiceHours) *model.DetailedServiceHours {
	if h == nil {
		return nil
	}
	v := model.DetailedServiceHours(*h)
	return &v
}
