package codec

import (
	"fmt"

	"github.com/gyeh/facilities/internal/model"
)

// Record is the persisted form of a facility's overlay: four opaque text
// columns keyed by facility id.
type Record struct {
	ID               string
	Core             *string
	OperatingStatus  *string
	Services         *string
	HealthCareSystem *string
}

// RecordFromOverlay encodes every fragment of o.
func RecordFromOverlay(id string, o model.CmsOverlay) (Record, error) {
	r := Record{ID: id}
	var err error
	if r.Core, err = EncodeCore(o.Core); err != nil {
		return Record{}, fmt.Errorf("encode core: %w", err)
	}
	if r.OperatingStatus, err = EncodeOperatingStatus(o.OperatingStatus); err != nil {
		return Record{}, fmt.Errorf("encode operating status: %w", err)
	}
	if r.Services, err = EncodeDetailedServices(o.DetailedServices.OrZero()); err != nil {
		return Record{}, fmt.Errorf("encode detailed services: %w", err)
	}
	if r.HealthCareSystem, err = EncodeHealthCareSystem(o.HealthCareSystem); err != nil {
		return Record{}, fmt.Errorf("encode health care system: %w", err)
	}
	return r, nil
}

// Overlay decodes the record. A null services column yields an unset
// DetailedServices.
func (r Record) Overlay() (model.CmsOverlay, error) {
	var o model.CmsOverlay
	var err error
	if o.Core, err = DecodeCore(r.Core); err != nil {
		return model.CmsOverlay{}, err
	}
	if o.OperatingStatus, err = DecodeOperatingStatus(r.OperatingStatus); err != nil {
		return model.CmsOverlay{}, err
	}
	if o.HealthCareSystem, err = DecodeHealthCareSystem(r.HealthCareSystem); err != nil {
		return model.CmsOverlay{}, err
	}
	if r.Services != nil {
		services, err := DecodeDetailedServices(r.Services)
		if err != nil {
			return model.CmsOverlay{}, err
		}
		o.DetailedServices = model.Some(services)
	}
	return o, nil
}
