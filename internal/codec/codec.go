// Package codec converts overlay fragments to and from the text columns the
// store persists. Every pair is null-safe in both directions.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/gyeh/facilities/internal/model"
)

func encode[T any](v T, empty bool) (*string, error) {
	if empty {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func decode[T any](s *string, what string) (*T, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal([]byte(*s), &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", what, err)
	}
	return &v, nil
}

func EncodeCore(c *model.Core) (*string, error) {
	return encode(c, c == nil || *c == model.Core{})
}

func DecodeCore(s *string) (*model.Core, error) {
	return decode[model.Core](s, "core")
}

func EncodeOperatingStatus(o *model.OperatingStatus) (*string, error) {
	return encode(o, o == nil)
}

func DecodeOperatingStatus(s *string) (*model.OperatingStatus, error) {
	return decode[model.OperatingStatus](s, "operating status")
}

func EncodeHealthCareSystem(h *model.HealthCareSystem) (*string, error) {
	return encode(h, h == nil || *h == model.HealthCareSystem{})
}

func DecodeHealthCareSystem(s *string) (*model.HealthCareSystem, error) {
	return decode[model.HealthCareSystem](s, "health care system")
}

func EncodeDetailedServices(services []model.DetailedService) (*string, error) {
	return encode(services, len(services) == 0)
}

// DecodeDetailedServices drops entries without a serviceInfo block; such rows
// predate the taxonomy and cannot be keyed.
func DecodeDetailedServices(s *string) ([]model.DetailedService, error) {
	decoded, err := decode[[]model.DetailedService](s, "detailed services")
	if err != nil || decoded == nil {
		return nil, err
	}
	out := make([]model.DetailedService, 0, len(*decoded))
	for _, ds := range *decoded {
		if ds.ServiceInfo == nil {
			continue
		}
		out = append(out, ds)
	}
	return out, nil
}
