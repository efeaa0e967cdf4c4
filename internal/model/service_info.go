package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gyeh/facilities/internal/taxonomy"
)

// ServiceInfo identifies the service a DetailedService describes.
type ServiceInfo struct {
	ServiceID   string               `json:"serviceId"`
	Name        string               `json:"name,omitempty"`
	ServiceType taxonomy.ServiceType `json:"serviceType,omitempty"`
}

// Valid reports whether the id resolved against the taxonomy.
func (s ServiceInfo) Valid() bool {
	return s.ServiceID != "" && s.ServiceID != taxonomy.ServiceIDInvalid
}

// NormalizeServiceInfo builds a ServiceInfo from the raw fields of a request.
//
// A known id back-fills the name and type; a missing id is inferred from a
// recognized name. Unresolvable ids become taxonomy.ServiceIDInvalid. The only
// failure is a serviceType literal outside health|benefits|other.
func NormalizeServiceInfo(id, name, serviceType string) (ServiceInfo, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)

	var st taxonomy.ServiceType
	if serviceType != "" {
		parsed, err := taxonomy.ParseServiceType(serviceType)
		if err != nil {
			return ServiceInfo{}, fmt.Errorf("service info %q: %w", id, err)
		}
		st = parsed
	}

	if id != "" {
		entry, ok := taxonomy.Lookup(id)
		if !ok {
			return ServiceInfo{ServiceID: taxonomy.ServiceIDInvalid, Name: name, ServiceType: st}, nil
		}
		if name == "" {
			name = entry.Name
		}
		return ServiceInfo{ServiceID: entry.ID, Name: name, ServiceType: entry.Type}, nil
	}

	if name != "" {
		if entry, ok := taxonomy.LookupName(name); ok {
			return ServiceInfo{ServiceID: entry.ID, Name: name, ServiceType: entry.Type}, nil
		}
	}
	return ServiceInfo{ServiceID: taxonomy.ServiceIDInvalid, Name: name, ServiceType: st}, nil
}

func (s *ServiceInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		ServiceID   string `json:"serviceId"`
		Name        string `json:"name"`
		ServiceType string `json:"serviceType"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	info, err := NormalizeServiceInfo(raw.ServiceID, raw.Name, raw.ServiceType)
	if err != nil {
		return err
	}
	*s = info
	return nil
}
