package model

import (
	"sort"

	"github.com/gyeh/facilities/internal/taxonomy"
)

// Source names the upstream authority that asserted a facility-level service.
type Source string

const (
	SourceATC      Source = "ATC"
	SourceDST      Source = "DST"
	SourceCMS      Source = "CMS"
	SourceBISL     Source = "BISL"
	SourceInternal Source = "internal"
)

// Service is the lightweight tag attached to a facility's service lists.
type Service[T taxonomy.Kind] struct {
	ServiceType T      `json:"serviceType"`
	Name        string `json:"name"`
	ServiceID   string `json:"serviceId"`
	Source      Source `json:"source,omitempty"`
}

// NewService builds a tag for v with the given display name; an empty name
// falls back to the canonical literal.
func NewService[T taxonomy.Kind](v T, name string, source Source) Service[T] {
	if name == "" {
		name = v.Name()
	}
	return Service[T]{ServiceType: v, Name: name, ServiceID: v.ServiceID(), Source: source}
}

// SortServices orders tags by service id and drops duplicate ids, keeping the
// first occurrence.
func SortServices[T taxonomy.Kind](in []Service[T]) []Service[T] {
	seen := make(map[string]struct{}, len(in))
	out := make([]Service[T], 0, len(in))
	for _, s := range in {
		if _, dup := seen[s.ServiceID]; dup {
			continue
		}
		seen[s.ServiceID] = struct{}{}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ServiceID < out[j].ServiceID })
	return out
}

type HealthServices = []Service[taxonomy.HealthService]
type BenefitsServices = []Service[taxonomy.BenefitsService]
type OtherServices = []Service[taxonomy.OtherService]

// Services groups a facility's service tags by family.
type Services struct {
	Health      HealthServices   `json:"health,omitempty"`
	Benefits    BenefitsServices `json:"benefits,omitempty"`
	Other       OtherServices    `json:"other,omitempty"`
	LastUpdated string           `json:"lastUpdated,omitempty"`
}
