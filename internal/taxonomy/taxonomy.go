// Package taxonomy holds the fixed catalog of services a facility can offer.
//
// The catalog is split into three disjoint families (health, benefits, other).
// Service ids are the durable contract used in persisted overlays and links;
// names carry historical churn, so a handful of pre-rename names and ids keep
// resolving to their current entries.
package taxonomy

import (
	"errors"
	"fmt"
	"strings"
)

// ServiceIDInvalid marks a service whose id did not resolve in any family.
const ServiceIDInvalid = "INVALID"

// Covid19VaccineID is the id of the one CMS-sourced service that is mirrored
// onto the facility summary.
const Covid19VaccineID = "covid19Vaccine"

// Covid19VaccineAltName is the display name CMS uses for Covid19Vaccine.
const Covid19VaccineAltName = "COVID-19 vaccines"

var (
	ErrUnknownServiceType = errors.New("unknown service type")
	ErrUnknownServiceName = errors.New("unknown service name")
)

// ServiceType names a service family.
type ServiceType string

const (
	TypeHealth   ServiceType = "health"
	TypeBenefits ServiceType = "benefits"
	TypeOther    ServiceType = "other"
)

// ParseServiceType is case-sensitive. There is no sentinel service type, so an
// unknown literal is an error rather than a value.
func ParseServiceType(s string) (ServiceType, error) {
	switch ServiceType(s) {
	case TypeHealth, TypeBenefits, TypeOther:
		return ServiceType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownServiceType, s)
}

// Kind is satisfied by the three family types.
type Kind interface {
	HealthService | BenefitsService | OtherService
	ServiceID() string
	Name() string
	Type() ServiceType
}

// Entry is a family-agnostic view of one catalog service.
type Entry struct {
	ID   string
	Name string
	Type ServiceType
}

// Family is the lookup table for one service family. Tables are built once
// and never mutated afterwards.
type Family[T ~string] struct {
	serviceType ServiceType
	ordered     []T
	idOf        map[T]string
	byID        map[string]T
	byName      map[string]T // lowercased literal or alias
}

type pair[T ~string] struct {
	value T
	id    string
}

func newFamily[T ~string](st ServiceType, pairs []pair[T]) *Family[T] {
	f := &Family[T]{
		serviceType: st,
		ordered:     make([]T, 0, len(pairs)),
		idOf:        make(map[T]string, len(pairs)),
		byID:        make(map[string]T, len(pairs)),
		byName:      make(map[string]T, len(pairs)),
	}
	for _, p := range pairs {
		f.ordered = append(f.ordered, p.value)
		f.idOf[p.value] = p.id
		f.byID[p.id] = p.value
		f.byName[strings.ToLower(string(p.value))] = p.value
	}
	return f
}

// aliasID registers a legacy id. Legacy ids resolve but are never canonical.
func (f *Family[T]) aliasID(id string, to T) {
	f.byID[id] = to
}

func (f *Family[T]) aliasName(name string, to T) {
	f.byName[strings.ToLower(name)] = to
}

// Type returns the family's service type.
func (f *Family[T]) Type() ServiceType { return f.serviceType }

// All returns the family's services in declaration order.
func (f *Family[T]) All() []T {
	return append([]T(nil), f.ordered...)
}

// FromServiceID is an exact match on id, including legacy ids.
func (f *Family[T]) FromServiceID(id string) (T, bool) {
	v, ok := f.byID[id]
	return v, ok
}

// FromName matches case-insensitively. Callers that cannot tolerate an error
// should check IsRecognizedServiceName first.
func (f *Family[T]) FromName(name string) (T, error) {
	if v, ok := f.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s service %q", ErrUnknownServiceName, f.serviceType, name)
}

func (f *Family[T]) IsRecognizedServiceID(id string) bool {
	_, ok := f.byID[id]
	return ok
}

func (f *Family[T]) IsRecognizedServiceName(name string) bool {
	_, ok := f.byName[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// ServiceID returns the canonical id of v, or ServiceIDInvalid.
func (f *Family[T]) ServiceID(v T) string {
	if id, ok := f.idOf[v]; ok {
		return id
	}
	return ServiceIDInvalid
}

func (f *Family[T]) entry(v T) Entry {
	return Entry{ID: f.ServiceID(v), Name: string(v), Type: f.serviceType}
}

// Lookup resolves id against every family.
func Lookup(id string) (Entry, bool) {
	if v, ok := Health.FromServiceID(id); ok {
		return Health.entry(v), true
	}
	if v, ok := Benefits.FromServiceID(id); ok {
		return Benefits.entry(v), true
	}
	if v, ok := Other.FromServiceID(id); ok {
		return Other.entry(v), true
	}
	return Entry{}, false
}

// LookupName resolves a service name against every family.
func LookupName(name string) (Entry, bool) {
	if v, err := Health.FromName(name); err == nil {
		return Health.entry(v), true
	}
	if v, err := Benefits.FromName(name); err == nil {
		return Benefits.entry(v), true
	}
	if v, err := Other.FromName(name); err == nil {
		return Other.entry(v), true
	}
	return Entry{}, false
}

// IsRecognizedServiceID reports whether id resolves in any family.
func IsRecognizedServiceID(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// IsRecognizedServiceName reports whether name resolves in any family.
func IsRecognizedServiceName(name string) bool {
	return Health.IsRecognizedServiceName(name) ||
		Benefits.IsRecognizedServiceName(name) ||
		Other.IsRecognizedServiceName(name)
}

// Entries lists every canonical service across the three families.
func Entries() []Entry {
	out := make([]Entry, 0, len(Health.ordered)+len(Benefits.ordered)+len(Other.ordered))
	for _, v := range Health.ordered {
		out = append(out, Health.entry(v))
	}
	for _, v := range Benefits.ordered {
		out = append(out, Benefits.entry(v))
	}
	for _, v := range Other.ordered {
		out = append(out, Other.entry(v))
	}
	return out
}
