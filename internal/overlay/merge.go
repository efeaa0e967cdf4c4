// Package overlay merges operator-submitted CMS overlays into previously
// persisted overlay and facility state.
//
// The functions in this file are pure: they read their inputs, never mutate
// them, and hold no state between calls. Service wraps them in a
// read-merge-write cycle against a store.
package overlay

import (
	"reflect"
	"sort"
	"time"

	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/taxonomy"
	"github.com/gyeh/facilities/internal/transform"
)

// NameResolver supplies display names for facility-level service tags.
type NameResolver interface {
	ServiceName(id string) (string, bool)
}

// Stats counts what a merge did to the detailed services.
type Stats struct {
	Kept    int // previously persisted and untouched by the submission
	Added   int // active in the submission
	Dropped int // inactive in the submission, or unrecognized
}

// FindServicesToSave computes the persisted detailed services after a
// submission. Previous services survive unless the submission names them;
// submitted services are kept only when active. Matching is by name.
// The result is sorted by name.
func FindServicesToSave(prev, incoming []model.DetailedService, facilityID string, now time.Time) []model.DetailedService {
	incomingNames := make(map[string]struct{}, len(incoming))
	for _, s := range incoming {
		incomingNames[s.Name()] = struct{}{}
	}
	prevByName := make(map[string]model.DetailedService, len(prev))
	out := make([]model.DetailedService, 0, len(prev)+len(incoming))
	for _, s := range prev {
		prevByName[s.Name()] = s
		if _, touched := incomingNames[s.Name()]; touched {
			continue
		}
		out = append(out, s.Clone())
	}
	for _, s := range incoming {
		if !s.Active {
			continue
		}
		out = append(out, stamp(s, prevByName, now))
	}
	return finish(out, facilityID)
}

// ActiveServicesFromOverlay is FindServicesToSave for a facility with no
// previous overlay.
func ActiveServicesFromOverlay(incoming []model.DetailedService, facilityID string, now time.Time) []model.DetailedService {
	out := make([]model.DetailedService, 0, len(incoming))
	for _, s := range incoming {
		if s.Active {
			out = append(out, stamp(s, nil, now))
		}
	}
	return finish(out, facilityID)
}

// stamp copies s and sets LastUpdated to now, unless s is unchanged from the
// previous entry of the same name, whose timestamp is carried over.
func stamp(s model.DetailedService, prevByName map[string]model.DetailedService, now time.Time) model.DetailedService {
	cp := s.Clone()
	if p, ok := prevByName[s.Name()]; ok && sameContent(p, s) && p.LastUpdated != nil {
		t := *p.LastUpdated
		cp.LastUpdated = &t
		return cp
	}
	t := now.UTC()
	cp.LastUpdated = &t
	return cp
}

func sameContent(a, b model.DetailedService) bool {
	a.LastUpdated, b.LastUpdated = nil, nil
	a.Path, b.Path = "", ""
	return reflect.DeepEqual(a, b)
}

func finish(services []model.DetailedService, facilityID string) []model.DetailedService {
	for i := range services {
		services[i].Path = transform.ServicePath(facilityID, services[i].ServiceID())
	}
	sort.SliceStable(services, func(i, j int) bool { return services[i].Name() < services[j].Name() })
	return services
}

// FilterRecognized drops services without serviceInfo or with an id that did
// not resolve in the taxonomy.
func FilterRecognized(services []model.DetailedService) []model.DetailedService {
	out := make([]model.DetailedService, 0, len(services))
	for _, s := range services {
		if s.ServiceInfo == nil || !s.ServiceInfo.Valid() {
			continue
		}
		out = append(out, s)
	}
	return out
}

// DeriveFacilityServices returns the facility's service tags after a merge.
// Tags named inactive by the submission are removed, every active merged
// service is added with source CMS, and existing tags win on id collisions.
// names may be nil.
func DeriveFacilityServices(current *model.Services, merged, incoming []model.DetailedService, names NameResolver, now time.Time) *model.Services {
	inactive := make(map[string]struct{})
	for _, s := range incoming {
		if !s.Active {
			inactive[s.ServiceID()] = struct{}{}
		}
	}
	var cur model.Services
	if current != nil {
		cur = *current
	}
	out := &model.Services{
		Health:      deriveFamily(taxonomy.Health, cur.Health, merged, inactive, names),
		Benefits:    deriveFamily(taxonomy.Benefits, cur.Benefits, merged, inactive, names),
		Other:       deriveFamily(taxonomy.Other, cur.Other, merged, inactive, names),
		LastUpdated: cur.LastUpdated,
	}
	if current == nil && out.Health == nil && out.Benefits == nil && out.Other == nil {
		return nil
	}
	if !reflect.DeepEqual(cur.Health, out.Health) ||
		!reflect.DeepEqual(cur.Benefits, out.Benefits) ||
		!reflect.DeepEqual(cur.Other, out.Other) {
		out.LastUpdated = now.UTC().Format(time.DateOnly)
	}
	return out
}

func deriveFamily[T taxonomy.Kind](fam *taxonomy.Family[T], current []model.Service[T], merged []model.DetailedService, inactive map[string]struct{}, names NameResolver) []model.Service[T] {
	out := make([]model.Service[T], 0, len(current)+len(merged))
	for _, s := range current {
		if _, drop := inactive[s.ServiceID]; drop {
			continue
		}
		out = append(out, s)
	}
	for _, d := range merged {
		if !d.Active || d.ServiceInfo == nil || d.ServiceInfo.ServiceType != fam.Type() {
			continue
		}
		v, ok := fam.FromServiceID(d.ServiceID())
		if !ok {
			continue
		}
		out = append(out, model.NewService(v, displayName(names, v.ServiceID()), model.SourceCMS))
	}
	if len(out) == 0 {
		return nil
	}
	return model.SortServices(out)
}

func displayName(names NameResolver, id string) string {
	if names == nil {
		return ""
	}
	name, _ := names.ServiceName(id)
	return name
}

// CovidSummary returns the merged services that are mirrored onto the
// facility's detailedServices field: active Covid-19 vaccine entries only.
func CovidSummary(merged []model.DetailedService) []model.DetailedService {
	var out []model.DetailedService
	for _, d := range merged {
		if d.Active && d.ServiceID() == taxonomy.Covid19VaccineID {
			out = append(out, d.Clone())
		}
	}
	return out
}

// ApplyOperatingStatus replaces the facility's operating status and derives
// activeStatus from it: CLOSED is T, every other code is A. A nil status is
// a no-op.
func ApplyOperatingStatus(f *model.Facility, status *model.OperatingStatus) {
	if status == nil {
		return
	}
	cp := status.Clone()
	f.Attributes.OperatingStatus = &cp
	if status.Code == model.StatusClosed {
		f.Attributes.ActiveStatus = model.ActiveStatusTemporary
	} else {
		f.Attributes.ActiveStatus = model.ActiveStatusActive
	}
}

// Input is everything one merge reads. PrevOverlay and PrevFacility are nil
// when nothing is persisted for the id.
type Input struct {
	FacilityID   string
	PrevOverlay  *model.CmsOverlay
	PrevFacility *model.Facility
	Incoming     model.CmsOverlay
	Names        NameResolver
	Now          time.Time
}

// Result is the state to persist. Facility is nil when the facility is
// unknown, in which case only the overlay is written.
type Result struct {
	Overlay  model.CmsOverlay
	Facility *model.Facility
	Stats    Stats
}

// Merge combines a submission with the previous overlay and facility.
// Fragments absent from the submission keep their previous value.
func Merge(in Input) Result {
	var res Result
	if in.PrevOverlay != nil {
		res.Overlay = in.PrevOverlay.Clone()
	}
	inc := in.Incoming
	if inc.Core != nil {
		c := *inc.Core
		res.Overlay.Core = &c
	}
	if inc.OperatingStatus != nil {
		s := inc.OperatingStatus.Clone()
		res.Overlay.OperatingStatus = &s
	}
	if inc.HealthCareSystem != nil {
		h := *inc.HealthCareSystem
		res.Overlay.HealthCareSystem = &h
	}

	submitted, servicesSubmitted := inc.DetailedServices.Get()
	var recognized, merged []model.DetailedService
	if servicesSubmitted {
		recognized = FilterRecognized(submitted)
		prevServices, hadPrev := res.Overlay.DetailedServices.Get()
		if hadPrev {
			merged = FindServicesToSave(prevServices, recognized, in.FacilityID, in.Now)
		} else {
			merged = ActiveServicesFromOverlay(recognized, in.FacilityID, in.Now)
		}
		res.Overlay.DetailedServices = model.Some(merged)

		inactive := countInactive(recognized)
		res.Stats.Added = len(recognized) - inactive
		res.Stats.Kept = len(merged) - res.Stats.Added
		res.Stats.Dropped = len(submitted) - len(recognized) + inactive
	}

	if in.PrevFacility == nil {
		return res
	}
	f := in.PrevFacility.Clone()
	if servicesSubmitted {
		f.Attributes.Services = DeriveFacilityServices(f.Attributes.Services, merged, recognized, in.Names, in.Now)
		f.Attributes.DetailedServices = CovidSummary(merged)
	}
	ApplyOperatingStatus(&f, inc.OperatingStatus)
	if inc.Core != nil && inc.Core.FacilityURL != "" {
		f.Attributes.Website = inc.Core.FacilityURL
	}
	res.Facility = &f
	return res
}

func countInactive(services []model.DetailedService) int {
	n := 0
	for _, s := range services {
		if !s.Active {
			n++
		}
	}
	return n
}
