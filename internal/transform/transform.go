// Package transform holds the rules both API versions share when mapping the
// canonical facility model to and from its external shapes.
package transform

import (
	"net/url"
	"strings"

	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/taxonomy"
)

// DeriveOperatingStatus returns a copy of explicit when present; otherwise
// CLOSED for a temporarily closed facility and NORMAL for anything else.
func DeriveOperatingStatus(explicit *model.OperatingStatus, active model.ActiveStatus) *model.OperatingStatus {
	if explicit != nil {
		c := explicit.Clone()
		return &c
	}
	if active == model.ActiveStatusTemporary {
		return &model.OperatingStatus{Code: model.StatusClosed}
	}
	return &model.OperatingStatus{Code: model.StatusNormal}
}

// IncludeInFacilityList reports whether a tag belongs in a facility's headline
// service list. CMS-sourced services live in the overlay, except Covid-19.
func IncludeInFacilityList(source model.Source, serviceID string) bool {
	return source != model.SourceCMS || serviceID == taxonomy.Covid19VaccineID
}

// ServicePath is the facility-relative path of one detailed service.
func ServicePath(facilityID, serviceID string) string {
	return "/facilities/" + url.PathEscape(facilityID) + "/services/" + url.PathEscape(serviceID)
}

// ServiceLink joins the linker base URL and ServicePath.
func ServiceLink(base, facilityID, serviceID string) string {
	return strings.TrimRight(base, "/") + ServicePath(facilityID, serviceID)
}

// Resolve finds the family value a tag refers to, by id first and then by the
// tag's own literal. Tags that resolve neither way are not in the family.
func Resolve[T taxonomy.Kind](fam *taxonomy.Family[T], s model.Service[T]) (T, bool) {
	if v, ok := fam.FromServiceID(s.ServiceID); ok {
		return v, true
	}
	if v, err := fam.FromName(string(s.ServiceType)); err == nil {
		return v, true
	}
	var zero T
	return zero, false
}

// FacilityList maps a canonical family list to its external form. Tags that
// fail IncludeInFacilityList or do not resolve in fam are omitted; order is
// preserved.
func FacilityList[T taxonomy.Kind, E any](fam *taxonomy.Family[T], in []model.Service[T], conv func(T, model.Service[T]) E) []E {
	var out []E
	for _, s := range in {
		if !IncludeInFacilityList(s.Source, s.ServiceID) {
			continue
		}
		v, ok := Resolve(fam, s)
		if !ok {
			continue
		}
		out = append(out, conv(v, s))
	}
	return out
}

// FromNames builds canonical tags from a list of service names. Unknown
// names are omitted; the result is sorted and deduplicated by id.
func FromNames[T taxonomy.Kind](fam *taxonomy.Family[T], names []string) []model.Service[T] {
	out := make([]model.Service[T], 0, len(names))
	for _, n := range names {
		v, err := fam.FromName(n)
		if err != nil {
			continue
		}
		out = append(out, model.NewService(v, "", ""))
	}
	if len(out) == 0 {
		return nil
	}
	return model.SortServices(out)
}

// MapSlice applies f to every element. A nil input stays nil.
func MapSlice[S, D any](in []S, f func(S) D) []D {
	if in == nil {
		return nil
	}
	out := make([]D, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
