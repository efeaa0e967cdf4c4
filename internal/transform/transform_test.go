package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/taxonomy"
)

func TestDeriveOperatingStatus(t *testing.T) {
	assert.Equal(t, model.StatusClosed, DeriveOperatingStatus(nil, model.ActiveStatusTemporary).Code)
	assert.Equal(t, model.StatusNormal, DeriveOperatingStatus(nil, model.ActiveStatusActive).Code)
	assert.Equal(t, model.StatusNormal, DeriveOperatingStatus(nil, "").Code)

	explicit := &model.OperatingStatus{
		Code:               model.StatusLimited,
		AdditionalInfo:     "Parking garage closed",
		SupplementalStatus: []model.SupplementalStatus{{ID: "COVID_HIGH", Label: "COVID-19 health protection: Levels high"}},
	}
	got := DeriveOperatingStatus(explicit, model.ActiveStatusTemporary)
	require.NotNil(t, got)
	assert.Equal(t, *explicit, *got)

	got.SupplementalStatus[0].Label = "changed"
	assert.Equal(t, "COVID-19 health protection: Levels high", explicit.SupplementalStatus[0].Label, "result must not alias input")
}

func TestIncludeInFacilityList(t *testing.T) {
	assert.True(t, IncludeInFacilityList(model.SourceATC, "primaryCare"))
	assert.True(t, IncludeInFacilityList("", "primaryCare"))
	assert.False(t, IncludeInFacilityList(model.SourceCMS, "primaryCare"))
	assert.True(t, IncludeInFacilityList(model.SourceCMS, taxonomy.Covid19VaccineID))
}

func TestServiceLink(t *testing.T) {
	assert.Equal(t, "/facilities/vha_688/services/covid19Vaccine", ServicePath("vha_688", "covid19Vaccine"))
	assert.Equal(t,
		"https://api.va.gov/services/va_facilities/v1/facilities/vha_688/services/dental",
		ServiceLink("https://api.va.gov/services/va_facilities/v1/", "vha_688", "dental"))
	assert.Equal(t, ServiceLink("http://x", "a", "b"), ServiceLink("http://x/", "a", "b"))
}

func TestFacilityListOmitsUnresolvedAndCMS(t *testing.T) {
	in := model.HealthServices{
		model.NewService(taxonomy.Audiology, "", model.SourceATC),
		{ServiceType: "Bogus", Name: "Bogus", ServiceID: "bogus", Source: model.SourceATC},
		model.NewService(taxonomy.Dental, "", model.SourceCMS),
		model.NewService(taxonomy.Covid19Vaccine, "", model.SourceCMS),
	}
	got := FacilityList(taxonomy.Health, in, func(v taxonomy.HealthService, _ model.Service[taxonomy.HealthService]) string {
		return v.ServiceID()
	})
	assert.Equal(t, []string{"audiology", "covid19Vaccine"}, got)
}

func TestResolveFallsBackToLiteral(t *testing.T) {
	s := model.Service[taxonomy.BenefitsService]{ServiceType: taxonomy.Pensions, ServiceID: "stale"}
	v, ok := Resolve(taxonomy.Benefits, s)
	require.True(t, ok)
	assert.Equal(t, taxonomy.Pensions, v)
}

func TestFromNames(t *testing.T) {
	got := FromNames(taxonomy.Health, []string{"PrimaryCare", "DentalServices", "nope", "dental"})
	require.Len(t, got, 2)
	assert.Equal(t, "dental", got[0].ServiceID)
	assert.Equal(t, "primaryCare", got[1].ServiceID)
	assert.Nil(t, FromNames(taxonomy.Other, []string{"nope"}))
}
