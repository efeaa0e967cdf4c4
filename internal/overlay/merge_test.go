package overlay

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/taxonomy"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func svc(id string, active bool) model.DetailedService {
	info, err := model.NormalizeServiceInfo(id, "", "")
	if err != nil {
		panic(err)
	}
	return model.DetailedService{ServiceInfo: &info, Active: active}
}

func names(services []model.DetailedService) []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = s.Name()
	}
	return out
}

func TestFindServicesToSave_Deactivation(t *testing.T) {
	prev := []model.DetailedService{svc("audiology", true), svc("cardiology", true)}
	got := FindServicesToSave(prev, []model.DetailedService{svc("cardiology", false)}, "vha_688", now)
	assert.Equal(t, []string{"Audiology"}, names(got))
}

func TestFindServicesToSave_MatchesOnNameNotID(t *testing.T) {
	info, err := model.NormalizeServiceInfo("dental", "Dental care", "")
	require.NoError(t, err)
	require.Equal(t, "dental", info.ServiceID)
	require.Equal(t, "Dental care", info.Name)

	prev := []model.DetailedService{svc("dental", true)}
	incoming := []model.DetailedService{{ServiceInfo: &info, Active: false}}
	got := FindServicesToSave(prev, incoming, "vha_688", now)
	assert.Equal(t, []string{"Dental"}, names(got))
}

func TestFindServicesToSave_Activation(t *testing.T) {
	prev := []model.DetailedService{svc("cardiology", true), svc("audiology", true)}
	got := FindServicesToSave(prev, []model.DetailedService{svc("bereavement", true)}, "vha_688", now)
	assert.Equal(t, []string{"Audiology", "Bereavement", "Cardiology"}, names(got))
}

func TestFindServicesToSave_ReplacesWholeEntry(t *testing.T) {
	old := svc("dental", true)
	old.DescriptionFacility = "old text"
	old.AppointmentPhones = []model.AppointmentPhoneNumber{{Number: "555-0100"}}
	updated := svc("dental", true)
	updated.DescriptionFacility = "new text"

	got := FindServicesToSave([]model.DetailedService{old}, []model.DetailedService{updated}, "vha_688", now)
	require.Len(t, got, 1)
	assert.Equal(t, "new text", got[0].DescriptionFacility)
	assert.Nil(t, got[0].AppointmentPhones, "no field-level patching")
}

func TestFindServicesToSave_PathsAndTimestamps(t *testing.T) {
	got := ActiveServicesFromOverlay([]model.DetailedService{svc("covid19Vaccine", true)}, "vha_688", now)
	require.Len(t, got, 1)
	assert.Equal(t, "/facilities/vha_688/services/covid19Vaccine", got[0].Path)
	require.NotNil(t, got[0].LastUpdated)
	assert.True(t, now.Equal(*got[0].LastUpdated))
}

func TestFindServicesToSave_DoesNotMutateInputs(t *testing.T) {
	prev := []model.DetailedService{svc("audiology", true)}
	incoming := []model.DetailedService{svc("bereavement", true)}
	FindServicesToSave(prev, incoming, "vha_688", now)
	assert.Empty(t, prev[0].Path)
	assert.Nil(t, incoming[0].LastUpdated)
}

func TestMergeIdempotent(t *testing.T) {
	incoming := model.CmsOverlay{DetailedServices: model.Some([]model.DetailedService{
		svc("dental", true), svc("audiology", true), svc("cardiology", false),
	})}

	first := Merge(Input{FacilityID: "vha_688", Incoming: incoming, Now: now})
	second := Merge(Input{FacilityID: "vha_688", PrevOverlay: &first.Overlay, Incoming: incoming, Now: now.Add(time.Hour)})

	a, _ := first.Overlay.DetailedServices.Get()
	b, _ := second.Overlay.DetailedServices.Get()
	assert.Equal(t, []string{"Audiology", "Dental"}, names(a))
	assert.Equal(t, a, b, "unchanged services keep their timestamps")
}

func TestMergeFirstOverlayActiveOnly(t *testing.T) {
	res := Merge(Input{
		FacilityID: "vha_688",
		Incoming: model.CmsOverlay{DetailedServices: model.Some([]model.DetailedService{
			svc("dental", true), svc("audiology", false),
		})},
		Now: now,
	})
	got, ok := res.Overlay.DetailedServices.Get()
	require.True(t, ok)
	assert.Equal(t, []string{"Dental"}, names(got))
	assert.Equal(t, Stats{Kept: 0, Added: 1, Dropped: 1}, res.Stats)
}

func TestSentinelOmission(t *testing.T) {
	var ds model.DetailedService
	require.NoError(t, json.Unmarshal([]byte(`{"serviceInfo":{"serviceId":"foo","serviceType":"health"},"active":true}`), &ds))
	assert.Equal(t, taxonomy.ServiceIDInvalid, ds.ServiceID())

	filtered := FilterRecognized([]model.DetailedService{ds, svc("dental", true), {Active: true}})
	assert.Equal(t, []string{"Dental"}, names(filtered))

	facility := model.Facility{ID: "vha_688"}
	res := Merge(Input{
		FacilityID:   "vha_688",
		PrevFacility: &facility,
		Incoming:     model.CmsOverlay{DetailedServices: model.Some([]model.DetailedService{ds})},
		Now:          now,
	})
	assert.Empty(t, res.Overlay.DetailedServices.OrZero())
	assert.Nil(t, res.Facility.Attributes.Services)
	assert.Equal(t, 1, res.Stats.Dropped)
}

func TestHardFailureOnBadServiceType(t *testing.T) {
	var o model.CmsOverlay
	err := json.Unmarshal([]byte(`{"detailed_services":[{"serviceInfo":{"serviceId":"pensions","serviceType":"bar"}}]}`), &o)
	require.Error(t, err)
	assert.ErrorIs(t, err, taxonomy.ErrUnknownServiceType)
}

func TestOperatingStatusCrossField(t *testing.T) {
	for code, want := range map[model.OperatingStatusCode]model.ActiveStatus{
		model.StatusClosed:  model.ActiveStatusTemporary,
		model.StatusNormal:  model.ActiveStatusActive,
		model.StatusNotice:  model.ActiveStatusActive,
		model.StatusLimited: model.ActiveStatusActive,
	} {
		facility := model.Facility{ID: "vha_688", Attributes: model.FacilityAttributes{ActiveStatus: model.ActiveStatusActive}}
		if want == model.ActiveStatusActive {
			facility.Attributes.ActiveStatus = model.ActiveStatusTemporary
		}
		res := Merge(Input{
			FacilityID:   "vha_688",
			PrevFacility: &facility,
			Incoming:     model.CmsOverlay{OperatingStatus: &model.OperatingStatus{Code: code}},
			Now:          now,
		})
		require.NotNil(t, res.Facility)
		assert.Equal(t, want, res.Facility.Attributes.ActiveStatus, string(code))
		assert.Equal(t, code, res.Facility.Attributes.OperatingStatus.Code)
		assert.Equal(t, code, res.Overlay.OperatingStatus.Code)
	}
}

func TestScenarioCovidFirstOverlay(t *testing.T) {
	facility := model.Facility{
		ID: "vha_688",
		Attributes: model.FacilityAttributes{
			Services: &model.Services{Health: model.HealthServices{model.NewService(taxonomy.PrimaryCare, "", model.SourceATC)}},
		},
	}
	prev := model.CmsOverlay{DetailedServices: model.Some([]model.DetailedService{})}

	var incoming model.CmsOverlay
	require.NoError(t, json.Unmarshal([]byte(`{"detailed_services":[{"serviceInfo":{"serviceId":"covid19Vaccine"},"active":true}]}`), &incoming))

	res := Merge(Input{FacilityID: "vha_688", PrevOverlay: &prev, PrevFacility: &facility, Incoming: incoming, Now: now})

	merged := res.Overlay.DetailedServices.OrZero()
	require.Len(t, merged, 1)
	assert.Equal(t, taxonomy.Covid19VaccineID, merged[0].ServiceID())

	health := res.Facility.Attributes.Services.Health
	require.Len(t, health, 2)
	assert.Equal(t, taxonomy.Covid19Vaccine, health[0].ServiceType)
	assert.Equal(t, model.SourceCMS, health[0].Source)
	assert.Equal(t, taxonomy.PrimaryCare, health[1].ServiceType)
	assert.Equal(t, "2024-03-01", res.Facility.Attributes.Services.LastUpdated)

	assert.Equal(t, merged, res.Facility.Attributes.DetailedServices)
	assert.Nil(t, facility.Attributes.DetailedServices, "previous facility is not mutated")
	assert.Len(t, facility.Attributes.Services.Health, 1)
}

func TestScenarioInactiveWithoutPriorOverlay(t *testing.T) {
	facility := model.Facility{
		ID: "vha_688",
		Attributes: model.FacilityAttributes{
			Services: &model.Services{
				Health:      model.HealthServices{model.NewService(taxonomy.PrimaryCare, "", model.SourceATC)},
				LastUpdated: "2023-01-01",
			},
		},
	}
	var incoming model.CmsOverlay
	require.NoError(t, json.Unmarshal([]byte(`{"detailed_services":[{"serviceInfo":{"serviceId":"onlineScheduling","serviceType":"other"},"active":false}]}`), &incoming))

	res := Merge(Input{FacilityID: "vha_688", PrevFacility: &facility, Incoming: incoming, Now: now})

	merged, ok := res.Overlay.DetailedServices.Get()
	require.True(t, ok)
	assert.Empty(t, merged)
	assert.Equal(t, facility.Attributes.Services, res.Facility.Attributes.Services)
}

func TestDeriveFacilityServicesRemovesInactive(t *testing.T) {
	current := &model.Services{
		Health: model.HealthServices{
			model.NewService(taxonomy.Dental, "", model.SourceCMS),
			model.NewService(taxonomy.PrimaryCare, "", model.SourceATC),
		},
		Benefits: model.BenefitsServices{model.NewService(taxonomy.Pensions, "", model.SourceBISL)},
	}
	merged := []model.DetailedService{svc("onlineScheduling", true)}
	incoming := []model.DetailedService{svc("dental", false), svc("onlineScheduling", true)}

	got := DeriveFacilityServices(current, merged, incoming, nil, now)
	require.Len(t, got.Health, 1)
	assert.Equal(t, "primaryCare", got.Health[0].ServiceID)
	assert.Equal(t, current.Benefits, got.Benefits)
	require.Len(t, got.Other, 1)
	assert.Equal(t, model.SourceCMS, got.Other[0].Source)
	assert.Len(t, current.Health, 2, "input untouched")
}

type fixedNames map[string]string

func (f fixedNames) ServiceName(id string) (string, bool) {
	n, ok := f[id]
	return n, ok
}

func TestDeriveFacilityServicesUsesDisplayNames(t *testing.T) {
	got := DeriveFacilityServices(nil, []model.DetailedService{svc("covid19Vaccine", true)}, nil,
		fixedNames{"covid19Vaccine": taxonomy.Covid19VaccineAltName}, now)
	require.Len(t, got.Health, 1)
	assert.Equal(t, taxonomy.Covid19VaccineAltName, got.Health[0].Name)
}

func TestDeriveFacilityServicesKeepsExistingOnCollision(t *testing.T) {
	current := &model.Services{Health: model.HealthServices{model.NewService(taxonomy.Dental, "", model.SourceATC)}}
	got := DeriveFacilityServices(current, []model.DetailedService{svc("dental", true)}, nil, nil, now)
	require.Len(t, got.Health, 1)
	assert.Equal(t, model.SourceATC, got.Health[0].Source)
	assert.Empty(t, got.LastUpdated, "no change, no stamp")
}

func TestMergeKeepsAbsentFragments(t *testing.T) {
	prev := model.CmsOverlay{
		Core:             &model.Core{FacilityURL: "https://www.va.gov/old"},
		OperatingStatus:  &model.OperatingStatus{Code: model.StatusNotice},
		HealthCareSystem: &model.HealthCareSystem{Name: "VA Maine health care"},
		DetailedServices: model.Some([]model.DetailedService{svc("dental", true)}),
	}
	facility := model.Facility{ID: "vha_402", Attributes: model.FacilityAttributes{
		Services: &model.Services{Health: model.HealthServices{model.NewService(taxonomy.Dental, "", model.SourceCMS)}},
	}}
	res := Merge(Input{
		FacilityID:   "vha_402",
		PrevOverlay:  &prev,
		PrevFacility: &facility,
		Incoming:     model.CmsOverlay{Core: &model.Core{FacilityURL: "https://www.va.gov/maine-health-care"}},
		Now:          now,
	})
	assert.Equal(t, "https://www.va.gov/maine-health-care", res.Overlay.Core.FacilityURL)
	assert.Equal(t, model.StatusNotice, res.Overlay.OperatingStatus.Code)
	assert.Equal(t, "VA Maine health care", res.Overlay.HealthCareSystem.Name)
	assert.Equal(t, []string{"Dental"}, names(res.Overlay.DetailedServices.OrZero()))
	assert.Equal(t, facility.Attributes.Services, res.Facility.Attributes.Services)
	assert.Equal(t, "https://www.va.gov/maine-health-care", res.Facility.Attributes.Website)
}

func TestMergeExplicitEmptyKeepsPrevious(t *testing.T) {
	prev := model.CmsOverlay{DetailedServices: model.Some([]model.DetailedService{svc("dental", true)})}
	res := Merge(Input{
		FacilityID:  "vha_402",
		PrevOverlay: &prev,
		Incoming:    model.CmsOverlay{DetailedServices: model.Some([]model.DetailedService{})},
		Now:         now,
	})
	assert.Equal(t, []string{"Dental"}, names(res.Overlay.DetailedServices.OrZero()),
		"an empty submission names nothing, so previous services survive")
}
