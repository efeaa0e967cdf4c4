package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/facilities/internal/taxonomy"
)

func TestServiceInfoUnknownIDIsTaggedInvalid(t *testing.T) {
	var ds DetailedService
	err := json.Unmarshal([]byte(`{"serviceInfo":{"serviceId":"foo","serviceType":"health"},"active":true}`), &ds)
	require.NoError(t, err)
	require.NotNil(t, ds.ServiceInfo)
	assert.Equal(t, taxonomy.ServiceIDInvalid, ds.ServiceInfo.ServiceID)
	assert.False(t, ds.ServiceInfo.Valid())
}

func TestServiceInfoBadServiceTypeFails(t *testing.T) {
	var ds DetailedService
	err := json.Unmarshal([]byte(`{"serviceInfo":{"serviceId":"pensions","serviceType":"bar"}}`), &ds)
	require.Error(t, err)
	assert.ErrorIs(t, err, taxonomy.ErrUnknownServiceType)
}

func TestServiceInfoBackfillsFromID(t *testing.T) {
	var info ServiceInfo
	require.NoError(t, json.Unmarshal([]byte(`{"serviceId":"covid19Vaccine"}`), &info))
	assert.Equal(t, ServiceInfo{ServiceID: "covid19Vaccine", Name: "Covid19Vaccine", ServiceType: taxonomy.TypeHealth}, info)
}

func TestServiceInfoLegacyIDIsCanonicalized(t *testing.T) {
	info, err := NormalizeServiceInfo("dentalServices", "", "")
	require.NoError(t, err)
	assert.Equal(t, "dental", info.ServiceID)
	assert.Equal(t, "Dental", info.Name)
}

func TestServiceInfoBackfillsFromName(t *testing.T) {
	info, err := NormalizeServiceInfo("", "COVID-19 vaccines", "")
	require.NoError(t, err)
	assert.Equal(t, taxonomy.Covid19VaccineID, info.ServiceID)
	assert.Equal(t, "COVID-19 vaccines", info.Name)
	assert.Equal(t, taxonomy.TypeHealth, info.ServiceType)
}

func TestDetailedServiceLegacyNameKey(t *testing.T) {
	var ds DetailedService
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Pensions","active":true}`), &ds))
	require.NotNil(t, ds.ServiceInfo)
	assert.Equal(t, "pensions", ds.ServiceInfo.ServiceID)
	assert.Equal(t, taxonomy.TypeBenefits, ds.ServiceInfo.ServiceType)
	assert.True(t, ds.Active)

	// serviceInfo wins over the legacy key.
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Pensions","serviceInfo":{"serviceId":"dental"}}`), &ds))
	assert.Equal(t, "dental", ds.ServiceID())
}

func TestOptionalDistinguishesAbsentFromEmpty(t *testing.T) {
	var absent, null, empty CmsOverlay
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"detailed_services":null}`), &null))
	require.NoError(t, json.Unmarshal([]byte(`{"detailed_services":[]}`), &empty))

	assert.False(t, absent.DetailedServices.IsSet())
	assert.False(t, null.DetailedServices.IsSet())
	assert.True(t, empty.DetailedServices.IsSet())
	assert.Empty(t, empty.DetailedServices.OrZero())

	out, err := json.Marshal(absent)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))
	out, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"detailed_services":[]}`, string(out))
}

func TestSortServicesDedupesByID(t *testing.T) {
	in := HealthServices{
		NewService(taxonomy.Urology, "", SourceATC),
		NewService(taxonomy.Cardiology, "", SourceATC),
		NewService(taxonomy.Urology, "", SourceCMS),
	}
	out := SortServices(in)
	require.Len(t, out, 2)
	assert.Equal(t, "cardiology", out[0].ServiceID)
	assert.Equal(t, "urology", out[1].ServiceID)
	assert.Equal(t, SourceATC, out[1].Source)
}

func TestFacilityCloneIsDeep(t *testing.T) {
	f := Facility{ID: "vha_402", Attributes: FacilityAttributes{
		Services:         &Services{Health: HealthServices{NewService(taxonomy.Dental, "", SourceATC)}},
		OperatingStatus:  &OperatingStatus{Code: StatusNormal},
		DetailedServices: []DetailedService{{ServiceInfo: &ServiceInfo{ServiceID: "dental"}}},
	}}
	cp := f.Clone()
	cp.Attributes.Services.Health[0].Name = "changed"
	cp.Attributes.OperatingStatus.Code = StatusClosed
	cp.Attributes.DetailedServices[0].ServiceInfo.ServiceID = "x"

	assert.Equal(t, "Dental", f.Attributes.Services.Health[0].Name)
	assert.Equal(t, StatusNormal, f.Attributes.OperatingStatus.Code)
	assert.Equal(t, "dental", f.Attributes.DetailedServices[0].ServiceInfo.ServiceID)
}

func TestParseOperatingStatusCode(t *testing.T) {
	for _, s := range []string{"NORMAL", "NOTICE", "LIMITED", "CLOSED"} {
		code, err := ParseOperatingStatusCode(s)
		require.NoError(t, err, s)
		assert.Equal(t, OperatingStatusCode(s), code)
	}
	for _, s := range []string{"closed", "OPEN", ""} {
		_, err := ParseOperatingStatusCode(s)
		assert.ErrorIs(t, err, ErrUnknownOperatingStatus, s)
	}
}
