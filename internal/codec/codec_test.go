package codec

import (
	"errors"
	"testing"

	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/taxonomy"
)

func strPtr(s string) *string { return &s }

func TestNullSafety(t *testing.T) {
	if s, err := EncodeCore(nil); s != nil || err != nil {
		t.Errorf("EncodeCore(nil) = %v, %v", s, err)
	}
	if s, _ := EncodeCore(&model.Core{}); s != nil {
		t.Errorf("EncodeCore(empty) = %q", *s)
	}
	if s, _ := EncodeOperatingStatus(nil); s != nil {
		t.Error("EncodeOperatingStatus(nil) should be nil")
	}
	if s, _ := EncodeDetailedServices([]model.DetailedService{}); s != nil {
		t.Error("EncodeDetailedServices(empty) should be nil")
	}
	if s, _ := EncodeHealthCareSystem(nil); s != nil {
		t.Error("EncodeHealthCareSystem(nil) should be nil")
	}

	if v, err := DecodeCore(nil); v != nil || err != nil {
		t.Errorf("DecodeCore(nil) = %v, %v", v, err)
	}
	if v, err := DecodeOperatingStatus(nil); v != nil || err != nil {
		t.Errorf("DecodeOperatingStatus(nil) = %v, %v", v, err)
	}
	if v, err := DecodeDetailedServices(nil); v != nil || err != nil {
		t.Errorf("DecodeDetailedServices(nil) = %v, %v", v, err)
	}
	if v, err := DecodeHealthCareSystem(strPtr("")); v != nil || err != nil {
		t.Errorf("DecodeHealthCareSystem(\"\") = %v, %v", v, err)
	}
}

func TestDecodeDetailedServicesDropsMissingServiceInfo(t *testing.T) {
	raw := `[{"active":true,"path":"/x"},{"serviceInfo":{"serviceId":"dental"},"active":true}]`
	got, err := DecodeDetailedServices(&raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].ServiceID() != "dental" {
		t.Fatalf("got %+v", got)
	}
}

func TestDecodeDetailedServicesBadServiceType(t *testing.T) {
	raw := `[{"serviceInfo":{"serviceId":"pensions","serviceType":"bar"}}]`
	_, err := DecodeDetailedServices(&raw)
	if !errors.Is(err, taxonomy.ErrUnknownServiceType) {
		t.Fatalf("expected ErrUnknownServiceType, got %v", err)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	in := model.CmsOverlay{
		Core:            &model.Core{FacilityURL: "https://www.va.gov/boston"},
		OperatingStatus: &model.OperatingStatus{Code: model.StatusLimited, AdditionalInfo: "Reduced hours"},
		DetailedServices: model.Some([]model.DetailedService{{
			ServiceInfo: &model.ServiceInfo{ServiceID: "covid19Vaccine", Name: "COVID-19 vaccines", ServiceType: taxonomy.TypeHealth},
			Active:      true,
		}}),
		HealthCareSystem: &model.HealthCareSystem{Name: "VA Boston", VAHealthConnectPhone: "555-555-5555"},
	}
	rec, err := RecordFromOverlay("vha_523", in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if rec.ID != "vha_523" || rec.Core == nil || rec.Services == nil {
		t.Fatalf("unexpected record %+v", rec)
	}
	out, err := rec.Overlay()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Core.FacilityURL != in.Core.FacilityURL {
		t.Errorf("core = %+v", out.Core)
	}
	if out.OperatingStatus.Code != model.StatusLimited {
		t.Errorf("operating status = %+v", out.OperatingStatus)
	}
	services, ok := out.DetailedServices.Get()
	if !ok || len(services) != 1 || services[0].Name() != "COVID-19 vaccines" {
		t.Errorf("services = %+v", services)
	}
	if out.HealthCareSystem.Name != "VA Boston" {
		t.Errorf("system = %+v", out.HealthCareSystem)
	}
}

func TestRecordWithoutServicesLeavesThemUnset(t *testing.T) {
	out, err := Record{ID: "vha_1"}.Overlay()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.DetailedServices.IsSet() || out.Core != nil || out.OperatingStatus != nil {
		t.Errorf("expected empty overlay, got %+v", out)
	}
}
