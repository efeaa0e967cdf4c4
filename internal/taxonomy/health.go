package taxonomy

// HealthService is a health-family service, named by its canonical literal.
type HealthService string

const (
	AdviceNurse            HealthService = "AdviceNurse"
	Allergy                HealthService = "Allergy"
	Amputation             HealthService = "Amputation"
	Audiology              HealthService = "Audiology"
	Bereavement            HealthService = "Bereavement"
	Cardiology             HealthService = "Cardiology"
	CaregiverSupport       HealthService = "CaregiverSupport"
	Covid19Vaccine         HealthService = "Covid19Vaccine"
	Dental                 HealthService = "Dental"
	Dermatology            HealthService = "Dermatology"
	Dialysis               HealthService = "Dialysis"
	EmergencyCare          HealthService = "EmergencyCare"
	Gastroenterology       HealthService = "Gastroenterology"
	Gynecology             HealthService = "Gynecology"
	Hematology             HealthService = "Hematology"
	Homeless               HealthService = "Homeless"
	InfectiousDisease      HealthService = "InfectiousDisease"
	LaboratoryAndPathology HealthService = "LaboratoryAndPathology"
	MentalHealth           HealthService = "MentalHealth"
	MinorityCare           HealthService = "MinorityCare"
	Nephrology             HealthService = "Nephrology"
	Neurology              HealthService = "Neurology"
	Nutrition              HealthService = "Nutrition"
	Oncology               HealthService = "Oncology"
	Ophthalmology          HealthService = "Ophthalmology"
	Optometry              HealthService = "Optometry"
	Orthopedics            HealthService = "Orthopedics"
	Pharmacy               HealthService = "Pharmacy"
	PhysicalTherapy        HealthService = "PhysicalTherapy"
	Podiatry               HealthService = "Podiatry"
	PrimaryCare            HealthService = "PrimaryCare"
	Radiology              HealthService = "Radiology"
	Rehabilitation         HealthService = "Rehabilitation"
	Rheumatology           HealthService = "Rheumatology"
	SpecialtyCare          HealthService = "SpecialtyCare"
	SleepMedicine          HealthService = "SleepMedicine"
	UrgentCare             HealthService = "UrgentCare"
	Urology                HealthService = "Urology"
	WomensHealth           HealthService = "WomensHealth"
)

// Pre-rename names and ids that still resolve.
const (
	LegacyDentalName       = "DentalServices"
	LegacyDentalID         = "dentalServices"
	LegacyMentalHealthName = "MentalHealthCare"
	LegacyMentalHealthID   = "mentalHealthCare"
)

var Health = newHealthFamily()

func newHealthFamily() *Family[HealthService] {
	f := newFamily(TypeHealth, []pair[HealthService]{
		{AdviceNurse, "adviceNurse"},
		{Allergy, "allergy"},
		{Amputation, "amputation"},
		{Audiology, "audiology"},
		{Bereavement, "bereavement"},
		{Cardiology, "cardiology"},
		{CaregiverSupport, "caregiverSupport"},
		{Covid19Vaccine, Covid19VaccineID},
		{Dental, "dental"},
		{Dermatology, "dermatology"},
		{Dialysis, "dialysis"},
		{EmergencyCare, "emergencyCare"},
		{Gastroenterology, "gastroenterology"},
		{Gynecology, "gynecology"},
		{Hematology, "hematology"},
		{Homeless, "homeless"},
		{InfectiousDisease, "infectiousDisease"},
		{LaboratoryAndPathology, "laboratoryAndPathology"},
		{MentalHealth, "mentalHealth"},
		{MinorityCare, "minorityCare"},
		{Nephrology, "nephrology"},
		{Neurology, "neurology"},
		{Nutrition, "nutrition"},
		{Oncology, "oncology"},
		{Ophthalmology, "ophthalmology"},
		{Optometry, "optometry"},
		{Orthopedics, "orthopedics"},
		{Pharmacy, "pharmacy"},
		{PhysicalTherapy, "physicalTherapy"},
		{Podiatry, "podiatry"},
		{PrimaryCare, "primaryCare"},
		{Radiology, "radiology"},
		{Rehabilitation, "rehabilitation"},
		{Rheumatology, "rheumatology"},
		{SpecialtyCare, "specialtyCare"},
		{SleepMedicine, "sleepMedicine"},
		{UrgentCare, "urgentCare"},
		{Urology, "urology"},
		{WomensHealth, "womensHealth"},
	})
	f.aliasID(LegacyDentalID, Dental)
	f.aliasID(LegacyMentalHealthID, MentalHealth)
	f.aliasName(LegacyDentalName, Dental)
	f.aliasName(LegacyMentalHealthName, MentalHealth)
	f.aliasName(Covid19VaccineAltName, Covid19Vaccine)
	return f
}

func (s HealthService) ServiceID() string { return Health.ServiceID(s) }
func (s HealthService) Name() string      { return string(s) }
func (s HealthService) Type() ServiceType { return TypeHealth }

// IsRenamed reports whether s carried a different name and id before the
// taxonomy was introduced.
func (s HealthService) IsRenamed() bool {
	return s == Dental || s == MentalHealth
}

// LegacyName returns the pre-rename literal for renamed services, else the
// current literal.
func (s HealthService) LegacyName() string {
	switch s {
	case Dental:
		return LegacyDentalName
	case MentalHealth:
		return LegacyMentalHealthName
	}
	return string(s)
}
