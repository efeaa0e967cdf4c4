package taxonomy

// BenefitsService is a benefits-family service.
type BenefitsService string

const (
	ApplyingForBenefits                             BenefitsService = "ApplyingForBenefits"
	BurialClaimAssistance                           BenefitsService = "BurialClaimAssistance"
	DisabilityClaimAssistance                       BenefitsService = "DisabilityClaimAssistance"
	EBenefitsRegistrationAssistance                 BenefitsService = "eBenefitsRegistrationAssistance"
	EducationAndCareerCounseling                    BenefitsService = "EducationAndCareerCounseling"
	EducationClaimAssistance                        BenefitsService = "EducationClaimAssistance"
	FamilyMemberClaimAssistance                     BenefitsService = "FamilyMemberClaimAssistance"
	HomelessAssistance                              BenefitsService = "HomelessAssistance"
	InsuranceClaimAssistanceAndFinancialCounseling  BenefitsService = "InsuranceClaimAssistanceAndFinancialCounseling"
	IntegratedDisabilityEvaluationSystemAssistance  BenefitsService = "IntegratedDisabilityEvaluationSystemAssistance"
	Pensions                                        BenefitsService = "Pensions"
	PreDischargeClaimAssistance                     BenefitsService = "PreDischargeClaimAssistance"
	TransitionAssistance                            BenefitsService = "TransitionAssistance"
	UpdatingDirectDepositInformation                BenefitsService = "UpdatingDirectDepositInformation"
	VAHomeLoanAssistance                            BenefitsService = "VAHomeLoanAssistance"
	VocationalRehabilitationAndEmploymentAssistance BenefitsService = "VocationalRehabilitationAndEmploymentAssistance"
)

var Benefits = newFamily(TypeBenefits, []pair[BenefitsService]{
	{ApplyingForBenefits, "applyingForBenefits"},
	{BurialClaimAssistance, "burialClaimAssistance"},
	{DisabilityClaimAssistance, "disabilityClaimAssistance"},
	{EBenefitsRegistrationAssistance, "eBenefitsRegistrationAssistance"},
	{EducationAndCareerCounseling, "educationAndCareerCounseling"},
	{EducationClaimAssistance, "educationClaimAssistance"},
	{FamilyMemberClaimAssistance, "familyMemberClaimAssistance"},
	{HomelessAssistance, "homelessAssistance"},
	{InsuranceClaimAssistanceAndFinancialCounseling, "insuranceClaimAssistanceAndFinancialCounseling"},
	{IntegratedDisabilityEvaluationSystemAssistance, "integratedDisabilityEvaluationSystemAssistance"},
	{Pensions, "pensions"},
	{PreDischargeClaimAssistance, "preDischargeClaimAssistance"},
	{TransitionAssistance, "transitionAssistance"},
	{UpdatingDirectDepositInformation, "updatingDirectDepositInformation"},
	{VAHomeLoanAssistance, "vaHomeLoanAssistance"},
	{VocationalRehabilitationAndEmploymentAssistance, "vocationalRehabilitationAndEmploymentAssistance"},
})

func (s BenefitsService) ServiceID() string { return Benefits.ServiceID(s) }
func (s BenefitsService) Name() string      { return string(s) }
func (s BenefitsService) Type() ServiceType { return TypeBenefits }
