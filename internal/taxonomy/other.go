package taxonomy

// OtherService is a service outside the health and benefits families.
type OtherService string

const OnlineScheduling OtherService = "OnlineScheduling"

var Other = newFamily(TypeOther, []pair[OtherService]{
	{OnlineScheduling, "onlineScheduling"},
})

func (s OtherService) ServiceID() string { return Other.ServiceID(s) }
func (s OtherService) Name() string      { return string(s) }
func (s OtherService) Type() ServiceType { return TypeOther }
