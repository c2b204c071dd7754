package taxonomy

type EventCategory string

const (
	CategoryInfrastructure EventCategory = "Infrastructure"
	CategoryApplication    EventCategory = "Application"
	CategoryBusiness       EventCategory = "Business"
)

// Valid reports whether c is one of the known categories.
func (c EventCategory) Valid() bool {
	switch c {
	case CategoryInfrastructure, CategoryApplication, CategoryBusiness:
		return true
	default:
		return false
	}
}

// EventType is implemented by BusinessEventType and ApplicationEventType.
type EventType interface {
	EventType() string
	Valid() bool
}

type BusinessEventType string

const (
	BusinessSPSE          BusinessEventType = "SP_SE"
	BusinessSPCA          BusinessEventType = "SP_CA"
	BusinessSPReturn      BusinessEventType = "SP_RETURN"
	BusinessFBAPISend     BusinessEventType = "FB_API_SEND"
	BusinessFBAPISent     BusinessEventType = "FB_API_SENT"
	BusinessFBAPIResponse BusinessEventType = "FB_API_RESPONSE"
)

func (t BusinessEventType) EventType() string { return string(t) }

func (t BusinessEventType) Valid() bool {
	switch t {
	case BusinessSPSE, BusinessSPCA, BusinessSPReturn,
		BusinessFBAPISend, BusinessFBAPISent, BusinessFBAPIResponse:
		return true
	default:
		return false
	}
}

type ApplicationEventType string

const (
	ApplicationNetworkAPICall     ApplicationEventType = "NETWORK_API_CALL"
	ApplicationNetworkAPIResponse ApplicationEventType = "NETWORK_API_RESPONSE"
	ApplicationEventInvoked       ApplicationEventType = "EVENT_INVOKED"
	ApplicationTryCatchError      ApplicationEventType = "TRY_CATCH_ERROR"
)

func (t ApplicationEventType) EventType() string { return string(t) }

func (t ApplicationEventType) Valid() bool {
	switch t {
	case ApplicationNetworkAPICall, ApplicationNetworkAPIResponse,
		ApplicationEventInvoked, ApplicationTryCatchError:
		return true
	default:
		return false
	}
}

type ApplicationComponent string

const (
	ComponentKafka ApplicationComponent = "KAFKA"
	ComponentAxios ApplicationComponent = "AXIOS"
)

func (c ApplicationComponent) Valid() bool {
	return c == ComponentKafka || c == ComponentAxios
}

// ParseEventType resolves a raw event type string against both closed sets.
func ParseEventType(s string) (EventType, bool) {
	if b := BusinessEventType(s); b.Valid() {
		return b, true
	}
	if a := ApplicationEventType(s); a.Valid() {
		return a, true
	}
	return nil, false
}
