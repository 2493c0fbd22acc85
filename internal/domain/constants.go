package domain

// Operating hours of the salon (inclusive)
const (
	DefaultOpenHour  = 9
	DefaultCloseHour = 18
)

// Business validation constants
const (
	MaxNotesLength        = 500
	MaxCustomerNameLength = 200
	MaxServicesPerBooking = 10
	MaxDurationHours      = 24
	MinRuleBlockHours     = 1
	MaxRuleBlockHours     = 24
	MaxServiceIDLength    = 64
)

// ServiceDelimiter separates service identifiers in the stored service list
const ServiceDelimiter = ","

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
