package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:mm
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// All-day window bounds used when an active override carries no explicit times
const (
	AllDayStart = types.TimeString("00:00")
	AllDayEnd   = types.TimeString("23:59")
)

// Default weekday schedule created when no settings exist yet.
// All seven days are present but inactive.
const (
	DefaultWorkdayStart = types.TimeString("09:00")
	DefaultWorkdayEnd   = types.TimeString("17:00")
)

// DaysPerWeek number of weekday rules a complete schedule carries
const DaysPerWeek = 7

// Coverage radius presets offered to work-area configuration.
// RadiusUnlimited disables the distance filter.
const (
	Radius20Km      float64 = 20
	Radius40Km      float64 = 40
	Radius60Km      float64 = 60
	Radius80Km      float64 = 80
	RadiusUnlimited float64 = -1
	DefaultRadiusKm         = Radius40Km
)

// Business validation constants
const (
	MaxNotesLength       = 500
	MaxCityNameLength    = 100
	MinAdjustmentPercent = -100 // below -100% the price would go negative
	MaxLatitude          = 90
	MaxLongitude         = 180
)
