package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// WeekdayRule is the recurring open/closed definition for one day of week.
// Day uses 0=Sunday .. 6=Saturday. At most one rule exists per day: the rule
// store upserts by day and never deletes.
type WeekdayRule struct {
	Day        int
	IsActive   bool
	StartTime  types.TimeString
	EndTime    types.TimeString
	Adjustment PriceAdjustment
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Window returns the open window of the rule
func (r *WeekdayRule) Window() DayWindow {
	return DayWindow{Start: r.StartTime, End: r.EndTime}
}

// SpecialDate is a one-off override for a single calendar day. It shadows the
// weekday rule for that date, whether active (custom window/adjustment) or
// inactive (closed). At most one override exists per date.
type SpecialDate struct {
	ID         string
	Date       time.Time
	Name       string
	IsActive   bool
	StartTime  *types.TimeString
	EndTime    *types.TimeString
	Adjustment PriceAdjustment
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Window returns the open window of the override.
// Missing start/end means open all day.
func (s *SpecialDate) Window() DayWindow {
	window := DayWindow{Start: AllDayStart, End: AllDayEnd}
	if s.StartTime != nil {
		window.Start = *s.StartTime
	}
	if s.EndTime != nil {
		window.End = *s.EndTime
	}
	return window
}

// Matches returns true if the override applies to the given moment
// (same calendar day, time of day ignored)
func (s *SpecialDate) Matches(target time.Time) bool {
	return IsSameDay(s.Date, target)
}

// IsSameDay reports whether two moments fall on the same calendar day
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
