package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// AvailabilitySource identifies which rule produced an availability result
type AvailabilitySource string

const (
	SourceWeekdayRule   AvailabilitySource = "weekday_rule"
	SourceSpecialDate   AvailabilitySource = "special_date"
	SourceNotConfigured AvailabilitySource = "not_configured"
)

// DayWindow is an open interval within one day
type DayWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// Contains returns true if t falls within the window.
// The start is inclusive, the end exclusive.
func (w DayWindow) Contains(t types.TimeString) bool {
	return !t.IsBefore(w.Start) && t.IsBefore(w.End)
}

// AvailabilityResult is the outcome of resolving a single calendar date
// against the rule set
type AvailabilityResult struct {
	IsOpen     bool
	Window     *DayWindow
	Adjustment PriceAdjustment
	Source     AvailabilitySource
	Note       string
}

// EffectivePrice applies the result's adjustment to the given base price
func (r AvailabilityResult) EffectivePrice(basePrice float64) float64 {
	return r.Adjustment.Apply(basePrice)
}

// ResolveAvailability resolves whether the business is open at the target
// moment and which price adjustment applies.
//
// Precedence: a special-date override for the target's calendar day shadows
// the weekday rule entirely. An inactive override means closed for that date
// even if the weekday rule is active. Without an override the weekday rule
// decides; an absent or inactive rule means closed. An empty rule set means
// the schedule was never configured: closed every day, not an error.
//
// The resolver is a pure function over already-fetched data and assumes time
// strings were validated at write time.
func ResolveAvailability(target time.Time, rules []WeekdayRule, overrides []SpecialDate) AvailabilityResult {
	for i := range overrides {
		override := &overrides[i]
		if !override.Matches(target) {
			continue
		}

		if !override.IsActive {
			return AvailabilityResult{
				IsOpen:     false,
				Adjustment: NoAdjustment(),
				Source:     SourceSpecialDate,
				Note:       override.Notes,
			}
		}

		window := override.Window()
		return AvailabilityResult{
			IsOpen:     true,
			Window:     &window,
			Adjustment: override.Adjustment,
			Source:     SourceSpecialDate,
			Note:       override.Notes,
		}
	}

	if len(rules) == 0 {
		return AvailabilityResult{
			IsOpen:     false,
			Adjustment: NoAdjustment(),
			Source:     SourceNotConfigured,
		}
	}

	day := int(target.Weekday())
	for i := range rules {
		rule := &rules[i]
		if rule.Day != day {
			continue
		}

		if !rule.IsActive {
			break
		}

		window := rule.Window()
		return AvailabilityResult{
			IsOpen:     true,
			Window:     &window,
			Adjustment: rule.Adjustment,
			Source:     SourceWeekdayRule,
			Note:       rule.Notes,
		}
	}

	return AvailabilityResult{
		IsOpen:     false,
		Adjustment: NoAdjustment(),
		Source:     SourceWeekdayRule,
	}
}
