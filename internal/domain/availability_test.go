package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func activeRule(day int, start, end types.TimeString) WeekdayRule {
	return WeekdayRule{Day: day, IsActive: true, StartTime: start, EndTime: end}
}

func fullWeek(active bool) []WeekdayRule {
	rules := make([]WeekdayRule, 0, DaysPerWeek)
	for day := 0; day < DaysPerWeek; day++ {
		rules = append(rules, WeekdayRule{
			Day:       day,
			IsActive:  active,
			StartTime: DefaultWorkdayStart,
			EndTime:   DefaultWorkdayEnd,
		})
	}
	return rules
}

func TestResolveAvailability_WeekdayRule(t *testing.T) {
	// 2024-06-10 is a Monday
	monday := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	rules := []WeekdayRule{activeRule(1, "09:00", "18:00")}

	result := ResolveAvailability(monday, rules, nil)

	require.True(t, result.IsOpen)
	require.NotNil(t, result.Window)
	assert.Equal(t, types.TimeString("09:00"), result.Window.Start)
	assert.Equal(t, types.TimeString("18:00"), result.Window.End)
	assert.Equal(t, SourceWeekdayRule, result.Source)
	assert.True(t, result.Adjustment.IsNone())
}

func TestResolveAvailability_OverrideShadowsWeekdayRule(t *testing.T) {
	monday := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	rules := []WeekdayRule{activeRule(1, "09:00", "18:00")}
	overrides := []SpecialDate{{
		ID:         "sd-1",
		Date:       time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Name:       "holiday pricing",
		IsActive:   true,
		StartTime:  ptr.Ptr(types.TimeString("10:00")),
		EndTime:    ptr.Ptr(types.TimeString("14:00")),
		Adjustment: PriceAdjustment{Kind: AdjustmentFixed, Value: 50},
	}}

	result := ResolveAvailability(monday, rules, overrides)

	require.True(t, result.IsOpen)
	require.NotNil(t, result.Window)
	assert.Equal(t, types.TimeString("10:00"), result.Window.Start)
	assert.Equal(t, types.TimeString("14:00"), result.Window.End)
	assert.Equal(t, SourceSpecialDate, result.Source)
	assert.Equal(t, AdjustmentFixed, result.Adjustment.Kind)
	assert.InDelta(t, 150.0, result.EffectivePrice(100), 1e-9)
}

func TestResolveAvailability_InactiveOverrideClosesDate(t *testing.T) {
	monday := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	rules := []WeekdayRule{activeRule(1, "09:00", "18:00")}
	overrides := []SpecialDate{{
		ID:       "sd-2",
		Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Name:     "closed for maintenance",
		IsActive: false,
		Notes:    "annual maintenance day",
	}}

	result := ResolveAvailability(monday, rules, overrides)

	assert.False(t, result.IsOpen)
	assert.Equal(t, SourceSpecialDate, result.Source)
	assert.Equal(t, "annual maintenance day", result.Note)
}

func TestResolveAvailability_OverrideWithoutTimesOpensAllDay(t *testing.T) {
	monday := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	overrides := []SpecialDate{{
		ID:       "sd-3",
		Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		IsActive: true,
	}}

	result := ResolveAvailability(monday, fullWeek(false), overrides)

	require.True(t, result.IsOpen)
	require.NotNil(t, result.Window)
	assert.Equal(t, AllDayStart, result.Window.Start)
	assert.Equal(t, AllDayEnd, result.Window.End)
}

func TestResolveAvailability_OverrideForAnotherDayIgnored(t *testing.T) {
	monday := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	rules := []WeekdayRule{activeRule(1, "09:00", "18:00")}
	overrides := []SpecialDate{{
		ID:        "sd-4",
		Date:      time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
		StartTime: ptr.Ptr(types.TimeString("10:00")),
		EndTime:   ptr.Ptr(types.TimeString("14:00")),
	}}

	result := ResolveAvailability(monday, rules, overrides)

	require.True(t, result.IsOpen)
	assert.Equal(t, SourceWeekdayRule, result.Source)
	assert.Equal(t, types.TimeString("09:00"), result.Window.Start)
}

func TestResolveAvailability_Closed(t *testing.T) {
	monday := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		rules  []WeekdayRule
		source AvailabilitySource
	}{
		{
			name:   "no rule for weekday",
			rules:  []WeekdayRule{activeRule(2, "09:00", "18:00")},
			source: SourceWeekdayRule,
		},
		{
			name:   "inactive rule for weekday",
			rules:  fullWeek(false),
			source: SourceWeekdayRule,
		},
		{
			name:   "no configuration at all",
			rules:  nil,
			source: SourceNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ResolveAvailability(monday, tt.rules, nil)

			assert.False(t, result.IsOpen)
			assert.Nil(t, result.Window)
			assert.Equal(t, tt.source, result.Source)
		})
	}
}

func TestDayWindow_Contains(t *testing.T) {
	window := DayWindow{Start: "09:00", End: "18:00"}

	assert.True(t, window.Contains("09:00"), "start is inclusive")
	assert.True(t, window.Contains("12:30"))
	assert.False(t, window.Contains("18:00"), "end is exclusive")
	assert.False(t, window.Contains("08:59"))
}
