package workinghours

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// validateWeekdayRules проверяет пачку недельных правил из запроса обновления
func validateWeekdayRules(rules []models.WeekdayRuleInput) error {
	if len(rules) == 0 {
		return fmt.Errorf("rules are required")
	}

	seen := make(map[int]struct{}, len(rules))
	for i := range rules {
		rule := &rules[i]

		if rule.Day < 0 || rule.Day >= domain.DaysPerWeek {
			return fmt.Errorf("rule %d: day must be between 0 and %d, got %d", i, domain.DaysPerWeek-1, rule.Day)
		}
		if _, ok := seen[rule.Day]; ok {
			return fmt.Errorf("rule %d: duplicate day %d", i, rule.Day)
		}
		seen[rule.Day] = struct{}{}

		start := types.TimeString(rule.StartTime)
		end := types.TimeString(rule.EndTime)
		if !start.IsValid() {
			return fmt.Errorf("rule %d: startTime must be in HH:mm format, got %q", i, rule.StartTime)
		}
		if !end.IsValid() {
			return fmt.Errorf("rule %d: endTime must be in HH:mm format, got %q", i, rule.EndTime)
		}
		if !start.IsBefore(end) {
			return fmt.Errorf("rule %d: startTime %s must be before endTime %s", i, rule.StartTime, rule.EndTime)
		}

		if err := validateAdjustment(rule.Adjustment); err != nil {
			return fmt.Errorf("rule %d: %v", i, err)
		}
		if len(rule.Notes) > domain.MaxNotesLength {
			return fmt.Errorf("rule %d: notes exceed %d characters", i, domain.MaxNotesLength)
		}
	}

	return nil
}

// validateSpecialDate проверяет особую дату перед созданием или обновлением
func validateSpecialDate(sd *domain.SpecialDate) error {
	if sd.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if sd.Name == "" {
		return fmt.Errorf("name is required")
	}

	// Времена опциональны: отсутствие обоих означает окно на весь день.
	// Указывать только одно из двух нельзя.
	if (sd.StartTime == nil) != (sd.EndTime == nil) {
		return fmt.Errorf("startTime and endTime must be provided together")
	}
	if sd.StartTime != nil {
		if !sd.StartTime.IsValid() {
			return fmt.Errorf("startTime must be in HH:mm format, got %q", string(*sd.StartTime))
		}
		if !sd.EndTime.IsValid() {
			return fmt.Errorf("endTime must be in HH:mm format, got %q", string(*sd.EndTime))
		}
		if !sd.StartTime.IsBefore(*sd.EndTime) {
			return fmt.Errorf("startTime %s must be before endTime %s", sd.StartTime.String(), sd.EndTime.String())
		}
	}

	if !sd.Adjustment.Kind.IsValid() {
		return fmt.Errorf("adjustment kind must be one of: none, percentage, fixed")
	}
	if sd.Adjustment.Kind == domain.AdjustmentPercentage && sd.Adjustment.Value < domain.MinAdjustmentPercent {
		return fmt.Errorf("percentage adjustment cannot be below %d", domain.MinAdjustmentPercent)
	}
	if len(sd.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("notes exceed %d characters", domain.MaxNotesLength)
	}

	return nil
}

func validateAdjustment(a *models.AdjustmentInput) error {
	if a == nil {
		return nil
	}
	kind := domain.AdjustmentKind(a.Kind)
	if !kind.IsValid() {
		return fmt.Errorf("adjustment kind must be one of: none, percentage, fixed")
	}
	if kind == domain.AdjustmentPercentage && a.Value < domain.MinAdjustmentPercent {
		return fmt.Errorf("percentage adjustment cannot be below %d", domain.MinAdjustmentPercent)
	}
	return nil
}
