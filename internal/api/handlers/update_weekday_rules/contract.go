package update_weekday_rules

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
)

type WorkingHoursService interface {
	UpdateWeekdayRules(ctx context.Context, req *models.UpdateWeekdayRulesRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
