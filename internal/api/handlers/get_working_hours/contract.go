package get_working_hours

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
)

type WorkingHoursService interface {
	GetSettings(ctx context.Context) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
