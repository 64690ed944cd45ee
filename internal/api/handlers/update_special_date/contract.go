package update_special_date

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
)

type WorkingHoursService interface {
	UpdateSpecialDate(ctx context.Context, req *models.UpdateSpecialDateRequest) (*models.SpecialDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
