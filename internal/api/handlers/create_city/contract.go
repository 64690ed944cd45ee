package create_city

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/coverage/models"
)

type CoverageService interface {
	CreateCity(ctx context.Context, req *models.CreateCityRequest) (*models.CityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
