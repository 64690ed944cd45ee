package get_covered_cities

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/coverage/models"
)

type CoverageService interface {
	GetCoveredCities(ctx context.Context, origin string, radiusKm float64) (*models.CoverageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
