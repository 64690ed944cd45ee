package rebuild_distances

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/coverage/models"
)

type CoverageService interface {
	RebuildDistances(ctx context.Context, userID int64) (*models.RebuildDistancesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
