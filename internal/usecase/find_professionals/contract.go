package find_professionals

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// CoverageService интерфейс сервиса географического покрытия
type CoverageService interface {
	CoveredCityNames(ctx context.Context, origin string, radiusKm float64) (map[string]float64, error)
}

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	GetWeekdayRules(ctx context.Context) ([]domain.WeekdayRule, error)
	GetSpecialDateByDate(ctx context.Context, date time.Time) (*domain.SpecialDate, error)
}

// ProfessionalRepository интерфейс репозитория специалистов
type ProfessionalRepository interface {
	ListActive(ctx context.Context) ([]domain.Professional, error)
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// BookingServiceClient интерфейс клиента сервиса бронирований
type BookingServiceClient interface {
	HasConflictingBooking(ctx context.Context, professionalID int64, date time.Time, startTime types.TimeString, durationMinutes int) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
