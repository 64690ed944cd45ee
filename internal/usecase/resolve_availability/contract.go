package resolve_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	GetWeekdayRules(ctx context.Context) ([]domain.WeekdayRule, error)
	GetSpecialDateByDate(ctx context.Context, date time.Time) (*domain.SpecialDate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
