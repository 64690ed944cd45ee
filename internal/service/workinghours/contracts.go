package workinghours

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	GetWeekdayRules(ctx context.Context) ([]domain.WeekdayRule, error)
	UpsertWeekdayRules(ctx context.Context, rules []domain.WeekdayRule) error
	GetSpecialDates(ctx context.Context) ([]domain.SpecialDate, error)
	GetSpecialDateByDate(ctx context.Context, date time.Time) (*domain.SpecialDate, error)
	GetSpecialDateByID(ctx context.Context, id string) (*domain.SpecialDate, error)
	CreateSpecialDate(ctx context.Context, specialDate *domain.SpecialDate) (*domain.SpecialDate, error)
	UpdateSpecialDate(ctx context.Context, specialDate *domain.SpecialDate) (*domain.SpecialDate, error)
	DeleteSpecialDate(ctx context.Context, id string) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
