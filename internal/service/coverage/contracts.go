package coverage

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// CityRepository интерфейс репозитория городов и расстояний
type CityRepository interface {
	ListCities(ctx context.Context, onlyActive bool) ([]domain.City, error)
	GetCityByName(ctx context.Context, name string) (*domain.City, error)
	CreateCity(ctx context.Context, city *domain.City) (*domain.City, error)
	DeactivateCity(ctx context.Context, name string) error
	GetWithinRadius(ctx context.Context, origin string, radiusKm float64) ([]domain.CoveredCity, error)
	UpsertDistance(ctx context.Context, distance domain.CityDistance) error
	ReplaceAllDistances(ctx context.Context, distances []domain.CityDistance) error
}

// CoverageCache кэш результатов покрытия. Необязателен: при nil сервис
// работает напрямую через репозиторий.
type CoverageCache interface {
	Get(ctx context.Context, origin string, radiusKm float64) ([]domain.CoveredCity, bool)
	Set(ctx context.Context, origin string, radiusKm float64, covered []domain.CoveredCity)
	Invalidate(ctx context.Context) error
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
