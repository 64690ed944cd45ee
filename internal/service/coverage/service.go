package coverage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/citydistance"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/coverage/models"
)

// Service сервис географического покрытия: справочник городов,
// матрица расстояний и запросы зоны покрытия
type Service struct {
	repo      CityRepository
	cache     CoverageCache
	txManager TxManager
	log       Logger
}

// NewService создаёт сервис покрытия. cache может быть nil.
func NewService(repo CityRepository, cache CoverageCache, txManager TxManager, log Logger) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		txManager: txManager,
		log:       log,
	}
}

// GetCoveredCities возвращает города в радиусе radiusKm от origin,
// отсортированные по расстоянию. Сам origin всегда включён с расстоянием 0.
// radiusKm < 0 означает покрытие без ограничения.
func (s *Service) GetCoveredCities(ctx context.Context, origin string, radiusKm float64) (*models.CoverageResponse, error) {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return nil, fmt.Errorf("%w: GetCoveredCities - city name is required", ErrInvalidInput)
	}
	if radiusKm == 0 {
		// Нулевой радиус покрывает только сам город
		if _, err := s.getCity(ctx, origin); err != nil {
			return nil, err
		}
		return models.FromDomainCoverage(origin, radiusKm, []domain.CoveredCity{{Name: origin, DistanceKm: 0}}), nil
	}

	if s.cache != nil {
		if covered, ok := s.cache.Get(ctx, origin, radiusKm); ok {
			return models.FromDomainCoverage(origin, radiusKm, covered), nil
		}
	}

	if _, err := s.getCity(ctx, origin); err != nil {
		return nil, err
	}

	covered, err := s.repo.GetWithinRadius(ctx, origin, radiusKm)
	if err != nil {
		s.log.Error("GetCoveredCities: failed to load coverage for %s: %v", origin, err)
		return nil, fmt.Errorf("%w: GetCoveredCities - failed to load coverage: %v", ErrInternal, err)
	}

	// Центр поиска входит в своё покрытие
	covered = append(covered, domain.CoveredCity{Name: origin, DistanceKm: 0})
	sort.Slice(covered, func(i, j int) bool {
		if covered[i].DistanceKm != covered[j].DistanceKm {
			return covered[i].DistanceKm < covered[j].DistanceKm
		}
		return covered[i].Name < covered[j].Name
	})

	if s.cache != nil {
		s.cache.Set(ctx, origin, radiusKm, covered)
	}

	return models.FromDomainCoverage(origin, radiusKm, covered), nil
}

// CoveredCityNames возвращает имена городов покрытия вместе с расстояниями
// (для подбора специалистов)
func (s *Service) CoveredCityNames(ctx context.Context, origin string, radiusKm float64) (map[string]float64, error) {
	resp, err := s.GetCoveredCities(ctx, origin, radiusKm)
	if err != nil {
		return nil, err
	}
	names := make(map[string]float64, len(resp.Cities))
	for _, c := range resp.Cities {
		names[c.Name] = c.DistanceKm
	}
	return names, nil
}

// CreateCity добавляет город в справочник и пересчитывает расстояния
// от него до всех остальных городов
func (s *Service) CreateCity(ctx context.Context, req *models.CreateCityRequest) (*models.CityResponse, error) {
	if err := validateCity(req); err != nil {
		return nil, fmt.Errorf("%w: CreateCity - %v", ErrInvalidInput, err)
	}

	created, err := s.repo.CreateCity(ctx, req.ToDomainCity())
	if err != nil {
		if errors.Is(err, citydistance.ErrCityAlreadyExists) {
			return nil, fmt.Errorf("%w: CreateCity - city %s already exists", ErrCityAlreadyExists, req.Name)
		}
		s.log.Error("CreateCity: failed to create city %s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: CreateCity - failed to create: %v", ErrInternal, err)
	}

	// Достраиваем матрицу инкрементально: только пары нового города
	others, err := s.repo.ListCities(ctx, true)
	if err != nil {
		s.log.Error("CreateCity: failed to list cities: %v", err)
		return nil, fmt.Errorf("%w: CreateCity - failed to list cities: %v", ErrInternal, err)
	}

	pairs := buildPairsFor(created, others)

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		for _, pair := range pairs {
			if err := s.repo.UpsertDistance(ctx, pair); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("CreateCity: failed to upsert distances for %s: %v", created.Name, err)
		return nil, fmt.Errorf("%w: CreateCity - failed to upsert distances: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn("CreateCity: failed to invalidate coverage cache: %v", err)
		}
	}

	s.log.Info("CreateCity: user %d added city %s (%.4f, %.4f), %d distance pairs",
		req.UserID, created.Name, created.Latitude, created.Longitude, len(pairs))

	return models.FromDomainCity(created), nil
}

// DeactivateCity помечает город неактивным и перестраивает матрицу
// расстояний без него
func (s *Service) DeactivateCity(ctx context.Context, userID int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: DeactivateCity - city name is required", ErrInvalidInput)
	}

	if err := s.repo.DeactivateCity(ctx, name); err != nil {
		if errors.Is(err, citydistance.ErrCityNotFound) {
			return fmt.Errorf("%w: DeactivateCity - city %s is not in the directory", ErrCityNotFound, name)
		}
		s.log.Error("DeactivateCity: failed to deactivate city %s: %v", name, err)
		return fmt.Errorf("%w: DeactivateCity - failed to deactivate: %v", ErrInternal, err)
	}

	// В матрице остаются только активные города
	if _, err := s.RebuildDistances(ctx, userID); err != nil {
		s.log.Error("DeactivateCity: failed to rebuild distances after removing %s: %v", name, err)
		return err
	}

	s.log.Info("DeactivateCity: user %d deactivated city %s", userID, name)

	return nil
}

// RebuildDistances пересчитывает матрицу расстояний между всеми активными
// городами по формуле хаверсинуса и заменяет её атомарно
func (s *Service) RebuildDistances(ctx context.Context, userID int64) (*models.RebuildDistancesResponse, error) {
	cities, err := s.repo.ListCities(ctx, true)
	if err != nil {
		s.log.Error("RebuildDistances: failed to list cities: %v", err)
		return nil, fmt.Errorf("%w: RebuildDistances - failed to list cities: %v", ErrInternal, err)
	}

	pairs := buildDistancePairs(cities)

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		return s.repo.ReplaceAllDistances(ctx, pairs)
	})
	if err != nil {
		s.log.Error("RebuildDistances: failed to replace distances: %v", err)
		return nil, fmt.Errorf("%w: RebuildDistances - failed to replace distances: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn("RebuildDistances: failed to invalidate coverage cache: %v", err)
		}
	}

	s.log.Info("RebuildDistances: user %d rebuilt %d pairs for %d cities", userID, len(pairs), len(cities))

	return &models.RebuildDistancesResponse{
		CityCount: len(cities),
		PairCount: len(pairs),
	}, nil
}

func (s *Service) getCity(ctx context.Context, name string) (*domain.City, error) {
	city, err := s.repo.GetCityByName(ctx, name)
	if err != nil {
		if errors.Is(err, citydistance.ErrCityNotFound) {
			return nil, fmt.Errorf("%w: city %s is not in the directory", ErrCityNotFound, name)
		}
		s.log.Error("getCity: failed to load city %s: %v", name, err)
		return nil, fmt.Errorf("%w: failed to load city: %v", ErrInternal, err)
	}
	return city, nil
}

func validateCity(req *models.CreateCityRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(req.Name) > domain.MaxCityNameLength {
		return fmt.Errorf("name exceeds %d characters", domain.MaxCityNameLength)
	}
	if math.Abs(req.Latitude) > domain.MaxLatitude {
		return fmt.Errorf("latitude must be between -%v and %v", domain.MaxLatitude, domain.MaxLatitude)
	}
	if math.Abs(req.Longitude) > domain.MaxLongitude {
		return fmt.Errorf("longitude must be between -%v and %v", domain.MaxLongitude, domain.MaxLongitude)
	}
	return nil
}
