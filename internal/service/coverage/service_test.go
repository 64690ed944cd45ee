package coverage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	storage "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/citydistance"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/coverage/models"
)

type fakeCityRepo struct {
	cities    map[string]*domain.City
	distances []domain.CityDistance
	nextID    int64
}

func newFakeCityRepo() *fakeCityRepo {
	return &fakeCityRepo{cities: make(map[string]*domain.City), nextID: 1}
}

func (f *fakeCityRepo) ListCities(ctx context.Context, onlyActive bool) ([]domain.City, error) {
	out := make([]domain.City, 0, len(f.cities))
	for _, c := range f.cities {
		if onlyActive && !c.IsActive {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCityRepo) GetCityByName(ctx context.Context, name string) (*domain.City, error) {
	if c, ok := f.cities[name]; ok {
		return c, nil
	}
	return nil, storage.ErrCityNotFound
}

func (f *fakeCityRepo) CreateCity(ctx context.Context, city *domain.City) (*domain.City, error) {
	if _, ok := f.cities[city.Name]; ok {
		return nil, storage.ErrCityAlreadyExists
	}
	copied := *city
	copied.ID = f.nextID
	f.nextID++
	f.cities[city.Name] = &copied
	return &copied, nil
}

func (f *fakeCityRepo) DeactivateCity(ctx context.Context, name string) error {
	c, ok := f.cities[name]
	if !ok {
		return storage.ErrCityNotFound
	}
	c.IsActive = false
	return nil
}

func (f *fakeCityRepo) UpsertDistance(ctx context.Context, distance domain.CityDistance) error {
	from, to := distance.FromCity, distance.ToCity
	if from > to {
		from, to = to, from
	}
	for i := range f.distances {
		if f.distances[i].FromCity == from && f.distances[i].ToCity == to {
			f.distances[i].DistanceKm = distance.DistanceKm
			return nil
		}
	}
	f.distances = append(f.distances, domain.CityDistance{FromCity: from, ToCity: to, DistanceKm: distance.DistanceKm})
	return nil
}

func (f *fakeCityRepo) GetWithinRadius(ctx context.Context, origin string, radiusKm float64) ([]domain.CoveredCity, error) {
	var out []domain.CoveredCity
	for _, d := range f.distances {
		var other string
		switch origin {
		case d.FromCity:
			other = d.ToCity
		case d.ToCity:
			other = d.FromCity
		default:
			continue
		}
		if radiusKm >= 0 && d.DistanceKm > radiusKm {
			continue
		}
		out = append(out, domain.CoveredCity{Name: other, DistanceKm: d.DistanceKm})
	}
	return out, nil
}

func (f *fakeCityRepo) ReplaceAllDistances(ctx context.Context, distances []domain.CityDistance) error {
	f.distances = distances
	return nil
}

type fakeCache struct {
	data        map[string][]domain.CoveredCity
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]domain.CoveredCity)}
}

func (f *fakeCache) key(origin string, radiusKm float64) string {
	return fmt.Sprintf("%s|%.0f", origin, radiusKm)
}

func (f *fakeCache) Get(ctx context.Context, origin string, radiusKm float64) ([]domain.CoveredCity, bool) {
	v, ok := f.data[f.key(origin, radiusKm)]
	return v, ok
}

func (f *fakeCache) Set(ctx context.Context, origin string, radiusKm float64, covered []domain.CoveredCity) {
	f.data[f.key(origin, radiusKm)] = covered
}

func (f *fakeCache) Invalidate(ctx context.Context) error {
	f.data = make(map[string][]domain.CoveredCity)
	f.invalidated++
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func seedCities(t *testing.T, svc *Service) {
	t.Helper()
	ctx := context.Background()
	for _, req := range []*models.CreateCityRequest{
		{UserID: 1, Name: "Moscow", Latitude: 55.7558, Longitude: 37.6173},
		{UserID: 1, Name: "Khimki", Latitude: 55.8970, Longitude: 37.4297},
		{UserID: 1, Name: "Balashikha", Latitude: 55.7964, Longitude: 37.9382},
		{UserID: 1, Name: "Saint Petersburg", Latitude: 59.9343, Longitude: 30.3351},
	} {
		_, err := svc.CreateCity(ctx, req)
		require.NoError(t, err)
	}
}

func TestGetCoveredCities(t *testing.T) {
	repo := newFakeCityRepo()
	svc := NewService(repo, nil, fakeTxManager{}, nopLogger{})
	seedCities(t, svc)

	resp, err := svc.GetCoveredCities(context.Background(), "Moscow", domain.Radius40Km)
	require.NoError(t, err)

	// Сам город первый, расстояние 0
	require.NotEmpty(t, resp.Cities)
	assert.Equal(t, "Moscow", resp.Cities[0].Name)
	assert.Equal(t, 0.0, resp.Cities[0].DistanceKm)

	names := make([]string, 0, len(resp.Cities))
	for _, c := range resp.Cities {
		names = append(names, c.Name)
		assert.LessOrEqual(t, c.DistanceKm, domain.Radius40Km)
	}
	assert.Contains(t, names, "Khimki")
	assert.Contains(t, names, "Balashikha")
	assert.NotContains(t, names, "Saint Petersburg")

	// Отсортировано по расстоянию
	for i := 1; i < len(resp.Cities); i++ {
		assert.LessOrEqual(t, resp.Cities[i-1].DistanceKm, resp.Cities[i].DistanceKm)
	}
}

func TestGetCoveredCities_Unlimited(t *testing.T) {
	svc := NewService(newFakeCityRepo(), nil, fakeTxManager{}, nopLogger{})
	seedCities(t, svc)

	resp, err := svc.GetCoveredCities(context.Background(), "Moscow", domain.RadiusUnlimited)
	require.NoError(t, err)
	assert.Len(t, resp.Cities, 4)
}

func TestGetCoveredCities_ZeroRadius(t *testing.T) {
	svc := NewService(newFakeCityRepo(), nil, fakeTxManager{}, nopLogger{})
	seedCities(t, svc)

	resp, err := svc.GetCoveredCities(context.Background(), "Moscow", 0)
	require.NoError(t, err)

	require.Len(t, resp.Cities, 1)
	assert.Equal(t, "Moscow", resp.Cities[0].Name)
	assert.Equal(t, 0.0, resp.Cities[0].DistanceKm)
}

func TestGetCoveredCities_UnknownCity(t *testing.T) {
	svc := NewService(newFakeCityRepo(), nil, fakeTxManager{}, nopLogger{})

	_, err := svc.GetCoveredCities(context.Background(), "Atlantis", domain.Radius40Km)
	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestGetCoveredCities_EmptyName(t *testing.T) {
	svc := NewService(newFakeCityRepo(), nil, fakeTxManager{}, nopLogger{})

	_, err := svc.GetCoveredCities(context.Background(), "  ", domain.Radius40Km)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCoveredCities_UsesCache(t *testing.T) {
	repo := newFakeCityRepo()
	cache := newFakeCache()
	svc := NewService(repo, cache, fakeTxManager{}, nopLogger{})
	seedCities(t, svc)

	first, err := svc.GetCoveredCities(context.Background(), "Moscow", domain.Radius40Km)
	require.NoError(t, err)

	// Портим репозиторий: второй запрос должен прийти из кэша
	repo.distances = nil

	second, err := svc.GetCoveredCities(context.Background(), "Moscow", domain.Radius40Km)
	require.NoError(t, err)
	assert.Equal(t, first.Cities, second.Cities)
}

func TestCreateCity_Duplicate(t *testing.T) {
	svc := NewService(newFakeCityRepo(), nil, fakeTxManager{}, nopLogger{})
	ctx := context.Background()

	req := &models.CreateCityRequest{UserID: 1, Name: "Moscow", Latitude: 55.7558, Longitude: 37.6173}
	_, err := svc.CreateCity(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateCity(ctx, req)
	assert.ErrorIs(t, err, ErrCityAlreadyExists)
}

func TestCreateCity_Validation(t *testing.T) {
	svc := NewService(newFakeCityRepo(), nil, fakeTxManager{}, nopLogger{})
	ctx := context.Background()

	tests := []struct {
		name string
		req  *models.CreateCityRequest
	}{
		{name: "empty name", req: &models.CreateCityRequest{UserID: 1, Latitude: 55, Longitude: 37}},
		{name: "latitude out of range", req: &models.CreateCityRequest{UserID: 1, Name: "Nowhere", Latitude: 91, Longitude: 37}},
		{name: "longitude out of range", req: &models.CreateCityRequest{UserID: 1, Name: "Nowhere", Latitude: 55, Longitude: -181}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCity(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateCity_UpsertsDistancePairs(t *testing.T) {
	repo := newFakeCityRepo()
	cache := newFakeCache()
	svc := NewService(repo, cache, fakeTxManager{}, nopLogger{})
	seedCities(t, svc)

	// 4 города дают полную матрицу из 6 канонических пар
	require.Len(t, repo.distances, 6)
	for _, d := range repo.distances {
		assert.Less(t, d.FromCity, d.ToCity)
	}

	// Новый город добавляет ровно по паре на каждый существующий
	assert.Greater(t, cache.invalidated, 0)
	invalidatedBefore := cache.invalidated

	_, err := svc.CreateCity(context.Background(), &models.CreateCityRequest{
		UserID: 1, Name: "Tver", Latitude: 56.8587, Longitude: 35.9176,
	})
	require.NoError(t, err)

	assert.Len(t, repo.distances, 10)
	assert.Greater(t, cache.invalidated, invalidatedBefore)
}

func TestDeactivateCity(t *testing.T) {
	repo := newFakeCityRepo()
	cache := newFakeCache()
	svc := NewService(repo, cache, fakeTxManager{}, nopLogger{})
	seedCities(t, svc)
	ctx := context.Background()

	err := svc.DeactivateCity(ctx, 1, "Khimki")
	require.NoError(t, err)

	assert.False(t, repo.cities["Khimki"].IsActive)
	assert.Greater(t, cache.invalidated, 0)

	// Матрица перестроена без неактивного города
	for _, d := range repo.distances {
		assert.NotEqual(t, "Khimki", d.FromCity)
		assert.NotEqual(t, "Khimki", d.ToCity)
	}
	require.Len(t, repo.distances, 3)

	resp, err := svc.GetCoveredCities(ctx, "Moscow", domain.RadiusUnlimited)
	require.NoError(t, err)
	for _, c := range resp.Cities {
		assert.NotEqual(t, "Khimki", c.Name)
	}
}

func TestDeactivateCity_Unknown(t *testing.T) {
	svc := NewService(newFakeCityRepo(), nil, fakeTxManager{}, nopLogger{})

	err := svc.DeactivateCity(context.Background(), 1, "Atlantis")
	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestRebuildDistances_InvalidatesCache(t *testing.T) {
	repo := newFakeCityRepo()
	cache := newFakeCache()
	svc := NewService(repo, cache, fakeTxManager{}, nopLogger{})
	seedCities(t, svc)

	resp, err := svc.RebuildDistances(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 4, resp.CityCount)
	assert.Equal(t, 6, resp.PairCount)
	assert.Greater(t, cache.invalidated, 0)
}
