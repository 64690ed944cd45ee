package find_professionals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestFilterByCoverage(t *testing.T) {
	professionals := []domain.Professional{
		{ID: 1, Name: "Anna", ServiceCities: []string{"Moscow", "Khimki"}},
		{ID: 2, Name: "Boris", ServiceCities: []string{"Saint Petersburg"}},
		{ID: 3, Name: "Vera", ServiceCities: []string{"Balashikha"}},
		{ID: 4, Name: "Gleb", ServiceCities: nil},
	}
	covered := map[string]float64{
		"Moscow":     0,
		"Khimki":     19.54,
		"Balashikha": 20.92,
	}

	candidates := filterByCoverage(professionals, covered)
	require.Len(t, candidates, 2)

	assert.Equal(t, int64(1), candidates[0].professional.ID)
	assert.Equal(t, "Moscow", candidates[0].city)
	assert.Equal(t, 0.0, candidates[0].distanceKm)

	assert.Equal(t, int64(3), candidates[1].professional.ID)
	assert.Equal(t, "Balashikha", candidates[1].city)
}

func TestFilterByCoverage_Empty(t *testing.T) {
	assert.Empty(t, filterByCoverage(nil, map[string]float64{"Moscow": 0}))
	assert.Empty(t, filterByCoverage(
		[]domain.Professional{{ID: 1, ServiceCities: []string{"Moscow"}}},
		map[string]float64{},
	))
}

func TestFilterByTreatment(t *testing.T) {
	candidates := []candidate{
		{professional: domain.Professional{ID: 1, TreatmentIDs: []int64{10, 20}}},
		{professional: domain.Professional{ID: 2, TreatmentIDs: []int64{30}}},
		{professional: domain.Professional{ID: 3, TreatmentIDs: []int64{20}}},
	}

	out := filterByTreatment(candidates, 20)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].professional.ID)
	assert.Equal(t, int64(3), out[1].professional.ID)
}

func TestFilterByGender(t *testing.T) {
	base := []candidate{
		{professional: domain.Professional{ID: 1, Gender: "female"}},
		{professional: domain.Professional{ID: 2, Gender: "male"}},
		{professional: domain.Professional{ID: 3, Gender: "female"}},
	}

	clone := func() []candidate {
		out := make([]candidate, len(base))
		copy(out, base)
		return out
	}

	out := filterByGender(clone(), "female")
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].professional.ID)
	assert.Equal(t, int64(3), out[1].professional.ID)

	assert.Len(t, filterByGender(clone(), ""), 3)
	assert.Len(t, filterByGender(clone(), GenderAny), 3)
	assert.Empty(t, filterByGender(clone(), "other"))
}

func TestNearestServedCity(t *testing.T) {
	p := domain.Professional{ServiceCities: []string{"Balashikha", "Khimki", "Moscow"}}
	covered := map[string]float64{
		"Moscow":     0,
		"Khimki":     19.54,
		"Balashikha": 20.92,
	}

	city, dist, ok := nearestServedCity(&p, covered)
	require.True(t, ok)
	assert.Equal(t, "Moscow", city)
	assert.Equal(t, 0.0, dist)
}
