package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
	}{
		{
			name: "same point",
			lat1: 55.7558, lon1: 37.6173,
			lat2: 55.7558, lon2: 37.6173,
			want: 0,
		},
		{
			name: "moscow to saint petersburg",
			lat1: 55.7558, lon1: 37.6173,
			lat2: 59.9343, lon2: 30.3351,
			want: 633.02,
		},
		{
			name: "moscow to khimki",
			lat1: 55.7558, lon1: 37.6173,
			lat2: 55.8970, lon2: 37.4297,
			want: 19.54,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := haversineKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.want, got, 1.0)
		})
	}
}

func TestHaversineKm_Symmetric(t *testing.T) {
	forward := haversineKm(55.7558, 37.6173, 59.9343, 30.3351)
	backward := haversineKm(59.9343, 30.3351, 55.7558, 37.6173)
	assert.Equal(t, forward, backward)
}

func TestBuildDistancePairs(t *testing.T) {
	cities := []domain.City{
		{Name: "Khimki", Latitude: 55.8970, Longitude: 37.4297},
		{Name: "Moscow", Latitude: 55.7558, Longitude: 37.6173},
		{Name: "Balashikha", Latitude: 55.7964, Longitude: 37.9382},
	}

	pairs := buildDistancePairs(cities)
	require.Len(t, pairs, 3)

	for _, pair := range pairs {
		assert.Less(t, pair.FromCity, pair.ToCity, "pairs must be stored in canonical order")
		assert.Greater(t, pair.DistanceKm, 0.0)
	}
}

func TestBuildPairsFor(t *testing.T) {
	city := &domain.City{Name: "Moscow", Latitude: 55.7558, Longitude: 37.6173}
	others := []domain.City{
		{Name: "Khimki", Latitude: 55.8970, Longitude: 37.4297},
		{Name: "Moscow", Latitude: 55.7558, Longitude: 37.6173}, // сам город пропускается
		{Name: "Balashikha", Latitude: 55.7964, Longitude: 37.9382},
	}

	pairs := buildPairsFor(city, others)
	require.Len(t, pairs, 2)

	for _, pair := range pairs {
		assert.Equal(t, "Moscow", pair.FromCity)
		assert.Greater(t, pair.DistanceKm, 0.0)
	}
}

func TestBuildDistancePairs_Empty(t *testing.T) {
	assert.Empty(t, buildDistancePairs(nil))
	assert.Empty(t, buildDistancePairs([]domain.City{{Name: "Moscow"}}))
}
