package coverage

import (
	"math"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const earthRadiusKm = 6371.0

// haversineKm считает расстояние по большому кругу между двумя точками
// в километрах, с округлением до двух знаков
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*100) / 100
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// buildPairsFor строит пары расстояний от одного города до каждого из others.
// Сам город из others пропускается.
func buildPairsFor(city *domain.City, others []domain.City) []domain.CityDistance {
	pairs := make([]domain.CityDistance, 0, len(others))
	for _, other := range others {
		if other.Name == city.Name {
			continue
		}
		pairs = append(pairs, domain.CityDistance{
			FromCity:   city.Name,
			ToCity:     other.Name,
			DistanceKm: haversineKm(city.Latitude, city.Longitude, other.Latitude, other.Longitude),
		})
	}
	return pairs
}

// buildDistancePairs строит все уникальные пары расстояний между городами.
// Каноническое направление: FromCity лексикографически меньше ToCity.
func buildDistancePairs(cities []domain.City) []domain.CityDistance {
	pairs := make([]domain.CityDistance, 0, len(cities)*(len(cities)-1)/2)
	for i := 0; i < len(cities); i++ {
		for j := i + 1; j < len(cities); j++ {
			from, to := cities[i], cities[j]
			if from.Name > to.Name {
				from, to = to, from
			}
			pairs = append(pairs, domain.CityDistance{
				FromCity:   from.Name,
				ToCity:     to.Name,
				DistanceKm: haversineKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude),
			})
		}
	}
	return pairs
}
