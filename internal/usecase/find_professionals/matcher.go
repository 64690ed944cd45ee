package find_professionals

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// candidate специалист, прошедший географический фильтр
type candidate struct {
	professional domain.Professional
	city         string
	distanceKm   float64
}

// filterByCoverage оставляет специалистов, обслуживающих хотя бы один город
// из зоны покрытия. Для каждого запоминается ближайший такой город.
func filterByCoverage(professionals []domain.Professional, covered map[string]float64) []candidate {
	candidates := make([]candidate, 0, len(professionals))
	for i := range professionals {
		city, distanceKm, ok := nearestServedCity(&professionals[i], covered)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{
			professional: professionals[i],
			city:         city,
			distanceKm:   distanceKm,
		})
	}
	return candidates
}

// filterByTreatment оставляет специалистов с квалификацией на услугу
func filterByTreatment(candidates []candidate, treatmentID int64) []candidate {
	out := candidates[:0]
	for _, c := range candidates {
		if c.professional.QualifiedFor(treatmentID) {
			out = append(out, c)
		}
	}
	return out
}

// filterByGender оставляет специалистов указанного пола.
// Пустое предпочтение или "any" пропускает всех.
func filterByGender(candidates []candidate, preference string) []candidate {
	if preference == "" || preference == GenderAny {
		return candidates
	}
	out := candidates[:0]
	for _, c := range candidates {
		if c.professional.Gender == preference {
			out = append(out, c)
		}
	}
	return out
}

// nearestServedCity возвращает ближайший к центру поиска город из зоны
// покрытия, который обслуживает специалист
func nearestServedCity(p *domain.Professional, covered map[string]float64) (string, float64, bool) {
	var (
		bestCity string
		bestDist float64
		found    bool
	)
	for _, city := range p.ServiceCities {
		dist, ok := covered[city]
		if !ok {
			continue
		}
		if !found || dist < bestDist {
			bestCity, bestDist, found = city, dist, true
		}
	}
	return bestCity, bestDist, found
}
