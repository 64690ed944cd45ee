package domain

import "time"

// Professional is a directory entry: who can serve which cities and treatments.
// ServiceCities are the professional's registered home cities, not the expanded
// coverage set; coverage expansion happens at match time.
type Professional struct {
	ID            int64
	Name          string
	Phone         string
	Gender        string
	IsActive      bool
	ServiceCities []string
	TreatmentIDs  []int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ServesAnyOf returns true if at least one of the professional's service
// cities is present in the given set
func (p *Professional) ServesAnyOf(cities map[string]struct{}) bool {
	for _, city := range p.ServiceCities {
		if _, ok := cities[city]; ok {
			return true
		}
	}
	return false
}

// QualifiedFor returns true if the professional can perform the treatment
func (p *Professional) QualifiedFor(treatmentID int64) bool {
	for _, id := range p.TreatmentIDs {
		if id == treatmentID {
			return true
		}
	}
	return false
}
