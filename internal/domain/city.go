package domain

import "time"

// City is a serviceable city with coordinates used to derive pairwise distances
type City struct {
	ID        int64
	Name      string
	Latitude  float64
	Longitude float64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CityDistance is the stored distance between a pair of cities.
// One row exists per unordered pair, stored with FromCity < ToCity
// (lexicographic); reads must query both directions.
type CityDistance struct {
	FromCity   string
	ToCity     string
	DistanceKm float64
}

// CoveredCity is a city within a coverage radius of some origin
type CoveredCity struct {
	Name       string
	DistanceKm float64
}
