package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// CreateCityRequest запрос на добавление города в справочник
type CreateCityRequest struct {
	UserID    int64   `json:"userId"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CityResponse город в ответе
type CityResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// CoveredCityResponse город в зоне покрытия с расстоянием от центра поиска
type CoveredCityResponse struct {
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distanceKm"`
}

// CoverageResponse результат запроса зоны покрытия
type CoverageResponse struct {
	Origin   string                `json:"origin"`
	RadiusKm float64               `json:"radiusKm"` // -1 означает без ограничения
	Cities   []CoveredCityResponse `json:"cities"`
}

// RebuildDistancesResponse результат перестроения матрицы расстояний
type RebuildDistancesResponse struct {
	CityCount int `json:"cityCount"`
	PairCount int `json:"pairCount"`
}

// ToDomainCity конвертирует запрос создания в domain модель
func (r *CreateCityRequest) ToDomainCity() *domain.City {
	return &domain.City{
		Name:      r.Name,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		IsActive:  true,
	}
}

// FromDomainCity конвертирует город в DTO
func FromDomainCity(city *domain.City) *CityResponse {
	return &CityResponse{
		ID:        city.ID,
		Name:      city.Name,
		Latitude:  city.Latitude,
		Longitude: city.Longitude,
		IsActive:  city.IsActive,
		CreatedAt: city.CreatedAt,
	}
}

// FromDomainCoverage собирает ответ зоны покрытия
func FromDomainCoverage(origin string, radiusKm float64, covered []domain.CoveredCity) *CoverageResponse {
	resp := &CoverageResponse{
		Origin:   origin,
		RadiusKm: radiusKm,
		Cities:   make([]CoveredCityResponse, 0, len(covered)),
	}
	for _, c := range covered {
		resp.Cities = append(resp.Cities, CoveredCityResponse{
			Name:       c.Name,
			DistanceKm: c.DistanceKm,
		})
	}
	return resp
}
