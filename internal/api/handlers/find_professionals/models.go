package find_professionals

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	findProfessionals "github.com/m04kA/SMC-AvailabilityService/internal/usecase/find_professionals"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// FindProfessionalsRequest HTTP запрос подбора специалистов
type FindProfessionalsRequest struct {
	TreatmentID     int64    `json:"treatmentId"`
	City            string   `json:"city"`
	Date            string   `json:"date"` // YYYY-MM-DD
	Time            string   `json:"time"` // HH:mm
	DurationMinutes int      `json:"durationMinutes"`
	RadiusKm        *float64 `json:"radiusKm,omitempty"`

	GenderPreference string `json:"genderPreference,omitempty"` // "", "any" или конкретный пол
	ProfessionalID   *int64 `json:"professionalId,omitempty"`   // проверить конкретного специалиста
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *FindProfessionalsRequest) ToUseCaseRequest(userID int64) (*findProfessionals.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("invalid time: %w", err)
	}

	return &findProfessionals.Request{
		UserID:          userID,
		TreatmentID:     r.TreatmentID,
		City:            r.City,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		RadiusKm:        r.RadiusKm,

		GenderPreference: r.GenderPreference,
		ProfessionalID:   r.ProfessionalID,
	}, nil
}
