package find_professionals

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// GenderAny отключает фильтр по полу специалиста
const GenderAny = "any"

// Request запрос на подбор специалистов для бронирования
type Request struct {
	UserID           int64
	TreatmentID      int64
	City             string
	Date             time.Time
	StartTime        types.TimeString
	DurationMinutes  int
	RadiusKm         *float64 // nil = радиус по умолчанию из конфига
	GenderPreference string   // "" или "any" = без фильтра
	ProfessionalID   *int64   // при наличии проверяется только этот специалист
}

// SuitableProfessional подходящий специалист в ответе
type SuitableProfessional struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone,omitempty"`
	Gender     string  `json:"gender,omitempty"`
	City       string  `json:"city"`       // ближайший обслуживаемый город из зоны покрытия
	DistanceKm float64 `json:"distanceKm"` // расстояние этого города от центра поиска
}

// Response результат подбора. Пустой список - валидный результат.
type Response struct {
	Professionals []SuitableProfessional `json:"professionals"`
}

func toSuitable(p *domain.Professional, city string, distanceKm float64) SuitableProfessional {
	return SuitableProfessional{
		ID:         p.ID,
		Name:       p.Name,
		Phone:      p.Phone,
		Gender:     p.Gender,
		City:       city,
		DistanceKm: distanceKm,
	}
}
