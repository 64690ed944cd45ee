package find_professionals

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.TreatmentID <= 0 {
		return fmt.Errorf("treatmentId is required")
	}
	if strings.TrimSpace(req.City) == "" {
		return fmt.Errorf("city is required")
	}
	if req.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if !req.StartTime.IsValid() {
		return fmt.Errorf("time must be in HH:mm format, got %q", string(req.StartTime))
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("durationMinutes must be positive")
	}
	// Отрицательный радиус допустим только как признак "без ограничения"
	if req.RadiusKm != nil && *req.RadiusKm < 0 && *req.RadiusKm != domain.RadiusUnlimited {
		return fmt.Errorf("radiusKm must be non-negative or %v for unlimited", domain.RadiusUnlimited)
	}
	return nil
}
