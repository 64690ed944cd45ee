package resolve_availability

import "fmt"

func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if req.StartTime != nil && !req.StartTime.IsValid() {
		return fmt.Errorf("time must be in HH:mm format, got %q", string(*req.StartTime))
	}
	if req.BasePrice != nil && *req.BasePrice < 0 {
		return fmt.Errorf("basePrice cannot be negative")
	}
	return nil
}
