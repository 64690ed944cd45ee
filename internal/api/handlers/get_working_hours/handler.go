package get_working_hours

import (
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
)

type Handler struct {
	service WorkingHoursService
	logger  Logger
}

func NewHandler(service WorkingHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/working-hours
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetSettings(r.Context())
	if err != nil {
		h.logger.Error("GET /working-hours - Failed to load settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
