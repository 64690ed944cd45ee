package deactivate_city

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/coverage"
)

const (
	msgInvalidName = "некорректное имя города"
	msgNotFound    = "город не найден"
)

type Handler struct {
	service CoverageService
	logger  Logger
}

func NewHandler(service CoverageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/cities/{cityName}
// Деактивирует город и исключает его из матрицы расстояний.
// Требует авторизации (X-User-ID)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	vars := mux.Vars(r)
	cityName := vars["cityName"]
	if cityName == "" {
		h.logger.Warn("DELETE /cities/{cityName} - Missing city name")
		handlers.RespondBadRequest(w, msgInvalidName)
		return
	}

	err := h.service.DeactivateCity(r.Context(), userID, cityName)
	if err != nil {
		switch {
		case errors.Is(err, coverage.ErrInvalidInput):
			h.logger.Warn("DELETE /cities/{cityName} - Invalid name: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, coverage.ErrCityNotFound):
			h.logger.Warn("DELETE /cities/{cityName} - Not found: city=%s, user_id=%d", cityName, userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /cities/{cityName} - Failed to deactivate: city=%s, user_id=%d, error=%v", cityName, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cities/{cityName} - Deactivated: city=%s, user_id=%d", cityName, userID)
	handlers.RespondNoContent(w)
}
