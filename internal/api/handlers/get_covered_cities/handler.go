package get_covered_cities

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/coverage"
)

const (
	msgInvalidCityName = "некорректное имя города"
	msgInvalidRadius   = "некорректное значение radiusKm"
	msgCityNotFound    = "город не найден в справочнике"
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

// Handle GET /api/v1/cities/{cityName}/covered
// Query params: radiusKm (опционально, по умолчанию радиус из конфига; -1 = без ограничения)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cityName := vars["cityName"]
	if cityName == "" {
		h.logger.Warn("GET /cities/{cityName}/covered - Missing city name")
		handlers.RespondBadRequest(w, msgInvalidCityName)
		return
	}

	radiusKm := domain.DefaultRadiusKm
	if radiusStr := r.URL.Query().Get("radiusKm"); radiusStr != "" {
		parsed, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			h.logger.Warn("GET /cities/{cityName}/covered - Invalid radiusKm: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRadius)
			return
		}
		radiusKm = parsed
	}

	result, err := h.service.GetCoveredCities(r.Context(), cityName, radiusKm)
	if err != nil {
		switch {
		case errors.Is(err, coverage.ErrInvalidInput):
			h.logger.Warn("GET /cities/{cityName}/covered - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCityName)

		case errors.Is(err, coverage.ErrCityNotFound):
			h.logger.Warn("GET /cities/{cityName}/covered - City not found: %s", cityName)
			handlers.RespondNotFound(w, msgCityNotFound)

		default:
			h.logger.Error("GET /cities/{cityName}/covered - Failed to load coverage: city=%s, error=%v", cityName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
