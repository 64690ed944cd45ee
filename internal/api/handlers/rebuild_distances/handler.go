package rebuild_distances

import (
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
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

// Handle POST /api/v1/cities/distances/rebuild
// Требует авторизации (X-User-ID)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.service.RebuildDistances(r.Context(), userID)
	if err != nil {
		h.logger.Error("POST /cities/distances/rebuild - Failed: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /cities/distances/rebuild - Rebuilt %d pairs for %d cities: user_id=%d",
		result.PairCount, result.CityCount, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
