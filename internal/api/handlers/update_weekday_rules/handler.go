package update_weekday_rules

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	workingHours "github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRules       = "некорректные правила расписания"
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

// Handle PUT /api/v1/working-hours/weekdays
// Требует авторизации (X-User-ID)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req models.UpdateWeekdayRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /working-hours/weekdays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.UpdateWeekdayRules(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, workingHours.ErrInvalidInput):
			h.logger.Warn("PUT /working-hours/weekdays - Invalid rules: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRules)

		default:
			h.logger.Error("PUT /working-hours/weekdays - Failed to update rules: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /working-hours/weekdays - Rules updated: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
