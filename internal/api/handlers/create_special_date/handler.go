package create_special_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	workingHours "github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams      = "некорректные параметры особой даты"
	msgDateAlreadyExists  = "на эту дату уже есть особая запись"
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

// Handle POST /api/v1/working-hours/special-dates
// Требует авторизации (X-User-ID)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req CreateSpecialDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /working-hours/special-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID)
	if err != nil {
		h.logger.Warn("POST /working-hours/special-dates - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateSpecialDate(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, workingHours.ErrInvalidInput):
			h.logger.Warn("POST /working-hours/special-dates - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, workingHours.ErrSpecialDateExists):
			h.logger.Warn("POST /working-hours/special-dates - Date already exists: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondConflict(w, msgDateAlreadyExists)

		default:
			h.logger.Error("POST /working-hours/special-dates - Failed to create: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /working-hours/special-dates - Created: id=%s, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
