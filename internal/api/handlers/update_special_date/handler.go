package update_special_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	workingHours "github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidID          = "некорректный ID особой даты"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams      = "некорректные параметры особой даты"
	msgNotFound           = "особая дата не найдена"
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

// Handle PUT /api/v1/working-hours/special-dates/{id}
// Требует авторизации (X-User-ID)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		h.logger.Warn("PUT /working-hours/special-dates/{id} - Missing id")
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateSpecialDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /working-hours/special-dates/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID, id)
	if err != nil {
		h.logger.Warn("PUT /working-hours/special-dates/{id} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.UpdateSpecialDate(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, workingHours.ErrInvalidInput):
			h.logger.Warn("PUT /working-hours/special-dates/{id} - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, workingHours.ErrSpecialDateNotFound):
			h.logger.Warn("PUT /working-hours/special-dates/{id} - Not found: id=%s, user_id=%d", id, userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, workingHours.ErrSpecialDateExists):
			h.logger.Warn("PUT /working-hours/special-dates/{id} - Target date taken: id=%s, user_id=%d", id, userID)
			handlers.RespondConflict(w, msgDateAlreadyExists)

		default:
			h.logger.Error("PUT /working-hours/special-dates/{id} - Failed to update: id=%s, user_id=%d, error=%v", id, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /working-hours/special-dates/{id} - Updated: id=%s, user_id=%d", id, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
