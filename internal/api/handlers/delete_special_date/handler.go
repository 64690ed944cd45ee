package delete_special_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	workingHours "github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours"
)

const (
	msgInvalidID = "некорректный ID особой даты"
	msgNotFound  = "особая дата не найдена"
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

// Handle DELETE /api/v1/working-hours/special-dates/{id}
// Требует авторизации (X-User-ID)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		h.logger.Warn("DELETE /working-hours/special-dates/{id} - Missing id")
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	err := h.service.DeleteSpecialDate(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, workingHours.ErrInvalidInput):
			h.logger.Warn("DELETE /working-hours/special-dates/{id} - Invalid id: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, workingHours.ErrSpecialDateNotFound):
			h.logger.Warn("DELETE /working-hours/special-dates/{id} - Not found: id=%s, user_id=%d", id, userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /working-hours/special-dates/{id} - Failed to delete: id=%s, user_id=%d, error=%v", id, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /working-hours/special-dates/{id} - Deleted: id=%s, user_id=%d", id, userID)
	handlers.RespondNoContent(w)
}
