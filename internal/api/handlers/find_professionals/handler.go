package find_professionals

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	findProfessionals "github.com/m04kA/SMC-AvailabilityService/internal/usecase/find_professionals"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени"
	msgInvalidParams      = "некорректные параметры запроса"
	msgCityNotFound       = "город не найден в справочнике"
)

type Handler struct {
	useCase FindProfessionalsUseCase
	logger  Logger
}

func NewHandler(useCase FindProfessionalsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/suitable-professionals
// Требует авторизации (X-User-ID)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req FindProfessionalsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/suitable-professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings/suitable-professionals - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findProfessionals.ErrInvalidInput):
			h.logger.Warn("POST /bookings/suitable-professionals - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, findProfessionals.ErrCityNotFound):
			h.logger.Warn("POST /bookings/suitable-professionals - City not found: user_id=%d, city=%s", userID, req.City)
			handlers.RespondNotFound(w, msgCityNotFound)

		default:
			h.logger.Error("POST /bookings/suitable-professionals - Failed to find professionals: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/suitable-professionals - Matched %d professionals: user_id=%d, city=%s",
		len(result.Professionals), userID, req.City)
	handlers.RespondJSON(w, http.StatusOK, result)
}
