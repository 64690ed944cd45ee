package create_city

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/coverage"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/coverage/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректные параметры города"
	msgCityAlreadyExists  = "город с таким именем уже существует"
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

// Handle POST /api/v1/cities
// Требует авторизации (X-User-ID)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req models.CreateCityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.CreateCity(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, coverage.ErrInvalidInput):
			h.logger.Warn("POST /cities - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, coverage.ErrCityAlreadyExists):
			h.logger.Warn("POST /cities - City already exists: user_id=%d, name=%s", userID, req.Name)
			handlers.RespondConflict(w, msgCityAlreadyExists)

		default:
			h.logger.Error("POST /cities - Failed to create city: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cities - City created: id=%d, name=%s, user_id=%d", result.ID, result.Name, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
