package resolve_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	resolveAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/resolve_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

const (
	msgMissingDate      = "параметр date обязателен"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime      = "некорректный формат времени, ожидается HH:mm"
	msgInvalidBasePrice = "некорректное значение basePrice"
	msgInvalidParams    = "некорректные параметры запроса"
)

type Handler struct {
	useCase ResolveAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase ResolveAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (обязательный, YYYY-MM-DD), time (опционально, HH:mm),
// basePrice (опционально)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &resolveAvailability.Request{Date: date}

	if timeStr := r.URL.Query().Get("time"); timeStr != "" {
		startTime, err := types.NewTimeStringFromString(timeStr)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.StartTime = &startTime
	}

	if basePriceStr := r.URL.Query().Get("basePrice"); basePriceStr != "" {
		basePrice, err := strconv.ParseFloat(basePriceStr, 64)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid basePrice: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBasePrice)
			return
		}
		req.BasePrice = &basePrice
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, resolveAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /availability - Failed to resolve availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
