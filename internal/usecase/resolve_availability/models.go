package resolve_availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request запрос на определение доступности на дату
type Request struct {
	Date      time.Time
	StartTime *types.TimeString // при наличии isOpen учитывает попадание в рабочее окно
	BasePrice *float64          // при наличии в ответ добавляется итоговая цена
}

// WindowResponse рабочее окно дня
type WindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AdjustmentResponse корректировка цены
type AdjustmentResponse struct {
	Kind   string  `json:"kind"`
	Value  float64 `json:"value"`
	Reason string  `json:"reason,omitempty"`
}

// Response результат определения доступности
type Response struct {
	Date           string              `json:"date"`
	IsOpen         bool                `json:"isOpen"`
	Window         *WindowResponse     `json:"window,omitempty"`
	Adjustment     *AdjustmentResponse `json:"adjustment,omitempty"`
	Source         string              `json:"source"`
	Note           string              `json:"note,omitempty"`
	EffectivePrice *float64            `json:"effectivePrice,omitempty"`
}

func toResponse(req *Request, result *domain.AvailabilityResult) *Response {
	isOpen := result.IsOpen
	// Запрошенное время должно попадать в рабочее окно дня
	if isOpen && req.StartTime != nil {
		isOpen = result.Window != nil && result.Window.Contains(*req.StartTime)
	}

	resp := &Response{
		Date:   req.Date.Format(domain.DateFormat),
		IsOpen: isOpen,
		Source: string(result.Source),
		Note:   result.Note,
	}

	if result.Window != nil {
		resp.Window = &WindowResponse{
			Start: result.Window.Start.String(),
			End:   result.Window.End.String(),
		}
	}
	if !result.Adjustment.IsNone() {
		resp.Adjustment = &AdjustmentResponse{
			Kind:   string(result.Adjustment.Kind),
			Value:  result.Adjustment.Value,
			Reason: result.Adjustment.Reason,
		}
	}
	if req.BasePrice != nil && isOpen {
		price := result.EffectivePrice(*req.BasePrice)
		resp.EffectivePrice = &price
	}

	return resp
}
