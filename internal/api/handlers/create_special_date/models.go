package create_special_date

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
)

// CreateSpecialDateRequest HTTP запрос создания особой даты
type CreateSpecialDateRequest struct {
	Date       string                  `json:"date"` // YYYY-MM-DD
	Name       string                  `json:"name"`
	IsActive   bool                    `json:"isActive"`
	StartTime  *string                 `json:"startTime,omitempty"`
	EndTime    *string                 `json:"endTime,omitempty"`
	Adjustment *models.AdjustmentInput `json:"adjustment,omitempty"`
	Notes      string                  `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSpecialDateRequest) ToServiceRequest(userID int64) (*models.CreateSpecialDateRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	return &models.CreateSpecialDateRequest{
		UserID:     userID,
		Date:       date,
		Name:       r.Name,
		IsActive:   r.IsActive,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Adjustment: r.Adjustment,
		Notes:      r.Notes,
	}, nil
}
