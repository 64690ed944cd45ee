package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модели

// AdjustmentInput корректировка цены в запросе
type AdjustmentInput struct {
	Kind   string  `json:"kind"` // "percentage" | "fixed"
	Value  float64 `json:"value"`
	Reason string  `json:"reason,omitempty"`
}

// WeekdayRuleInput одно недельное правило в запросе обновления
type WeekdayRuleInput struct {
	Day        int              `json:"day"` // 0 = воскресенье ... 6 = суббота
	IsActive   bool             `json:"isActive"`
	StartTime  string           `json:"startTime"`
	EndTime    string           `json:"endTime"`
	Adjustment *AdjustmentInput `json:"adjustment,omitempty"`
	Notes      string           `json:"notes,omitempty"`
}

// UpdateWeekdayRulesRequest запрос на полное обновление недельного расписания.
// Передаются все 7 дней - апсерт по дню недели, правила не удаляются.
type UpdateWeekdayRulesRequest struct {
	UserID int64              `json:"userId"`
	Rules  []WeekdayRuleInput `json:"rules"`
}

// CreateSpecialDateRequest запрос на создание особой даты
type CreateSpecialDateRequest struct {
	UserID     int64            `json:"userId"`
	Date       time.Time        `json:"date"`
	Name       string           `json:"name"`
	IsActive   bool             `json:"isActive"`
	StartTime  *string          `json:"startTime,omitempty"` // nil = весь день (для активной даты)
	EndTime    *string          `json:"endTime,omitempty"`
	Adjustment *AdjustmentInput `json:"adjustment,omitempty"`
	Notes      string           `json:"notes,omitempty"`
}

// UpdateSpecialDateRequest запрос на обновление особой даты
type UpdateSpecialDateRequest struct {
	UserID     int64            `json:"userId"`
	ID         string           `json:"id"`
	Date       time.Time        `json:"date"`
	Name       string           `json:"name"`
	IsActive   bool             `json:"isActive"`
	StartTime  *string          `json:"startTime,omitempty"`
	EndTime    *string          `json:"endTime,omitempty"`
	Adjustment *AdjustmentInput `json:"adjustment,omitempty"`
	Notes      string           `json:"notes,omitempty"`
}

// Response модели

// AdjustmentResponse корректировка цены в ответе
type AdjustmentResponse struct {
	Kind   string  `json:"kind"`
	Value  float64 `json:"value"`
	Reason string  `json:"reason,omitempty"`
}

// WeekdayRuleResponse недельное правило в ответе
type WeekdayRuleResponse struct {
	Day        int                 `json:"day"`
	IsActive   bool                `json:"isActive"`
	StartTime  string              `json:"startTime"`
	EndTime    string              `json:"endTime"`
	Adjustment *AdjustmentResponse `json:"adjustment,omitempty"`
	Notes      string              `json:"notes,omitempty"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// SpecialDateResponse особая дата в ответе
type SpecialDateResponse struct {
	ID         string              `json:"id"`
	Date       string              `json:"date"` // YYYY-MM-DD
	Name       string              `json:"name"`
	IsActive   bool                `json:"isActive"`
	StartTime  *string             `json:"startTime,omitempty"`
	EndTime    *string             `json:"endTime,omitempty"`
	Adjustment *AdjustmentResponse `json:"adjustment,omitempty"`
	Notes      string              `json:"notes,omitempty"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// SettingsResponse полные настройки рабочих часов
type SettingsResponse struct {
	WeekdayRules []WeekdayRuleResponse `json:"weekdayRules"`
	SpecialDates []SpecialDateResponse `json:"specialDates"`
}

// Методы конвертации

// ToDomainAdjustment конвертирует входную корректировку в domain модель
func (a *AdjustmentInput) ToDomainAdjustment() domain.PriceAdjustment {
	if a == nil {
		return domain.NoAdjustment()
	}
	return domain.PriceAdjustment{
		Kind:   domain.AdjustmentKind(a.Kind),
		Value:  a.Value,
		Reason: a.Reason,
	}
}

// ToDomainRule конвертирует входное правило в domain модель
func (r *WeekdayRuleInput) ToDomainRule() domain.WeekdayRule {
	return domain.WeekdayRule{
		Day:        r.Day,
		IsActive:   r.IsActive,
		StartTime:  types.TimeString(r.StartTime),
		EndTime:    types.TimeString(r.EndTime),
		Adjustment: r.Adjustment.ToDomainAdjustment(),
		Notes:      r.Notes,
	}
}

// ToDomainSpecialDate конвертирует запрос создания в domain модель (без ID)
func (r *CreateSpecialDateRequest) ToDomainSpecialDate() *domain.SpecialDate {
	return &domain.SpecialDate{
		Date:       r.Date,
		Name:       r.Name,
		IsActive:   r.IsActive,
		StartTime:  optionalTimeString(r.StartTime),
		EndTime:    optionalTimeString(r.EndTime),
		Adjustment: r.Adjustment.ToDomainAdjustment(),
		Notes:      r.Notes,
	}
}

// ToDomainSpecialDate конвертирует запрос обновления в domain модель
func (r *UpdateSpecialDateRequest) ToDomainSpecialDate() *domain.SpecialDate {
	return &domain.SpecialDate{
		ID:         r.ID,
		Date:       r.Date,
		Name:       r.Name,
		IsActive:   r.IsActive,
		StartTime:  optionalTimeString(r.StartTime),
		EndTime:    optionalTimeString(r.EndTime),
		Adjustment: r.Adjustment.ToDomainAdjustment(),
		Notes:      r.Notes,
	}
}

// FromDomainAdjustment конвертирует корректировку в DTO; для "none" возвращает nil
func FromDomainAdjustment(a domain.PriceAdjustment) *AdjustmentResponse {
	if a.IsNone() {
		return nil
	}
	return &AdjustmentResponse{
		Kind:   string(a.Kind),
		Value:  a.Value,
		Reason: a.Reason,
	}
}

// FromDomainRule конвертирует недельное правило в DTO
func FromDomainRule(rule *domain.WeekdayRule) WeekdayRuleResponse {
	return WeekdayRuleResponse{
		Day:        rule.Day,
		IsActive:   rule.IsActive,
		StartTime:  rule.StartTime.String(),
		EndTime:    rule.EndTime.String(),
		Adjustment: FromDomainAdjustment(rule.Adjustment),
		Notes:      rule.Notes,
		UpdatedAt:  rule.UpdatedAt,
	}
}

// FromDomainSpecialDate конвертирует особую дату в DTO
func FromDomainSpecialDate(sd *domain.SpecialDate) SpecialDateResponse {
	return SpecialDateResponse{
		ID:         sd.ID,
		Date:       sd.Date.Format(domain.DateFormat),
		Name:       sd.Name,
		IsActive:   sd.IsActive,
		StartTime:  optionalString(sd.StartTime),
		EndTime:    optionalString(sd.EndTime),
		Adjustment: FromDomainAdjustment(sd.Adjustment),
		Notes:      sd.Notes,
		UpdatedAt:  sd.UpdatedAt,
	}
}

// FromDomainSettings собирает полный ответ настроек
func FromDomainSettings(rules []domain.WeekdayRule, specialDates []domain.SpecialDate) *SettingsResponse {
	resp := &SettingsResponse{
		WeekdayRules: make([]WeekdayRuleResponse, 0, len(rules)),
		SpecialDates: make([]SpecialDateResponse, 0, len(specialDates)),
	}

	for i := range rules {
		resp.WeekdayRules = append(resp.WeekdayRules, FromDomainRule(&rules[i]))
	}
	for i := range specialDates {
		resp.SpecialDates = append(resp.SpecialDates, FromDomainSpecialDate(&specialDates[i]))
	}

	return resp
}

func optionalTimeString(s *string) *types.TimeString {
	if s == nil || *s == "" {
		return nil
	}
	ts := types.TimeString(*s)
	return &ts
}

func optionalString(t *types.TimeString) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
