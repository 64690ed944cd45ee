package workinghours

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
)

// Service сервис управления расписанием рабочих часов
type Service struct {
	repo      WorkingHoursRepository
	txManager TxManager
	log       Logger
}

// NewService создаёт сервис рабочих часов
func NewService(repo WorkingHoursRepository, txManager TxManager, log Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		log:       log,
	}
}

// GetSettings возвращает полные настройки: недельные правила и все особые даты.
// Если правила ещё не настроены, возвращает 7 неактивных дней по умолчанию
// (09:00 - 17:00), не сохраняя их в базу.
func (s *Service) GetSettings(ctx context.Context) (*models.SettingsResponse, error) {
	rules, err := s.repo.GetWeekdayRules(ctx)
	if err != nil {
		s.log.Error("GetSettings: failed to load weekday rules: %v", err)
		return nil, fmt.Errorf("%w: GetSettings - failed to load weekday rules: %v", ErrInternal, err)
	}

	if len(rules) == 0 {
		rules = defaultWeekdayRules()
	}

	specialDates, err := s.repo.GetSpecialDates(ctx)
	if err != nil {
		s.log.Error("GetSettings: failed to load special dates: %v", err)
		return nil, fmt.Errorf("%w: GetSettings - failed to load special dates: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(rules, specialDates), nil
}

// UpdateWeekdayRules обновляет недельное расписание целиком.
// Каждый переданный день апсертится по номеру дня недели - дубликаты
// невозможны по построению (UNIQUE(day) в базе).
func (s *Service) UpdateWeekdayRules(ctx context.Context, req *models.UpdateWeekdayRulesRequest) (*models.SettingsResponse, error) {
	if err := validateWeekdayRules(req.Rules); err != nil {
		return nil, fmt.Errorf("%w: UpdateWeekdayRules - %v", ErrInvalidInput, err)
	}

	rules := make([]domain.WeekdayRule, 0, len(req.Rules))
	for i := range req.Rules {
		rules = append(rules, req.Rules[i].ToDomainRule())
	}

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		return s.repo.UpsertWeekdayRules(ctx, rules)
	})
	if err != nil {
		s.log.Error("UpdateWeekdayRules: failed to upsert rules for user %d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: UpdateWeekdayRules - failed to upsert rules: %v", ErrInternal, err)
	}

	s.log.Info("UpdateWeekdayRules: user %d updated %d weekday rules", req.UserID, len(rules))

	return s.GetSettings(ctx)
}

// CreateSpecialDate создаёт особую дату. На одну календарную дату допускается
// только одна запись - попытка создать вторую возвращает ErrSpecialDateExists.
func (s *Service) CreateSpecialDate(ctx context.Context, req *models.CreateSpecialDateRequest) (*models.SpecialDateResponse, error) {
	sd := req.ToDomainSpecialDate()
	if err := validateSpecialDate(sd); err != nil {
		return nil, fmt.Errorf("%w: CreateSpecialDate - %v", ErrInvalidInput, err)
	}

	existing, err := s.repo.GetSpecialDateByDate(ctx, sd.Date)
	if err != nil && !errors.Is(err, workinghours.ErrSpecialDateNotFound) {
		s.log.Error("CreateSpecialDate: failed to check date uniqueness: %v", err)
		return nil, fmt.Errorf("%w: CreateSpecialDate - failed to check date: %v", ErrInternal, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: CreateSpecialDate - date %s already has an override", ErrSpecialDateExists, sd.Date.Format(domain.DateFormat))
	}

	sd.ID = uuid.NewString()

	created, err := s.repo.CreateSpecialDate(ctx, sd)
	if err != nil {
		s.log.Error("CreateSpecialDate: failed to create special date for user %d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: CreateSpecialDate - failed to create: %v", ErrInternal, err)
	}

	s.log.Info("CreateSpecialDate: user %d created special date %s (%s)", req.UserID, created.ID, created.Date.Format(domain.DateFormat))

	resp := models.FromDomainSpecialDate(created)
	return &resp, nil
}

// UpdateSpecialDate обновляет существующую особую дату по ID
func (s *Service) UpdateSpecialDate(ctx context.Context, req *models.UpdateSpecialDateRequest) (*models.SpecialDateResponse, error) {
	sd := req.ToDomainSpecialDate()
	if err := validateSpecialDate(sd); err != nil {
		return nil, fmt.Errorf("%w: UpdateSpecialDate - %v", ErrInvalidInput, err)
	}

	current, err := s.repo.GetSpecialDateByID(ctx, sd.ID)
	if err != nil {
		if errors.Is(err, workinghours.ErrSpecialDateNotFound) {
			return nil, fmt.Errorf("%w: UpdateSpecialDate - special date %s not found", ErrSpecialDateNotFound, sd.ID)
		}
		s.log.Error("UpdateSpecialDate: failed to load special date %s: %v", sd.ID, err)
		return nil, fmt.Errorf("%w: UpdateSpecialDate - failed to load: %v", ErrInternal, err)
	}

	// Перенос на другую дату допустим только если новая дата свободна
	if !domain.IsSameDay(current.Date, sd.Date) {
		existing, err := s.repo.GetSpecialDateByDate(ctx, sd.Date)
		if err != nil && !errors.Is(err, workinghours.ErrSpecialDateNotFound) {
			s.log.Error("UpdateSpecialDate: failed to check date uniqueness: %v", err)
			return nil, fmt.Errorf("%w: UpdateSpecialDate - failed to check date: %v", ErrInternal, err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: UpdateSpecialDate - date %s already has an override", ErrSpecialDateExists, sd.Date.Format(domain.DateFormat))
		}
	}

	updated, err := s.repo.UpdateSpecialDate(ctx, sd)
	if err != nil {
		if errors.Is(err, workinghours.ErrSpecialDateNotFound) {
			return nil, fmt.Errorf("%w: UpdateSpecialDate - special date %s not found", ErrSpecialDateNotFound, sd.ID)
		}
		s.log.Error("UpdateSpecialDate: failed to update special date %s: %v", sd.ID, err)
		return nil, fmt.Errorf("%w: UpdateSpecialDate - failed to update: %v", ErrInternal, err)
	}

	s.log.Info("UpdateSpecialDate: user %d updated special date %s", req.UserID, updated.ID)

	resp := models.FromDomainSpecialDate(updated)
	return &resp, nil
}

// DeleteSpecialDate удаляет особую дату по ID
func (s *Service) DeleteSpecialDate(ctx context.Context, userID int64, id string) error {
	if id == "" {
		return fmt.Errorf("%w: DeleteSpecialDate - id is required", ErrInvalidInput)
	}

	err := s.repo.DeleteSpecialDate(ctx, id)
	if err != nil {
		if errors.Is(err, workinghours.ErrSpecialDateNotFound) {
			return fmt.Errorf("%w: DeleteSpecialDate - special date %s not found", ErrSpecialDateNotFound, id)
		}
		s.log.Error("DeleteSpecialDate: failed to delete special date %s: %v", id, err)
		return fmt.Errorf("%w: DeleteSpecialDate - failed to delete: %v", ErrInternal, err)
	}

	s.log.Info("DeleteSpecialDate: user %d deleted special date %s", userID, id)

	return nil
}

// defaultWeekdayRules возвращает расписание по умолчанию: все 7 дней
// неактивны с рабочим окном 09:00 - 17:00
func defaultWeekdayRules() []domain.WeekdayRule {
	now := time.Now()
	rules := make([]domain.WeekdayRule, 0, domain.DaysPerWeek)
	for day := 0; day < domain.DaysPerWeek; day++ {
		rules = append(rules, domain.WeekdayRule{
			Day:        day,
			IsActive:   false,
			StartTime:  domain.DefaultWorkdayStart,
			EndTime:    domain.DefaultWorkdayEnd,
			Adjustment: domain.NoAdjustment(),
			UpdatedAt:  now,
		})
	}
	return rules
}
