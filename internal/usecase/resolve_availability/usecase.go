package resolve_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/workinghours"
)

// UseCase определяет доступность бизнеса на конкретную дату:
// особая дата перекрывает недельное правило, недельное правило
// перекрывает отсутствие настроек
type UseCase struct {
	workingHoursRepo WorkingHoursRepository
	log              Logger
}

// NewUseCase создаёт usecase определения доступности
func NewUseCase(workingHoursRepo WorkingHoursRepository, log Logger) *UseCase {
	return &UseCase{
		workingHoursRepo: workingHoursRepo,
		log:              log,
	}
}

// Execute выполняет определение доступности на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация запроса
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: Execute - %v", ErrInvalidInput, err)
	}

	// 2. Загружаем недельные правила
	rules, err := uc.workingHoursRepo.GetWeekdayRules(ctx)
	if err != nil {
		uc.log.Error("ResolveAvailability: failed to load weekday rules: %v", err)
		return nil, fmt.Errorf("%w: Execute - failed to load weekday rules: %v", ErrInternal, err)
	}

	// 3. Ищем особую дату на запрошенный день
	var overrides []domain.SpecialDate
	specialDate, err := uc.workingHoursRepo.GetSpecialDateByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, workinghours.ErrSpecialDateNotFound) {
		uc.log.Error("ResolveAvailability: failed to load special date: %v", err)
		return nil, fmt.Errorf("%w: Execute - failed to load special date: %v", ErrInternal, err)
	}
	if specialDate != nil {
		overrides = append(overrides, *specialDate)
	}

	// 4. Вычисляем доступность
	result := domain.ResolveAvailability(req.Date, rules, overrides)

	return toResponse(req, &result), nil
}
