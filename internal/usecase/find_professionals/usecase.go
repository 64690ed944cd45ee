package find_professionals

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	professionalStorage "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/professional"
	storage "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/coverage"
)

// UseCase подбирает специалистов для бронирования: зона покрытия города,
// квалификация на услугу, рабочие часы бизнеса и отсутствие конфликтующих
// бронирований
type UseCase struct {
	coverageService  CoverageService
	workingHoursRepo WorkingHoursRepository
	professionalRepo ProfessionalRepository
	bookingClient    BookingServiceClient
	defaultRadiusKm  float64
	log              Logger
}

// NewUseCase создаёт usecase подбора специалистов
func NewUseCase(
	coverageService CoverageService,
	workingHoursRepo WorkingHoursRepository,
	professionalRepo ProfessionalRepository,
	bookingClient BookingServiceClient,
	defaultRadiusKm float64,
	log Logger,
) *UseCase {
	return &UseCase{
		coverageService:  coverageService,
		workingHoursRepo: workingHoursRepo,
		professionalRepo: professionalRepo,
		bookingClient:    bookingClient,
		defaultRadiusKm:  defaultRadiusKm,
		log:              log,
	}
}

// Execute выполняет подбор. Пустой список - валидный результат:
// закрытый день или отсутствие кандидатов не являются ошибкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация запроса
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: Execute - %v", ErrInvalidInput, err)
	}

	// 2. Проверяем доступность бизнеса на запрошенное время
	open, err := uc.businessOpenAt(ctx, req)
	if err != nil {
		return nil, err
	}
	if !open {
		return &Response{Professionals: []SuitableProfessional{}}, nil
	}

	// 3. Разворачиваем зону покрытия вокруг города клиента
	radiusKm := uc.defaultRadiusKm
	if req.RadiusKm != nil {
		radiusKm = *req.RadiusKm
	}
	covered, err := uc.coverageService.CoveredCityNames(ctx, req.City, radiusKm)
	if err != nil {
		if errors.Is(err, coverage.ErrCityNotFound) {
			return nil, fmt.Errorf("%w: Execute - city %s is not covered", ErrCityNotFound, req.City)
		}
		uc.log.Error("FindProfessionals: failed to expand coverage for %s: %v", req.City, err)
		return nil, fmt.Errorf("%w: Execute - failed to expand coverage: %v", ErrInternal, err)
	}

	// 4. Загружаем кандидатов: весь справочник или одного конкретного специалиста
	professionals, err := uc.loadCandidates(ctx, req)
	if err != nil {
		return nil, err
	}

	// 5. Фильтруем: география, квалификация, предпочтение по полу
	candidates := filterByCoverage(professionals, covered)
	candidates = filterByTreatment(candidates, req.TreatmentID)
	candidates = filterByGender(candidates, req.GenderPreference)

	// 6. Отбрасываем занятых: конфликт проверяет сервис бронирований
	suitable := make([]SuitableProfessional, 0, len(candidates))
	for _, c := range candidates {
		hasConflict, err := uc.bookingClient.HasConflictingBooking(ctx, c.professional.ID, req.Date, req.StartTime, req.DurationMinutes)
		if err != nil {
			uc.log.Error("FindProfessionals: conflict check failed for professional %d: %v", c.professional.ID, err)
			return nil, fmt.Errorf("%w: Execute - conflict check failed: %v", ErrInternal, err)
		}
		if hasConflict {
			continue
		}
		suitable = append(suitable, toSuitable(&c.professional, c.city, c.distanceKm))
	}

	uc.log.Info("FindProfessionals: user %d matched %d of %d professionals for treatment %d in %s",
		req.UserID, len(suitable), len(professionals), req.TreatmentID, req.City)

	return &Response{Professionals: suitable}, nil
}

// loadCandidates возвращает пул кандидатов для фильтрации.
// При запросе конкретного специалиста неизвестный или неактивный ID
// даёт пустой пул, а не ошибку.
func (uc *UseCase) loadCandidates(ctx context.Context, req *Request) ([]domain.Professional, error) {
	if req.ProfessionalID == nil {
		professionals, err := uc.professionalRepo.ListActive(ctx)
		if err != nil {
			uc.log.Error("FindProfessionals: failed to list professionals: %v", err)
			return nil, fmt.Errorf("%w: Execute - failed to list professionals: %v", ErrInternal, err)
		}
		return professionals, nil
	}

	professional, err := uc.professionalRepo.GetByID(ctx, *req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalStorage.ErrProfessionalNotFound) {
			return nil, nil
		}
		uc.log.Error("FindProfessionals: failed to load professional %d: %v", *req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: Execute - failed to load professional: %v", ErrInternal, err)
	}
	if !professional.IsActive {
		return nil, nil
	}

	return []domain.Professional{*professional}, nil
}

// businessOpenAt проверяет, что рабочее окно бизнеса покрывает запрошенный
// интервал услуги целиком
func (uc *UseCase) businessOpenAt(ctx context.Context, req *Request) (bool, error) {
	rules, err := uc.workingHoursRepo.GetWeekdayRules(ctx)
	if err != nil {
		uc.log.Error("FindProfessionals: failed to load weekday rules: %v", err)
		return false, fmt.Errorf("%w: Execute - failed to load weekday rules: %v", ErrInternal, err)
	}

	var overrides []domain.SpecialDate
	specialDate, err := uc.workingHoursRepo.GetSpecialDateByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, storage.ErrSpecialDateNotFound) {
		uc.log.Error("FindProfessionals: failed to load special date: %v", err)
		return false, fmt.Errorf("%w: Execute - failed to load special date: %v", ErrInternal, err)
	}
	if specialDate != nil {
		overrides = append(overrides, *specialDate)
	}

	result := domain.ResolveAvailability(req.Date, rules, overrides)
	if !result.IsOpen || result.Window == nil {
		return false, nil
	}
	if !result.Window.Contains(req.StartTime) {
		return false, nil
	}

	// Услуга должна уложиться в окно целиком, включая длительность
	endTime, err := req.StartTime.AddMinutes(req.DurationMinutes)
	if err != nil {
		// Интервал выходит за полночь
		return false, nil
	}

	return !endTime.IsAfter(result.Window.End), nil
}
