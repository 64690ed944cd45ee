package find_professionals

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	professionalStorage "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/professional"
	storage "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/coverage"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type fakeCoverage struct {
	covered map[string]float64
}

func (f *fakeCoverage) CoveredCityNames(ctx context.Context, origin string, radiusKm float64) (map[string]float64, error) {
	if f.covered == nil {
		return nil, coverage.ErrCityNotFound
	}
	return f.covered, nil
}

type fakeWorkingHours struct {
	rules       []domain.WeekdayRule
	specialDate *domain.SpecialDate
}

func (f *fakeWorkingHours) GetWeekdayRules(ctx context.Context) ([]domain.WeekdayRule, error) {
	return f.rules, nil
}

func (f *fakeWorkingHours) GetSpecialDateByDate(ctx context.Context, date time.Time) (*domain.SpecialDate, error) {
	if f.specialDate != nil && domain.IsSameDay(f.specialDate.Date, date) {
		return f.specialDate, nil
	}
	return nil, storage.ErrSpecialDateNotFound
}

type fakeProfessionals struct {
	list []domain.Professional
}

func (f *fakeProfessionals) ListActive(ctx context.Context) ([]domain.Professional, error) {
	return f.list, nil
}

func (f *fakeProfessionals) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	for _, p := range f.list {
		if p.ID == id {
			professional := p
			return &professional, nil
		}
	}
	return nil, professionalStorage.ErrProfessionalNotFound
}

type fakeBookingClient struct {
	busy map[int64]bool
}

func (f *fakeBookingClient) HasConflictingBooking(ctx context.Context, professionalID int64, date time.Time, startTime types.TimeString, durationMinutes int) (bool, error) {
	return f.busy[professionalID], nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// 2024-06-10 - понедельник
var monday = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func openAllWeek() []domain.WeekdayRule {
	rules := make([]domain.WeekdayRule, 0, 7)
	for day := 0; day < 7; day++ {
		rules = append(rules, domain.WeekdayRule{
			Day:       day,
			IsActive:  true,
			StartTime: types.TimeString("09:00"),
			EndTime:   types.TimeString("18:00"),
		})
	}
	return rules
}

func validRequest() *Request {
	return &Request{
		UserID:          1,
		TreatmentID:     10,
		City:            "Moscow",
		Date:            monday,
		StartTime:       types.TimeString("11:00"),
		DurationMinutes: 60,
	}
}

func newTestUseCase(cov *fakeCoverage, wh *fakeWorkingHours, profs *fakeProfessionals, booking *fakeBookingClient) *UseCase {
	return NewUseCase(cov, wh, profs, booking, domain.DefaultRadiusKm, nopLogger{})
}

func TestExecute_MatchesPipeline(t *testing.T) {
	cov := &fakeCoverage{covered: map[string]float64{"Moscow": 0, "Khimki": 19.54}}
	wh := &fakeWorkingHours{rules: openAllWeek()}
	profs := &fakeProfessionals{list: []domain.Professional{
		{ID: 1, Name: "Anna", ServiceCities: []string{"Khimki"}, TreatmentIDs: []int64{10}},
		{ID: 2, Name: "Boris", ServiceCities: []string{"Moscow"}, TreatmentIDs: []int64{99}},          // другая услуга
		{ID: 3, Name: "Vera", ServiceCities: []string{"Saint Petersburg"}, TreatmentIDs: []int64{10}}, // вне покрытия
		{ID: 4, Name: "Gleb", ServiceCities: []string{"Moscow"}, TreatmentIDs: []int64{10}},           // занят
	}}
	booking := &fakeBookingClient{busy: map[int64]bool{4: true}}

	uc := newTestUseCase(cov, wh, profs, booking)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Professionals, 1)
	assert.Equal(t, int64(1), resp.Professionals[0].ID)
	assert.Equal(t, "Khimki", resp.Professionals[0].City)
	assert.Equal(t, 19.54, resp.Professionals[0].DistanceKm)
}

func TestExecute_GenderPreference(t *testing.T) {
	cov := &fakeCoverage{covered: map[string]float64{"Moscow": 0}}
	wh := &fakeWorkingHours{rules: openAllWeek()}
	profs := &fakeProfessionals{list: []domain.Professional{
		{ID: 1, Name: "Anna", Gender: "female", ServiceCities: []string{"Moscow"}, TreatmentIDs: []int64{10}},
		{ID: 2, Name: "Boris", Gender: "male", ServiceCities: []string{"Moscow"}, TreatmentIDs: []int64{10}},
	}}

	uc := newTestUseCase(cov, wh, profs, &fakeBookingClient{})

	req := validRequest()
	req.GenderPreference = "male"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Professionals, 1)
	assert.Equal(t, int64(2), resp.Professionals[0].ID)

	// "any" отключает фильтр
	req.GenderPreference = GenderAny
	resp, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Professionals, 2)
}

func TestExecute_SingleProfessional(t *testing.T) {
	cov := &fakeCoverage{covered: map[string]float64{"Moscow": 0}}
	wh := &fakeWorkingHours{rules: openAllWeek()}
	profs := &fakeProfessionals{list: []domain.Professional{
		{ID: 1, Name: "Anna", IsActive: true, ServiceCities: []string{"Moscow"}, TreatmentIDs: []int64{10}},
		{ID: 2, Name: "Boris", IsActive: false, ServiceCities: []string{"Moscow"}, TreatmentIDs: []int64{10}},
	}}

	uc := newTestUseCase(cov, wh, profs, &fakeBookingClient{})
	ctx := context.Background()

	req := validRequest()
	id := int64(1)
	req.ProfessionalID = &id

	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Professionals, 1)
	assert.Equal(t, int64(1), resp.Professionals[0].ID)

	// неактивный специалист - пустой пул, не ошибка
	inactive := int64(2)
	req.ProfessionalID = &inactive
	resp, err = uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, resp.Professionals)

	// неизвестный ID - тоже пустой пул
	unknown := int64(999)
	req.ProfessionalID = &unknown
	resp, err = uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, resp.Professionals)
}

func TestExecute_DurationExceedsWindow(t *testing.T) {
	cov := &fakeCoverage{covered: map[string]float64{"Moscow": 0}}
	wh := &fakeWorkingHours{rules: openAllWeek()}
	profs := &fakeProfessionals{list: []domain.Professional{
		{ID: 1, ServiceCities: []string{"Moscow"}, TreatmentIDs: []int64{10}},
	}}

	uc := newTestUseCase(cov, wh, profs, &fakeBookingClient{})
	ctx := context.Background()

	// окно 09:00-18:00: старт внутри, но услуга не успевает закончиться
	req := validRequest()
	req.StartTime = types.TimeString("17:30")
	req.DurationMinutes = 60

	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, resp.Professionals)

	// ровно до закрытия - допустимо
	req.DurationMinutes = 30
	resp, err = uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Len(t, resp.Professionals, 1)
}

func TestExecute_ClosedDayReturnsEmptyList(t *testing.T) {
	cov := &fakeCoverage{covered: map[string]float64{"Moscow": 0}}
	wh := &fakeWorkingHours{} // расписание не настроено - закрыто
	profs := &fakeProfessionals{list: []domain.Professional{
		{ID: 1, ServiceCities: []string{"Moscow"}, TreatmentIDs: []int64{10}},
	}}

	uc := newTestUseCase(cov, wh, profs, &fakeBookingClient{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Professionals)
	assert.NotNil(t, resp.Professionals)
}

func TestExecute_TimeOutsideWindowReturnsEmptyList(t *testing.T) {
	cov := &fakeCoverage{covered: map[string]float64{"Moscow": 0}}
	wh := &fakeWorkingHours{rules: openAllWeek()}
	profs := &fakeProfessionals{list: []domain.Professional{
		{ID: 1, ServiceCities: []string{"Moscow"}, TreatmentIDs: []int64{10}},
	}}

	uc := newTestUseCase(cov, wh, profs, &fakeBookingClient{})

	req := validRequest()
	req.StartTime = types.TimeString("20:00")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Professionals)
}

func TestExecute_InactiveSpecialDateClosesMatching(t *testing.T) {
	cov := &fakeCoverage{covered: map[string]float64{"Moscow": 0}}
	wh := &fakeWorkingHours{
		rules: openAllWeek(),
		specialDate: &domain.SpecialDate{
			ID:       "sd-1",
			Date:     monday,
			Name:     "Holiday",
			IsActive: false,
		},
	}
	profs := &fakeProfessionals{list: []domain.Professional{
		{ID: 1, ServiceCities: []string{"Moscow"}, TreatmentIDs: []int64{10}},
	}}

	uc := newTestUseCase(cov, wh, profs, &fakeBookingClient{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Professionals)
}

func TestExecute_UnknownCity(t *testing.T) {
	uc := newTestUseCase(&fakeCoverage{}, &fakeWorkingHours{rules: openAllWeek()}, &fakeProfessionals{}, &fakeBookingClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeCoverage{}, &fakeWorkingHours{}, &fakeProfessionals{}, &fakeBookingClient{})
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing treatment", mutate: func(r *Request) { r.TreatmentID = 0 }},
		{name: "missing city", mutate: func(r *Request) { r.City = " " }},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "bad time", mutate: func(r *Request) { r.StartTime = "25:00" }},
		{name: "zero duration", mutate: func(r *Request) { r.DurationMinutes = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
