package resolve_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	storage "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type fakeRepo struct {
	rules       []domain.WeekdayRule
	specialDate *domain.SpecialDate
}

func (f *fakeRepo) GetWeekdayRules(ctx context.Context) ([]domain.WeekdayRule, error) {
	return f.rules, nil
}

func (f *fakeRepo) GetSpecialDateByDate(ctx context.Context, date time.Time) (*domain.SpecialDate, error) {
	if f.specialDate != nil && domain.IsSameDay(f.specialDate.Date, date) {
		return f.specialDate, nil
	}
	return nil, storage.ErrSpecialDateNotFound
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// 2024-06-10 - понедельник
var monday = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func activeMonday() domain.WeekdayRule {
	return domain.WeekdayRule{
		Day:       1,
		IsActive:  true,
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("18:00"),
	}
}

func TestExecute_WeekdayRule(t *testing.T) {
	uc := NewUseCase(&fakeRepo{rules: []domain.WeekdayRule{activeMonday()}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	assert.True(t, resp.IsOpen)
	assert.Equal(t, "2024-06-10", resp.Date)
	assert.Equal(t, string(domain.SourceWeekdayRule), resp.Source)
	require.NotNil(t, resp.Window)
	assert.Equal(t, "09:00", resp.Window.Start)
	assert.Equal(t, "18:00", resp.Window.End)
	assert.Nil(t, resp.EffectivePrice)
}

func TestExecute_NotConfigured(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	assert.False(t, resp.IsOpen)
	assert.Equal(t, string(domain.SourceNotConfigured), resp.Source)
	assert.Nil(t, resp.Window)
}

func TestExecute_SpecialDateOverridesRule(t *testing.T) {
	repo := &fakeRepo{
		rules: []domain.WeekdayRule{activeMonday()},
		specialDate: &domain.SpecialDate{
			ID:        "sd-1",
			Date:      monday,
			Name:      "Inventory day",
			IsActive:  true,
			StartTime: ptr.Ptr(types.TimeString("10:00")),
			EndTime:   ptr.Ptr(types.TimeString("14:00")),
			Adjustment: domain.PriceAdjustment{
				Kind:  domain.AdjustmentFixed,
				Value: 50,
			},
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, BasePrice: ptr.Ptr(100.0)})
	require.NoError(t, err)

	assert.True(t, resp.IsOpen)
	assert.Equal(t, string(domain.SourceSpecialDate), resp.Source)
	require.NotNil(t, resp.Window)
	assert.Equal(t, "10:00", resp.Window.Start)
	assert.Equal(t, "14:00", resp.Window.End)
	require.NotNil(t, resp.EffectivePrice)
	assert.Equal(t, 150.0, *resp.EffectivePrice)
}

func TestExecute_InactiveSpecialDateClosesDay(t *testing.T) {
	repo := &fakeRepo{
		rules: []domain.WeekdayRule{activeMonday()},
		specialDate: &domain.SpecialDate{
			ID:       "sd-2",
			Date:     monday,
			Name:     "Holiday",
			IsActive: false,
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, BasePrice: ptr.Ptr(100.0)})
	require.NoError(t, err)

	assert.False(t, resp.IsOpen)
	assert.Equal(t, string(domain.SourceSpecialDate), resp.Source)
	assert.Nil(t, resp.Window)
	// Для закрытого дня цена не считается
	assert.Nil(t, resp.EffectivePrice)
}

func TestExecute_TimeInsideWindow(t *testing.T) {
	uc := NewUseCase(&fakeRepo{rules: []domain.WeekdayRule{activeMonday()}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      monday,
		StartTime: ptr.Ptr(types.TimeString("11:00")),
		BasePrice: ptr.Ptr(100.0),
	})
	require.NoError(t, err)

	assert.True(t, resp.IsOpen)
	require.NotNil(t, resp.EffectivePrice)
	assert.Equal(t, 100.0, *resp.EffectivePrice)
}

func TestExecute_TimeOutsideWindow(t *testing.T) {
	uc := NewUseCase(&fakeRepo{rules: []domain.WeekdayRule{activeMonday()}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      monday,
		StartTime: ptr.Ptr(types.TimeString("20:00")),
		BasePrice: ptr.Ptr(100.0),
	})
	require.NoError(t, err)

	// День рабочий, но запрошенное время вне окна
	assert.False(t, resp.IsOpen)
	assert.Equal(t, string(domain.SourceWeekdayRule), resp.Source)
	require.NotNil(t, resp.Window)
	assert.Equal(t, "09:00", resp.Window.Start)
	assert.Nil(t, resp.EffectivePrice)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{Date: monday, BasePrice: ptr.Ptr(-10.0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{Date: monday, StartTime: ptr.Ptr(types.TimeString("25:00"))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
