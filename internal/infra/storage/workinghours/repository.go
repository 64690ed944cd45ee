package workinghours

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository репозиторий недельных правил и особых дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeekdayRules получает все недельные правила, отсортированные по дню недели.
// Пустой результат означает, что расписание еще не настроено.
func (r *Repository) GetWeekdayRules(ctx context.Context) ([]domain.WeekdayRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"day",
		"is_active",
		"start_time",
		"end_time",
		"adjustment_kind",
		"adjustment_value",
		"adjustment_reason",
		"notes",
		"created_at",
		"updated_at",
	).
		From("weekday_rules").
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekdayRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekdayRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]domain.WeekdayRule, 0, domain.DaysPerWeek)

	for rows.Next() {
		var rule domain.WeekdayRule
		var kind string
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.Day,
			&rule.IsActive,
			&rule.StartTime,
			&rule.EndTime,
			&kind,
			&rule.Adjustment.Value,
			&rule.Adjustment.Reason,
			&rule.Notes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWeekdayRules - scan row: %v", ErrScanRow, err)
		}

		rule.Adjustment.Kind = domain.AdjustmentKind(kind)
		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeekdayRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// UpsertWeekdayRules записывает недельные правила с апсертом по дню недели.
// Правила никогда не удаляются, только перезаписываются - уникальность по дню
// обеспечивается на записи, а не разрешением конфликтов при чтении.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) UpsertWeekdayRules(ctx context.Context, rules []domain.WeekdayRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for i := range rules {
		rule := &rules[i]

		if !rule.StartTime.IsValid() || !rule.EndTime.IsValid() {
			return fmt.Errorf("%w: UpsertWeekdayRules - day %d: %q-%q", ErrInvalidTimeFormat, rule.Day, rule.StartTime, rule.EndTime)
		}

		query, args, err := psqlbuilder.Insert("weekday_rules").
			Columns(
				"day",
				"is_active",
				"start_time",
				"end_time",
				"adjustment_kind",
				"adjustment_value",
				"adjustment_reason",
				"notes",
			).
			Values(
				rule.Day,
				rule.IsActive,
				rule.StartTime,
				rule.EndTime,
				string(adjustmentKindOrNone(rule.Adjustment.Kind)),
				rule.Adjustment.Value,
				rule.Adjustment.Reason,
				rule.Notes,
			).
			Suffix(`ON CONFLICT (day) DO UPDATE SET
				is_active = EXCLUDED.is_active,
				start_time = EXCLUDED.start_time,
				end_time = EXCLUDED.end_time,
				adjustment_kind = EXCLUDED.adjustment_kind,
				adjustment_value = EXCLUDED.adjustment_value,
				adjustment_reason = EXCLUDED.adjustment_reason,
				notes = EXCLUDED.notes,
				updated_at = NOW()`).
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: UpsertWeekdayRules - build upsert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: UpsertWeekdayRules - execute upsert for day %d: %v", ErrExecQuery, rule.Day, err)
		}
	}

	return nil
}

// GetSpecialDates получает все особые даты, отсортированные по дате
func (r *Repository) GetSpecialDates(ctx context.Context) ([]domain.SpecialDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := specialDateSelect().
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSpecialDates(rows)
}

// GetSpecialDateByDate получает особую дату по календарному дню.
// Уникальность по дате обеспечена ограничением UNIQUE(date).
func (r *Repository) GetSpecialDateByDate(ctx context.Context, date time.Time) (*domain.SpecialDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := specialDateSelect().
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDateByDate - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	specialDate, err := scanSpecialDate(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrSpecialDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDateByDate - scan special date: %v", ErrScanRow, err)
	}

	return specialDate, nil
}

// GetSpecialDateByID получает особую дату по идентификатору
func (r *Repository) GetSpecialDateByID(ctx context.Context, id string) (*domain.SpecialDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := specialDateSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDateByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	specialDate, err := scanSpecialDate(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrSpecialDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDateByID - scan special date: %v", ErrScanRow, err)
	}

	return specialDate, nil
}

// CreateSpecialDate создает особую дату
func (r *Repository) CreateSpecialDate(ctx context.Context, specialDate *domain.SpecialDate) (*domain.SpecialDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if err := validateOptionalTimes(specialDate.StartTime, specialDate.EndTime); err != nil {
		return nil, fmt.Errorf("%w: CreateSpecialDate - %v", ErrInvalidTimeFormat, err)
	}

	query, args, err := psqlbuilder.Insert("special_dates").
		Columns(
			"id",
			"date",
			"name",
			"is_active",
			"start_time",
			"end_time",
			"adjustment_kind",
			"adjustment_value",
			"adjustment_reason",
			"notes",
		).
		Values(
			specialDate.ID,
			specialDate.Date.Format(domain.DateFormat),
			specialDate.Name,
			specialDate.IsActive,
			timeStringOrNil(specialDate.StartTime),
			timeStringOrNil(specialDate.EndTime),
			string(adjustmentKindOrNone(specialDate.Adjustment.Kind)),
			specialDate.Adjustment.Value,
			specialDate.Adjustment.Reason,
			specialDate.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateSpecialDate - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateSpecialDate - execute insert: %v", ErrExecQuery, err)
	}

	specialDate.CreatedAt = createdAt.Time
	specialDate.UpdatedAt = updatedAt.Time

	return specialDate, nil
}

// UpdateSpecialDate обновляет особую дату по идентификатору
func (r *Repository) UpdateSpecialDate(ctx context.Context, specialDate *domain.SpecialDate) (*domain.SpecialDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if err := validateOptionalTimes(specialDate.StartTime, specialDate.EndTime); err != nil {
		return nil, fmt.Errorf("%w: UpdateSpecialDate - %v", ErrInvalidTimeFormat, err)
	}

	query, args, err := psqlbuilder.Update("special_dates").
		Set("date", specialDate.Date.Format(domain.DateFormat)).
		Set("name", specialDate.Name).
		Set("is_active", specialDate.IsActive).
		Set("start_time", timeStringOrNil(specialDate.StartTime)).
		Set("end_time", timeStringOrNil(specialDate.EndTime)).
		Set("adjustment_kind", string(adjustmentKindOrNone(specialDate.Adjustment.Kind))).
		Set("adjustment_value", specialDate.Adjustment.Value).
		Set("adjustment_reason", specialDate.Adjustment.Reason).
		Set("notes", specialDate.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": specialDate.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSpecialDate - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSpecialDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSpecialDate - execute update: %v", ErrExecQuery, err)
	}

	specialDate.CreatedAt = createdAt.Time
	specialDate.UpdatedAt = updatedAt.Time

	return specialDate, nil
}

// DeleteSpecialDate удаляет особую дату
func (r *Repository) DeleteSpecialDate(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("special_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteSpecialDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteSpecialDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteSpecialDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpecialDateNotFound
	}

	return nil
}

// Helper functions

func specialDateSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"date",
		"name",
		"is_active",
		"start_time",
		"end_time",
		"adjustment_kind",
		"adjustment_value",
		"adjustment_reason",
		"notes",
		"created_at",
		"updated_at",
	).From("special_dates")
}

// scanSpecialDate сканирует одну особую дату через переданную scan-функцию
func scanSpecialDate(scan func(dest ...interface{}) error) (*domain.SpecialDate, error) {
	var specialDate domain.SpecialDate
	var kind string
	var startTime, endTime sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&specialDate.ID,
		&specialDate.Date,
		&specialDate.Name,
		&specialDate.IsActive,
		&startTime,
		&endTime,
		&kind,
		&specialDate.Adjustment.Value,
		&specialDate.Adjustment.Reason,
		&specialDate.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	specialDate.Adjustment.Kind = domain.AdjustmentKind(kind)
	specialDate.StartTime = nullableTimeString(startTime)
	specialDate.EndTime = nullableTimeString(endTime)
	specialDate.CreatedAt = createdAt.Time
	specialDate.UpdatedAt = updatedAt.Time

	return &specialDate, nil
}

// scanSpecialDates сканирует результаты запроса в слайс особых дат
func scanSpecialDates(rows *sql.Rows) ([]domain.SpecialDate, error) {
	specialDates := make([]domain.SpecialDate, 0)

	for rows.Next() {
		specialDate, err := scanSpecialDate(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSpecialDates - scan row: %v", ErrScanRow, err)
		}
		specialDates = append(specialDates, *specialDate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSpecialDates - rows error: %v", ErrScanRow, err)
	}

	return specialDates, nil
}

func nullableTimeString(v sql.NullString) *types.TimeString {
	if !v.Valid || v.String == "" {
		return nil
	}
	ts := types.TimeString(v.String)
	return &ts
}

func timeStringOrNil(t *types.TimeString) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func validateOptionalTimes(start, end *types.TimeString) error {
	if start != nil && !start.IsValid() {
		return fmt.Errorf("start time %q is not HH:mm", *start)
	}
	if end != nil && !end.IsValid() {
		return fmt.Errorf("end time %q is not HH:mm", *end)
	}
	return nil
}

func adjustmentKindOrNone(kind domain.AdjustmentKind) domain.AdjustmentKind {
	if kind == "" {
		return domain.AdjustmentNone
	}
	return kind
}
