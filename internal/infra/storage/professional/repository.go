package professional

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий справочника специалистов.
// Города обслуживания и квалификации хранятся в отдельных таблицах
// professional_work_areas и professional_treatments и подгружаются
// двумя дополнительными запросами.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория специалистов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive получает всех активных специалистов вместе с городами
// обслуживания и списком квалификаций
func (r *Repository) ListActive(ctx context.Context) ([]domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"phone",
		"gender",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("professionals").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	professionals := make([]domain.Professional, 0)
	ids := make([]int64, 0)

	for rows.Next() {
		var prof domain.Professional
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&prof.ID,
			&prof.Name,
			&prof.Phone,
			&prof.Gender,
			&prof.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}

		prof.CreatedAt = createdAt.Time
		prof.UpdatedAt = updatedAt.Time

		professionals = append(professionals, prof)
		ids = append(ids, prof.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	if len(professionals) == 0 {
		return professionals, nil
	}

	serviceCities, err := r.loadServiceCities(ctx, executor, ids)
	if err != nil {
		return nil, err
	}

	treatmentIDs, err := r.loadTreatmentIDs(ctx, executor, ids)
	if err != nil {
		return nil, err
	}

	for i := range professionals {
		professionals[i].ServiceCities = serviceCities[professionals[i].ID]
		professionals[i].TreatmentIDs = treatmentIDs[professionals[i].ID]
	}

	return professionals, nil
}

// GetByID получает специалиста по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"phone",
		"gender",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var prof domain.Professional
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&prof.ID,
		&prof.Name,
		&prof.Phone,
		&prof.Gender,
		&prof.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan professional: %v", ErrScanRow, err)
	}

	prof.CreatedAt = createdAt.Time
	prof.UpdatedAt = updatedAt.Time

	serviceCities, err := r.loadServiceCities(ctx, executor, []int64{id})
	if err != nil {
		return nil, err
	}
	prof.ServiceCities = serviceCities[id]

	treatmentIDs, err := r.loadTreatmentIDs(ctx, executor, []int64{id})
	if err != nil {
		return nil, err
	}
	prof.TreatmentIDs = treatmentIDs[id]

	return &prof, nil
}

// loadServiceCities подгружает города обслуживания для набора специалистов
func (r *Repository) loadServiceCities(ctx context.Context, executor DBExecutor, ids []int64) (map[int64][]string, error) {
	query, args, err := psqlbuilder.Select("professional_id", "city_name").
		From("professional_work_areas").
		Where(squirrel.Eq{"professional_id": ids}).
		OrderBy("city_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadServiceCities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadServiceCities - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[int64][]string, len(ids))

	for rows.Next() {
		var professionalID int64
		var cityName string

		if err := rows.Scan(&professionalID, &cityName); err != nil {
			return nil, fmt.Errorf("%w: loadServiceCities - scan row: %v", ErrScanRow, err)
		}

		result[professionalID] = append(result[professionalID], cityName)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadServiceCities - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// loadTreatmentIDs подгружает квалификации для набора специалистов
func (r *Repository) loadTreatmentIDs(ctx context.Context, executor DBExecutor, ids []int64) (map[int64][]int64, error) {
	query, args, err := psqlbuilder.Select("professional_id", "treatment_id").
		From("professional_treatments").
		Where(squirrel.Eq{"professional_id": ids}).
		OrderBy("treatment_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadTreatmentIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadTreatmentIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[int64][]int64, len(ids))

	for rows.Next() {
		var professionalID, treatmentID int64

		if err := rows.Scan(&professionalID, &treatmentID); err != nil {
			return nil, fmt.Errorf("%w: loadTreatmentIDs - scan row: %v", ErrScanRow, err)
		}

		result[professionalID] = append(result[professionalID], treatmentID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadTreatmentIDs - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
