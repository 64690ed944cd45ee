package citydistance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникальности
const pgUniqueViolation = "23505"

// Repository репозиторий городов и попарных расстояний.
//
// Расстояния хранятся канонически: одна строка на неупорядоченную пару,
// from_city < to_city лексикографически. Чтение покрытия запрашивает обе
// стороны, поэтому свойство симметрии выполняется по построению.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория городов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListCities получает города; onlyActive ограничивает выборку активными
func (r *Repository) ListCities(ctx context.Context, onlyActive bool) ([]domain.City, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"latitude",
		"longitude",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("cities").
		OrderBy("name ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCities - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cities := make([]domain.City, 0)

	for rows.Next() {
		var city domain.City
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&city.ID,
			&city.Name,
			&city.Latitude,
			&city.Longitude,
			&city.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCities - scan row: %v", ErrScanRow, err)
		}

		city.CreatedAt = createdAt.Time
		city.UpdatedAt = updatedAt.Time

		cities = append(cities, city)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCities - rows error: %v", ErrScanRow, err)
	}

	return cities, nil
}

// GetCityByName получает город по имени
func (r *Repository) GetCityByName(ctx context.Context, name string) (*domain.City, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"latitude",
		"longitude",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("cities").
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCityByName - build select query: %v", ErrBuildQuery, err)
	}

	var city domain.City
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&city.ID,
		&city.Name,
		&city.Latitude,
		&city.Longitude,
		&city.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCityByName - scan city: %v", ErrScanRow, err)
	}

	city.CreatedAt = createdAt.Time
	city.UpdatedAt = updatedAt.Time

	return &city, nil
}

// CreateCity создает город
func (r *Repository) CreateCity(ctx context.Context, city *domain.City) (*domain.City, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cities").
		Columns("name", "latitude", "longitude", "is_active").
		Values(city.Name, city.Latitude, city.Longitude, city.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCity - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&city.ID, &createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrCityAlreadyExists
		}
		return nil, fmt.Errorf("%w: CreateCity - execute insert: %v", ErrExecQuery, err)
	}

	city.CreatedAt = createdAt.Time
	city.UpdatedAt = updatedAt.Time

	return city, nil
}

// DeactivateCity помечает город неактивным. Строки расстояний не трогает:
// матрицу приводит в соответствие вызывающий слой.
func (r *Repository) DeactivateCity(ctx context.Context, name string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cities").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeactivateCity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeactivateCity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeactivateCity - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCityNotFound
	}

	return nil
}

// GetWithinRadius получает города в радиусе radiusKm от origin.
// Запрашивает обе стороны канонической пары. Сам origin в результат не
// включается - это забота вызывающего слоя. Отрицательный радиус означает
// "без ограничения".
func (r *Repository) GetWithinRadius(ctx context.Context, origin string, radiusKm float64) ([]domain.CoveredCity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("from_city", "to_city", "distance_km").
		From("city_distances").
		Where(squirrel.Or{
			squirrel.Eq{"from_city": origin},
			squirrel.Eq{"to_city": origin},
		}).
		OrderBy("distance_km ASC")

	if radiusKm >= 0 {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"distance_km": radiusKm})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithinRadius - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithinRadius - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	covered := make([]domain.CoveredCity, 0)

	for rows.Next() {
		var distance domain.CityDistance

		if err := rows.Scan(&distance.FromCity, &distance.ToCity, &distance.DistanceKm); err != nil {
			return nil, fmt.Errorf("%w: GetWithinRadius - scan row: %v", ErrScanRow, err)
		}

		// Берем имя города с противоположной от origin стороны пары
		other := distance.ToCity
		if other == origin {
			other = distance.FromCity
		}

		covered = append(covered, domain.CoveredCity{
			Name:       other,
			DistanceKm: distance.DistanceKm,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWithinRadius - rows error: %v", ErrScanRow, err)
	}

	return covered, nil
}

// UpsertDistance записывает расстояние между парой городов,
// приводя пару к каноническому направлению
func (r *Repository) UpsertDistance(ctx context.Context, distance domain.CityDistance) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	from, to := canonicalPair(distance.FromCity, distance.ToCity)

	query, args, err := psqlbuilder.Insert("city_distances").
		Columns("from_city", "to_city", "distance_km").
		Values(from, to, distance.DistanceKm).
		Suffix(`ON CONFLICT (from_city, to_city) DO UPDATE SET
			distance_km = EXCLUDED.distance_km,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertDistance - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertDistance - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// ReplaceAllDistances полностью заменяет таблицу расстояний.
// Используется пересборкой по координатам; вызывать внутри транзакции.
func (r *Repository) ReplaceAllDistances(ctx context.Context, distances []domain.CityDistance) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("city_distances").ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAllDistances - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAllDistances - execute delete: %v", ErrExecQuery, err)
	}

	if len(distances) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("city_distances").
		Columns("from_city", "to_city", "distance_km")

	for _, distance := range distances {
		from, to := canonicalPair(distance.FromCity, distance.ToCity)
		insertBuilder = insertBuilder.Values(from, to, distance.DistanceKm)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAllDistances - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceAllDistances - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// canonicalPair упорядочивает пару городов лексикографически
func canonicalPair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}
