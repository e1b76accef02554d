package trip

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
	"github.com/m04kA/SMC-MotoAgenda/pkg/dbmetrics"
	"github.com/m04kA/SMC-MotoAgenda/pkg/psqlbuilder"
)

const tableName = "trips"

var selectColumns = []string{
	"id",
	"origin",
	"destination",
	"model",
	"color",
	"chassis",
	"order_number",
	"status",
	"created_at",
}

// Repository репозиторий для работы с поездками между филиалами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория поездок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую поездку. ID генерируется здесь, created_at выставляет БД.
func (r *Repository) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	id := uuid.NewString()

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "origin", "destination", "model", "color", "chassis", "order_number", "status").
		Values(id, trip.Origin, trip.Destination, trip.Model, trip.Color, trip.Chassis, trip.OrderNumber, trip.Status).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	created := *trip
	created.ID = id
	created.CreatedAt = createdAt.Time

	return &created, nil
}

// GetByID получает поездку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrTripNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	trip, err := scanTrip(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan trip: %v", ErrScanRow, err)
	}

	return trip, nil
}

// List получает все поездки (сначала новые), опционально только с указанным статусом
func (r *Repository) List(ctx context.Context, status *domain.TripStatus) ([]*domain.Trip, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From(tableName).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	trips := make([]*domain.Trip, 0)
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return trips, nil
}

// UpdateStatus обновляет статус поездки
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.TripStatus) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrTripNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTripNotFound
	}

	return nil
}

// Delete удаляет поездку
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrTripNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTripNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrip(row rowScanner) (*domain.Trip, error) {
	var trip domain.Trip
	var createdAt sql.NullTime

	err := row.Scan(
		&trip.ID,
		&trip.Origin,
		&trip.Destination,
		&trip.Model,
		&trip.Color,
		&trip.Chassis,
		&trip.OrderNumber,
		&trip.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	trip.CreatedAt = createdAt.Time
	return &trip, nil
}
