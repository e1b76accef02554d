package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
	"github.com/m04kA/SMC-MotoAgenda/pkg/dbmetrics"
	"github.com/m04kA/SMC-MotoAgenda/pkg/psqlbuilder"
	"github.com/m04kA/SMC-MotoAgenda/pkg/types"
)

const (
	tableName = "appointments"

	// pgUniqueViolation SQLSTATE нарушения уникального ограничения
	pgUniqueViolation = "23505"

	// pgSerializationFailure SQLSTATE отказа сериализуемой транзакции
	pgSerializationFailure = "40001"

	// slotConstraint уникальный индекс (pickup_date, pickup_time)
	slotConstraint = "appointments_pickup_slot_key"
)

var selectColumns = []string{
	"id",
	"customer_name",
	"phone",
	"model",
	"color",
	"chassis",
	"order_number",
	"pickup_date",
	"pickup_time",
	"status",
	"created_at",
}

// Repository репозиторий для работы с записями на выдачу мотоциклов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись. ID генерируется здесь, created_at выставляет БД.
// Если слот (дата, время) уже занят, возвращает ErrSlotTaken - это
// авторитетная проверка, предварительная проверка в usecase может проиграть гонку.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	id := uuid.NewString()

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"customer_name",
			"phone",
			"model",
			"color",
			"chassis",
			"order_number",
			"pickup_date",
			"pickup_time",
			"status",
		).
		Values(
			id,
			appointment.CustomerName,
			appointment.Phone,
			appointment.Model,
			appointment.Color,
			appointment.Chassis,
			appointment.OrderNumber,
			appointment.PickupDate,
			appointment.PickupTime,
			appointment.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		if isSlotViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	created := *appointment
	created.ID = id
	created.CreatedAt = createdAt.Time

	return &created, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrAppointmentNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// List получает записи, отсортированные по времени создания (сначала новые).
// Опционально фильтрует по статусу и дате выдачи.
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From(tableName).
		OrderBy("created_at DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.PickupDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"pickup_date": *filter.PickupDate})
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

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// GetOccupiedTimes возвращает время всех записей на указанную дату.
// Внутри транзакции блокирует найденные строки (FOR UPDATE).
func (r *Repository) GetOccupiedTimes(ctx context.Context, date types.Date) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("pickup_time").
		From(tableName).
		Where(squirrel.Eq{"pickup_date": date}).
		OrderBy("pickup_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedTimes - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetOccupiedTimes - scan pickup_time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedTimes - rows error: %w", ErrScanRow, err)
	}

	return times, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrAppointmentNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// Delete удаляет запись (освобождает слот)
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrAppointmentNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appointment domain.Appointment
	var createdAt sql.NullTime

	err := row.Scan(
		&appointment.ID,
		&appointment.CustomerName,
		&appointment.Phone,
		&appointment.Model,
		&appointment.Color,
		&appointment.Chassis,
		&appointment.OrderNumber,
		&appointment.PickupDate,
		&appointment.PickupTime,
		&appointment.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	appointment.CreatedAt = createdAt.Time
	return &appointment, nil
}

// isSlotViolation проверяет, что ошибка - нарушение уникальности слота
func isSlotViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pgUniqueViolation && pqErr.Constraint == slotConstraint
}

// IsSerializationFailure проверяет, что PostgreSQL отменил сериализуемую транзакцию.
// Конкурентная вставка того же слота после проверки приходит именно так, а не как 23505.
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pgSerializationFailure
}
