package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-MotoAgenda/internal/availability"
	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-MotoAgenda/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-MotoAgenda/pkg/types"
)

const (
	conflictStagePrecheck      = "precheck"
	conflictStageInsert        = "insert"
	conflictStageSerialization = "serialization"

	// maxAttempts попыток сериализуемой транзакции до признания слота занятым
	maxAttempts = 2

	// notifyTimeout ограничивает отправку подтверждения после коммита
	notifyTimeout = 10 * time.Second
)

// UseCase use case для записи на выдачу мотоцикла
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	notifier        Notifier
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// notifier и metrics могут быть nil.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case записи на выдачу.
// Проверка занятости и вставка выполняются в сериализуемой транзакции,
// окончательно занятость слота гарантирует уникальный индекс в БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		req = &Request{}
	}

	uc.logger.Info("CreateAppointment: order=%s, date=%s, time=%s", req.OrderNumber, req.PickupDate, req.PickupTime)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация формы
	result := ValidateAppointmentForm(req, now)
	if !result.Valid {
		uc.logger.Warn("CreateAppointment: validation failed: %s", strings.Join(result.Errors, "; "))
		return nil, &ValidationError{Errors: result.Errors}
	}

	appointment := &domain.Appointment{
		CustomerName: strings.TrimSpace(req.Name) + " " + strings.TrimSpace(req.Surname),
		Phone:        strings.TrimSpace(req.Phone),
		Model:        strings.TrimSpace(req.Model),
		Color:        strings.TrimSpace(req.Color),
		Chassis:      strings.TrimSpace(req.Chassis),
		OrderNumber:  strings.TrimSpace(req.OrderNumber),
		PickupDate:   req.PickupDate,
		PickupTime:   req.PickupTime,
		Status:       domain.AppointmentPending,
	}

	// 3. Проверка занятости и сохранение в сериализуемой транзакции.
	// Конкурент, вставивший тот же слот, приводит к 40001: повторяем,
	// и повторная проверка уже видит его запись.
	var (
		created *domain.Appointment
		err     error
	)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		created, err = uc.reserve(ctx, appointment)
		if !appointmentRepo.IsSerializationFailure(err) {
			break
		}
		uc.logger.Warn("CreateAppointment: serialization failure for %s %s, attempt %d/%d: %v",
			req.PickupDate, req.PickupTime, attempt, maxAttempts, err)
	}

	if err != nil {
		if appointmentRepo.IsSerializationFailure(err) {
			uc.incSlotConflict(conflictStageSerialization)
			return nil, uc.slotConflict(ctx, req.PickupDate, req.PickupTime)
		}
		if errors.Is(err, ErrSlotTaken) {
			return nil, uc.slotConflict(ctx, req.PickupDate, req.PickupTime)
		}
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s for %s %s", created.ID, created.PickupDate, created.PickupTime)

	if uc.metrics != nil {
		uc.metrics.IncAppointmentCreated(created.PickupDate.Weekday().String())
	}

	// 4. Подтверждение клиенту, ошибка не отменяет запись
	notified := false
	if uc.notifier != nil {
		notifyCtx, cancel := context.WithTimeout(ctx, notifyTimeout)
		defer cancel()
		if err := uc.notifier.NotifyPickup(notifyCtx, created); err != nil {
			uc.logger.Warn("CreateAppointment: failed to notify customer for appointment id=%s: %v", created.ID, err)
		} else {
			notified = true
		}
	}

	return &Response{
		ID:           created.ID,
		CustomerName: created.CustomerName,
		Phone:        created.Phone,
		Model:        created.Model,
		Color:        created.Color,
		Chassis:      created.Chassis,
		OrderNumber:  created.OrderNumber,
		PickupDate:   created.PickupDate,
		PickupTime:   created.PickupTime,
		Status:       string(created.Status),
		CreatedAt:    created.CreatedAt,
		Notified:     notified,
	}, nil
}

// reserve проверяет занятость слота и сохраняет запись в одной сериализуемой транзакции.
// Отказ сериализации возвращается с исходной ошибкой драйвера.
func (uc *UseCase) reserve(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	var created *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем занятые слоты на дату (с блокировкой)
		occupied, err := uc.appointmentRepo.GetOccupiedTimes(txCtx, appointment.PickupDate)
		if err != nil {
			if appointmentRepo.IsSerializationFailure(err) {
				return err
			}
			uc.logger.Error("CreateAppointment: failed to get occupied times: %v", err)
			return fmt.Errorf("%w: failed to get occupied times: %v", ErrInternal, err)
		}

		// 3.2. Слот уже занят
		if availability.NewOccupied(occupied...).Contains(appointment.PickupTime) {
			uc.incSlotConflict(conflictStagePrecheck)
			return ErrSlotTaken
		}

		// 3.3. Сохраняем запись
		created, err = uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.incSlotConflict(conflictStageInsert)
				return ErrSlotTaken
			}
			if appointmentRepo.IsSerializationFailure(err) {
				return err
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// slotConflict пересчитывает свободные слоты на дату после конфликта
func (uc *UseCase) slotConflict(ctx context.Context, date types.Date, t types.TimeString) error {
	uc.logger.Warn("CreateAppointment: slot %s %s already taken", date, t)

	occupied, err := uc.appointmentRepo.GetOccupiedTimes(ctx, date)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to refresh occupied times after conflict: %v", err)
		return fmt.Errorf("%w: failed to refresh occupied times: %v", ErrInternal, err)
	}

	return &SlotConflictError{
		Date:           date,
		Time:           t,
		AvailableSlots: availability.AvailableSlots(date, availability.NewOccupied(occupied...), uc.timeProvider.Now()),
	}
}

func (uc *UseCase) incSlotConflict(stage string) {
	if uc.metrics != nil {
		uc.metrics.IncSlotConflict(stage)
	}
}
