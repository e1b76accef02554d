package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-MotoAgenda/internal/availability"
	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
)

// UseCase use case для получения свободных слотов выдачи
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: date=%s", req.Date)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. В воскресенье магазин закрыт, в БД не ходим
	if domain.IsClosed(req.Date.Weekday()) {
		uc.logger.Info("GetAvailableSlots: closed on %s", req.Date)
		return &Response{
			Date:   req.Date,
			Closed: true,
			Slots:  availability.GenerateSlots(req.Date, now),
		}, nil
	}

	// 4. Получаем занятые слоты на эту дату
	occupiedTimes, err := uc.appointmentRepo.GetOccupiedTimes(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get occupied times for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get occupied times: %v", ErrInternal, err)
	}

	// 5. Вычисляем свободные слоты
	slots := availability.AvailableSlots(req.Date, availability.NewOccupied(occupiedTimes...), now)

	uc.logger.Info("GetAvailableSlots: %d free slots on %s (%d occupied)", len(slots), req.Date, len(occupiedTimes))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
