package create_trip

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
)

// UseCase use case для регистрации поездки между филиалами
type UseCase struct {
	tripRepo TripRepository
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(tripRepo TripRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		tripRepo: tripRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute выполняет use case создания поездки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		req = &Request{}
	}

	uc.logger.Info("CreateTrip: order=%s, origin=%s, destination=%s", req.OrderNumber, req.Origin, req.Destination)

	// 1. Валидация формы
	result := ValidateTripForm(req)
	if !result.Valid {
		uc.logger.Warn("CreateTrip: validation failed: %s", strings.Join(result.Errors, "; "))
		return nil, &ValidationError{Errors: result.Errors}
	}

	// 2. Сохраняем поездку
	trip := &domain.Trip{
		Origin:      resolveLocation(req.Origin, req.OriginOther),
		Destination: resolveLocation(req.Destination, req.DestinationOther),
		Model:       strings.TrimSpace(req.Model),
		Color:       strings.TrimSpace(req.Color),
		Chassis:     strings.TrimSpace(req.Chassis),
		OrderNumber: strings.TrimSpace(req.OrderNumber),
		Status:      domain.TripPending,
	}

	created, err := uc.tripRepo.Create(ctx, trip)
	if err != nil {
		uc.logger.Error("CreateTrip: failed to create trip: %v", err)
		return nil, fmt.Errorf("%w: failed to create trip: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateTrip: created trip id=%s %s -> %s", created.ID, created.Origin, created.Destination)

	if uc.metrics != nil {
		uc.metrics.IncTripCreated(destinationLabel(created.Destination))
	}

	return &Response{
		ID:          created.ID,
		Origin:      created.Origin,
		Destination: created.Destination,
		Model:       created.Model,
		Color:       created.Color,
		Chassis:     created.Chassis,
		OrderNumber: created.OrderNumber,
		Status:      string(created.Status),
		CreatedAt:   created.CreatedAt,
	}, nil
}

// destinationLabel ограничивает кардинальность метки: свободный текст сводится к "Outro"
func destinationLabel(destination string) string {
	if domain.HubPriority(destination) >= 0 {
		return destination
	}
	return string(domain.LocationOther)
}
