package create_trip

import (
	"context"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
)

// TripRepository интерфейс репозитория поездок
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
}

// Metrics бизнес-счетчики
type Metrics interface {
	IncTripCreated(destination string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
