package trips

import (
	"context"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
)

// TripRepository интерфейс репозитория поездок
type TripRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context, status *domain.TripStatus) ([]*domain.Trip, error)
	UpdateStatus(ctx context.Context, id string, status domain.TripStatus) error
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
