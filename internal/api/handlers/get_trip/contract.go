package get_trip

import (
	"context"

	"github.com/m04kA/SMC-MotoAgenda/internal/service/trips/models"
)

type TripService interface {
	GetByID(ctx context.Context, id string) (*models.TripResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
