package list_trips

import (
	"context"

	"github.com/m04kA/SMC-MotoAgenda/internal/service/trips/models"
)

type TripService interface {
	List(ctx context.Context, req *models.ListTripsRequest) (*models.TripListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
