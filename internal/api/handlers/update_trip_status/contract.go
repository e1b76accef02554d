package update_trip_status

import (
	"context"

	"github.com/m04kA/SMC-MotoAgenda/internal/service/trips/models"
)

type TripService interface {
	UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
