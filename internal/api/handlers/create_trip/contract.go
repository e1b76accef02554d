package create_trip

import (
	"context"

	createTrip "github.com/m04kA/SMC-MotoAgenda/internal/usecase/create_trip"
)

type CreateTripUseCase interface {
	Execute(ctx context.Context, req *createTrip.Request) (*createTrip.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
