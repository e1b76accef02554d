package list_trips

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MotoAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-MotoAgenda/internal/service/trips"
	"github.com/m04kA/SMC-MotoAgenda/internal/service/trips/models"
)

const (
	msgInvalidParams = "parâmetros de consulta inválidos"
)

type Handler struct {
	service TripService
	logger  Logger
}

func NewHandler(service TripService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/trips
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq := &models.ListTripsRequest{}
	if status := r.URL.Query().Get("status"); status != "" {
		serviceReq.Status = &status
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, trips.ErrInvalidInput):
			h.logger.Warn("GET /trips - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /trips - Failed to list trips: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trips - Trips retrieved successfully: groups=%d, count=%d", len(result.Groups), result.Counts.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
