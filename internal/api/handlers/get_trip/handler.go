package get_trip

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MotoAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-MotoAgenda/internal/service/trips"
)

const (
	msgNotFound = "viagem não encontrada"
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

// Handle GET /api/v1/trips/{tripId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["tripId"]

	trip, err := h.service.GetByID(r.Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, trips.ErrTripNotFound):
			h.logger.Warn("GET /trips/{id} - Trip not found: id=%s", tripID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /trips/{id} - Failed to get trip: id=%s, error=%v", tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trips/{id} - Trip retrieved successfully: id=%s", tripID)
	handlers.RespondJSON(w, http.StatusOK, trip)
}
