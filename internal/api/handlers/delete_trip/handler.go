package delete_trip

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

// Handle DELETE /api/v1/trips/{tripId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["tripId"]

	if err := h.service.Delete(r.Context(), tripID); err != nil {
		switch {
		case errors.Is(err, trips.ErrTripNotFound):
			h.logger.Warn("DELETE /trips/{id} - Trip not found: id=%s", tripID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /trips/{id} - Failed to delete trip: id=%s, error=%v", tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /trips/{id} - Trip deleted successfully: id=%s", tripID)
	handlers.RespondNoContent(w)
}
