package update_trip_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MotoAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-MotoAgenda/internal/service/trips"
	"github.com/m04kA/SMC-MotoAgenda/internal/service/trips/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidStatus      = "status inválido, use pending ou completed"
	msgNotFound           = "viagem não encontrada"
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

// Handle PATCH /api/v1/trips/{tripId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["tripId"]

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /trips/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), tripID, &req); err != nil {
		switch {
		case errors.Is(err, trips.ErrInvalidStatus), errors.Is(err, trips.ErrInvalidInput):
			h.logger.Warn("PATCH /trips/{id}/status - Invalid status: id=%s, status=%s", tripID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, trips.ErrTripNotFound):
			h.logger.Warn("PATCH /trips/{id}/status - Trip not found: id=%s", tripID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /trips/{id}/status - Failed to update status: id=%s, error=%v", tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /trips/{id}/status - Status updated successfully: id=%s, status=%s", tripID, req.Status)
	handlers.RespondNoContent(w)
}
