package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MotoAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-MotoAgenda/internal/service/appointments"
)

const (
	msgInvalidParams = "parâmetros de consulta inválidos"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: status, date (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq := ToServiceRequest(r.URL.Query())

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: count=%d, pending=%d",
		result.Counts.Total, result.Counts.Pending)
	handlers.RespondJSON(w, http.StatusOK, result)
}
