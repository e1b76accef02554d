package get_business_hours

import (
	"net/http"

	"github.com/m04kA/SMC-MotoAgenda/internal/api/handlers"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle GET /api/v1/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := BuildResponse()

	h.logger.Info("GET /business-hours - Business hours retrieved: days=%d", len(response.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
