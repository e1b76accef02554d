package create_trip

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MotoAgenda/internal/api/handlers"
	createTrip "github.com/m04kA/SMC-MotoAgenda/internal/usecase/create_trip"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgValidationFailed   = "verifique os campos do formulário"
)

type Handler struct {
	useCase CreateTripUseCase
	logger  Logger
}

func NewHandler(useCase CreateTripUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/trips
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTripRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trips - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErr *createTrip.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /trips - Validation failed: order=%s, errors=%d", req.OrderNumber, len(validationErr.Errors))
			handlers.RespondErrorDetails(w, http.StatusUnprocessableEntity, msgValidationFailed, validationErr.Errors)

		default:
			h.logger.Error("POST /trips - Failed to create trip: order=%s, error=%v", req.OrderNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trips - Trip created successfully: id=%s, %s -> %s", result.ID, result.Origin, result.Destination)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
