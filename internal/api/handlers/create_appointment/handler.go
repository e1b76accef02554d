package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MotoAgenda/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-MotoAgenda/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "data de retirada inválida, use o formato AAAA-MM-DD"
	msgInvalidTime        = "horário de retirada inválido, use o formato HH:MM"
	msgValidationFailed   = "verifique os campos do formulário"
	msgSlotTaken          = "este horário acabou de ser reservado, escolha outro"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *createAppointment.ValidationError
		var conflictErr *createAppointment.SlotConflictError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /appointments - Validation failed: order=%s, errors=%d", req.OrderNumber, len(validationErr.Errors))
			handlers.RespondErrorDetails(w, http.StatusUnprocessableEntity, msgValidationFailed, validationErr.Errors)

		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /appointments - Slot taken: date=%s, time=%s", conflictErr.Date, conflictErr.Time)
			handlers.RespondJSON(w, http.StatusConflict, FromSlotConflict(msgSlotTaken, conflictErr))

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: date=%s, time=%s", req.PickupDate, req.PickupTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: order=%s, error=%v", req.OrderNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: id=%s, date=%s, time=%s, notified=%t",
		result.ID, result.PickupDate, result.PickupTime, result.Notified)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
