package get_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-MotoAgenda/internal/service/appointments"
	"github.com/m04kA/SMC-MotoAgenda/internal/service/appointments/models"
	"github.com/m04kA/SMC-MotoAgenda/pkg/logger"
	"github.com/m04kA/SMC-MotoAgenda/pkg/ptr"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AppointmentResponse), args.Error(1)
}

func get(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"appointmentId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, logger.Nop())

	svc.On("GetByID", mock.Anything, "a1").Return(&models.AppointmentResponse{
		ID:           "a1",
		WhatsAppLink: ptr.Ptr("https://wa.me/5511987654321?text=Ol%C3%A1"),
	}, nil)

	rec := get(h, "a1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"whatsappLink":"https://wa.me/5511987654321?text=Ol%C3%A1"`)
}

func TestHandle_NotFound(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, logger.Nop())

	svc.On("GetByID", mock.Anything, "missing").Return(nil, appointments.ErrAppointmentNotFound)

	rec := get(h, "missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), msgNotFound)
}

func TestHandle_InternalError(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, logger.Nop())

	svc.On("GetByID", mock.Anything, "a1").Return(nil, errors.Join(appointments.ErrInternal, errors.New("boom")))

	assert.Equal(t, http.StatusInternalServerError, get(h, "a1").Code)
}
