package delete_appointment

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
	"github.com/m04kA/SMC-MotoAgenda/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func del(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"appointmentId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, logger.Nop())

	svc.On("Delete", mock.Anything, "a1").Return(nil)
	svc.On("Delete", mock.Anything, "gone").Return(appointments.ErrAppointmentNotFound)
	svc.On("Delete", mock.Anything, "boom").Return(errors.Join(appointments.ErrInternal, errors.New("db")))

	assert.Equal(t, http.StatusNoContent, del(h, "a1").Code)
	assert.Equal(t, http.StatusNotFound, del(h, "gone").Code)
	assert.Equal(t, http.StatusInternalServerError, del(h, "boom").Code)
}
