package create_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MotoAgenda/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-MotoAgenda/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-MotoAgenda/pkg/logger"
	"github.com/m04kA/SMC-MotoAgenda/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createAppointment.Response), args.Error(1)
}

const validBody = `{
	"name": "Ana",
	"surname": "Souza",
	"phone": "(11) 98765-4321",
	"model": "CG 160",
	"color": "Vermelha",
	"chassis": "9C2KC1670PR000001",
	"orderNumber": "PED-42",
	"pickupDate": "2024-01-04",
	"pickupTime": "09:00"
}`

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := new(mockUseCase)
	h := NewHandler(uc, logger.Nop())

	date := types.Date{Year: 2024, Month: time.January, Day: 4}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createAppointment.Request) bool {
		return req.Name == "Ana" && req.PickupDate.Equal(date) && req.PickupTime == "09:00"
	})).Return(&createAppointment.Response{
		ID:           "7d0c1a7e-6f55-4a43-9d1d-8a1c1a0f0b11",
		CustomerName: "Ana Souza",
		PickupDate:   date,
		PickupTime:   "09:00",
		Status:       "pending",
		Notified:     true,
	}, nil)

	rec := post(h, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Ana Souza", body.CustomerName)
	assert.Equal(t, "2024-01-04", body.PickupDate)
	assert.Equal(t, "09:00", body.PickupTime)
	assert.True(t, body.Notified)
	uc.AssertExpectations(t)
}

func TestHandle_EmptyDateAndTimeReachValidation(t *testing.T) {
	uc := new(mockUseCase)
	h := NewHandler(uc, logger.Nop())

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createAppointment.Request) bool {
		return req.PickupDate.IsZero() && req.PickupTime.IsZero()
	})).Return(nil, &createAppointment.ValidationError{Errors: []string{
		createAppointment.MsgDateRequired,
		createAppointment.MsgTimeRequired,
	}})

	rec := post(h, `{"name":"Ana","pickupDate":"","pickupTime":""}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgValidationFailed, body.Error)
	assert.Equal(t, []string{createAppointment.MsgDateRequired, createAppointment.MsgTimeRequired}, body.Details)
}

func TestHandle_SlotConflict(t *testing.T) {
	uc := new(mockUseCase)
	h := NewHandler(uc, logger.Nop())

	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &createAppointment.SlotConflictError{
		Date:           types.Date{Year: 2024, Month: time.January, Day: 4},
		Time:           "09:00",
		AvailableSlots: []types.TimeString{"09:30", "10:00"},
	})

	rec := post(h, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body SlotConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgSlotTaken, body.Error)
	assert.Equal(t, []string{"09:30", "10:00"}, body.AvailableSlots)
}

func TestHandle_BadInput(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"malformed json", `{"name":`, msgInvalidRequestBody},
		{"bad date", `{"pickupDate":"04/01/2024"}`, msgInvalidDate},
		{"bad time", `{"pickupDate":"2024-01-04","pickupTime":"9h"}`, msgInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			h := NewHandler(uc, logger.Nop())

			rec := post(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	uc := new(mockUseCase)
	h := NewHandler(uc, logger.Nop())

	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, errors.Join(createAppointment.ErrInternal, errors.New("connection refused")))

	rec := post(h, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
