package list_trips

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-MotoAgenda/internal/service/trips"
	"github.com/m04kA/SMC-MotoAgenda/internal/service/trips/models"
	"github.com/m04kA/SMC-MotoAgenda/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, req *models.ListTripsRequest) (*models.TripListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TripListResponse), args.Error(1)
}

func TestHandle_Grouped(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, logger.Nop())

	svc.On("List", mock.Anything, &models.ListTripsRequest{}).Return(&models.TripListResponse{
		Groups: []models.TripGroupResponse{
			{Destination: "Aracaju", Trips: []models.TripResponse{{ID: "t1"}}, Counts: models.Counts{Pending: 1, Total: 1}},
		},
		Counts: models.Counts{Pending: 1, Total: 1},
	}, nil)

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/trips", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"destination":"Aracaju"`)
	svc.AssertExpectations(t)
}

func TestHandle_StatusFilter(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, logger.Nop())

	svc.On("List", mock.Anything, mock.MatchedBy(func(req *models.ListTripsRequest) bool {
		return req.Status != nil && *req.Status == "bogus"
	})).Return(nil, fmt.Errorf("%w: invalid status", trips.ErrInvalidInput))

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/trips?status=bogus", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
