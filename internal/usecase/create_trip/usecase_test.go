package create_trip

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
	"github.com/m04kA/SMC-MotoAgenda/pkg/logger"
)

type mockTripRepository struct {
	mock.Mock
}

func (m *mockTripRepository) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	args := m.Called(ctx, trip)
	if created, ok := args.Get(0).(*domain.Trip); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) IncTripCreated(destination string) {
	m.Called(destination)
}

func validTrip() *Request {
	return &Request{
		Origin:      "Aracaju",
		Destination: "Itabaiana",
		Model:       "Biz 125",
		Color:       "Preta",
		Chassis:     "9C2JC4110PR000002",
		OrderNumber: "PED-77",
	}
}

func TestValidateTripForm(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
		want   []string
	}{
		{"valid", func(r *Request) {}, []string{}},
		{"missing origin", func(r *Request) { r.Origin = " " }, []string{MsgOriginRequired}},
		{"unknown origin", func(r *Request) { r.Origin = "Lagarto" }, []string{MsgOriginUnknown}},
		{"other origin without text", func(r *Request) { r.Origin = "Outro" }, []string{MsgOriginOtherRequired}},
		{"other origin with text", func(r *Request) { r.Origin = "Outro"; r.OriginOther = "Lagarto" }, []string{}},
		{"missing destination", func(r *Request) { r.Destination = "" }, []string{MsgDestinationRequired}},
		{"other destination without text", func(r *Request) { r.Destination = "Outro"; r.DestinationOther = "  " }, []string{MsgDestinationOtherRequired}},
		{"missing chassis", func(r *Request) { r.Chassis = "" }, []string{MsgChassisRequired}},
		{"several", func(r *Request) { r.Origin = ""; r.Model = ""; r.OrderNumber = "" },
			[]string{MsgOriginRequired, MsgModelRequired, MsgOrderNumberRequired}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validTrip()
			tt.mutate(form)

			result := ValidateTripForm(form)

			assert.Equal(t, len(tt.want) == 0, result.Valid)
			assert.Equal(t, tt.want, result.Errors)
		})
	}
}

func TestExecute_StoresFreeTextForOther(t *testing.T) {
	ctx := context.Background()
	repo := &mockTripRepository{}
	metrics := &mockMetrics{}

	form := validTrip()
	form.Destination = "Outro"
	form.DestinationOther = "  Lagarto "

	repo.On("Create", ctx, mock.MatchedBy(func(trip *domain.Trip) bool {
		return trip.Origin == "Aracaju" && trip.Destination == "Lagarto" && trip.Status == domain.TripPending
	})).Return(&domain.Trip{
		ID:          "c0ffee00-0000-4000-8000-000000000001",
		Origin:      "Aracaju",
		Destination: "Lagarto",
		Status:      domain.TripPending,
		CreatedAt:   time.Date(2024, time.January, 3, 10, 0, 0, 0, time.UTC),
	}, nil)
	metrics.On("IncTripCreated", "Outro").Return()

	resp, err := NewUseCase(repo, metrics, logger.Nop()).Execute(ctx, form)

	require.NoError(t, err)
	assert.Equal(t, "Lagarto", resp.Destination)
	assert.Equal(t, "pending", resp.Status)
	repo.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestExecute_ValidationError(t *testing.T) {
	repo := &mockTripRepository{}
	form := validTrip()
	form.Origin = "Outro"

	_, err := NewUseCase(repo, nil, logger.Nop()).Execute(context.Background(), form)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{MsgOriginOtherRequired}, validationErr.Errors)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	repo := &mockTripRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down"))

	_, err := NewUseCase(repo, nil, logger.Nop()).Execute(ctx, validTrip())

	assert.ErrorIs(t, err, ErrInternal)
}
