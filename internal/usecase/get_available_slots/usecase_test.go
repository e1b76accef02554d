package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MotoAgenda/pkg/logger"
	"github.com/m04kA/SMC-MotoAgenda/pkg/types"
)

type mockAppointmentRepository struct {
	mock.Mock
}

func (m *mockAppointmentRepository) GetOccupiedTimes(ctx context.Context, date types.Date) ([]types.TimeString, error) {
	args := m.Called(ctx, date)
	if times, ok := args.Get(0).([]types.TimeString); ok {
		return times, args.Error(1)
	}
	return nil, args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

var brt = time.FixedZone("BRT", -3*60*60)

func TestExecute_ExcludesOccupiedAndTooSoon(t *testing.T) {
	ctx := context.Background()
	repo := &mockAppointmentRepository{}
	date := types.Date{Year: 2024, Month: time.January, Day: 3}

	repo.On("GetOccupiedTimes", ctx, date).Return([]types.TimeString{"15:30", "17:00"}, nil)

	// 09:30 - свободно только с 15:30
	uc := NewUseCase(repo, fixedTime{now: time.Date(2024, time.January, 3, 9, 30, 0, 0, brt)}, logger.Nop())
	resp, err := uc.Execute(ctx, &Request{Date: date})

	require.NoError(t, err)
	assert.False(t, resp.Closed)
	assert.Equal(t, []types.TimeString{"16:00", "16:30"}, resp.Slots)
	repo.AssertExpectations(t)
}

func TestExecute_SundaySkipsRepository(t *testing.T) {
	repo := &mockAppointmentRepository{}
	date := types.Date{Year: 2024, Month: time.January, Day: 7}

	uc := NewUseCase(repo, fixedTime{now: time.Date(2024, time.January, 1, 8, 0, 0, 0, brt)}, logger.Nop())
	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
	repo.AssertNotCalled(t, "GetOccupiedTimes", mock.Anything, mock.Anything)
}

func TestExecute_ZeroDate(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepository{}, nil, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	repo := &mockAppointmentRepository{}
	date := types.Date{Year: 2024, Month: time.January, Day: 3}
	repo.On("GetOccupiedTimes", ctx, date).Return(nil, errors.New("timeout"))

	uc := NewUseCase(repo, fixedTime{now: time.Date(2024, time.January, 1, 8, 0, 0, 0, brt)}, logger.Nop())
	_, err := uc.Execute(ctx, &Request{Date: date})

	assert.ErrorIs(t, err, ErrInternal)
}
