package trip

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
)

func TestRepository_InvalidIDIsNotFound(t *testing.T) {
	repo := NewRepository(nil)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "trip-1")
	assert.ErrorIs(t, err, ErrTripNotFound)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "trip-1", domain.TripCompleted), ErrTripNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "trip-1"), ErrTripNotFound)
}
