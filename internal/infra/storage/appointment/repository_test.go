package appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSlotViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "slot constraint",
			err:  &pq.Error{Code: pgUniqueViolation, Constraint: slotConstraint},
			want: true,
		},
		{
			name: "wrapped slot constraint",
			err:  fmt.Errorf("insert: %w", &pq.Error{Code: pgUniqueViolation, Constraint: slotConstraint}),
			want: true,
		},
		{
			name: "other unique constraint",
			err:  &pq.Error{Code: pgUniqueViolation, Constraint: "appointments_pkey"},
			want: false,
		},
		{
			name: "serialization failure",
			err:  &pq.Error{Code: pgSerializationFailure},
			want: false,
		},
		{
			name: "not a pq error",
			err:  errors.New("connection reset"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSlotViolation(tt.err))
		})
	}
}

func TestIsSerializationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "serialization failure",
			err:  &pq.Error{Code: pgSerializationFailure},
			want: true,
		},
		{
			name: "wrapped in exec error",
			err:  fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, &pq.Error{Code: pgSerializationFailure}),
			want: true,
		},
		{
			name: "wrapped twice",
			err:  fmt.Errorf("commit: %w", fmt.Errorf("tx: %w", &pq.Error{Code: pgSerializationFailure})),
			want: true,
		},
		{
			name: "unique violation",
			err:  &pq.Error{Code: pgUniqueViolation, Constraint: slotConstraint},
			want: false,
		},
		{
			name: "not a pq error",
			err:  errors.New("connection reset"),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSerializationFailure(tt.err))
		})
	}
}

func TestRepository_InvalidIDIsNotFound(t *testing.T) {
	repo := NewRepository(nil)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "42", "delivered"), ErrAppointmentNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, ""), ErrAppointmentNotFound)
}
