// Package availability computes bookable pickup slots.
//
// All functions are pure: the evaluation instant is passed in explicitly and
// nothing is cached, so they are safe for concurrent use.
package availability

import (
	"time"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
	"github.com/m04kA/SMC-MotoAgenda/pkg/types"
)

// Occupied set of times already booked on one date
type Occupied map[types.TimeString]struct{}

// NewOccupied builds an occupancy set from a list of booked times
func NewOccupied(times ...types.TimeString) Occupied {
	occupied := make(Occupied, len(times))
	for _, t := range times {
		occupied[t] = struct{}{}
	}
	return occupied
}

// OccupiedOn collects the times held by appointments on the given date
func OccupiedOn(date types.Date, appointments []*domain.Appointment) Occupied {
	occupied := make(Occupied)
	for _, a := range appointments {
		if a.PickupDate.Equal(date) {
			occupied[a.PickupTime] = struct{}{}
		}
	}
	return occupied
}

// Contains returns true if t is booked
func (o Occupied) Contains(t types.TimeString) bool {
	_, ok := o[t]
	return ok
}

// IsSlotValid reports whether the slot (date, t) starts at least
// domain.MinBookingNotice after now. The slot instant is built from the
// numeric date and clock components in now's location.
func IsSlotValid(date types.Date, t types.TimeString, now time.Time) bool {
	if date.IsZero() || t.Validate() != nil {
		return false
	}
	slotAt := date.At(t, now.Location())
	return slotAt.Sub(now) >= domain.MinBookingNotice
}

// GenerateSlots returns the fixed slots of the date's weekday that pass
// IsSlotValid, in chronological order. Sundays yield an empty slice.
func GenerateSlots(date types.Date, now time.Time) []types.TimeString {
	table := domain.SlotsForWeekday(date.Weekday())

	slots := make([]types.TimeString, 0, len(table))
	for _, slot := range table {
		if IsSlotValid(date, slot, now) {
			slots = append(slots, slot)
		}
	}
	return slots
}

// AvailableSlots returns GenerateSlots(date, now) without the occupied times,
// preserving order
func AvailableSlots(date types.Date, occupied Occupied, now time.Time) []types.TimeString {
	generated := GenerateSlots(date, now)

	free := make([]types.TimeString, 0, len(generated))
	for _, slot := range generated {
		if !occupied.Contains(slot) {
			free = append(free, slot)
		}
	}
	return free
}

// Contains reports whether t is in slots. Callers use it to drop a selection
// that is no longer offered after availability was recomputed.
func Contains(slots []types.TimeString, t types.TimeString) bool {
	for _, slot := range slots {
		if slot == t {
			return true
		}
	}
	return false
}
