package domain

import (
	"time"

	"github.com/m04kA/SMC-MotoAgenda/pkg/types"
)

var (
	weekdaySlots = []types.TimeString{
		"08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00",
		"15:30", "16:00", "16:30", "17:00",
	}

	saturdaySlots = []types.TimeString{
		"08:30", "09:00", "09:30", "10:00", "10:30", "11:00",
	}
)

// SlotsForWeekday returns the fixed pickup slots for a weekday in chronological order.
// Sunday has no slots. The returned slice is a copy and may be modified by the caller.
func SlotsForWeekday(weekday time.Weekday) []types.TimeString {
	var table []types.TimeString

	switch weekday {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday:
		table = weekdaySlots
	case time.Saturday:
		table = saturdaySlots
	default:
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, len(table))
	copy(slots, table)
	return slots
}

// IsClosed returns true if the shop does not work on the weekday
func IsClosed(weekday time.Weekday) bool {
	return weekday == time.Sunday
}

// IsBusinessSlot returns true if t is one of the fixed slots of the date's weekday
func IsBusinessSlot(date types.Date, t types.TimeString) bool {
	for _, slot := range SlotsForWeekday(date.Weekday()) {
		if slot == t {
			return true
		}
	}
	return false
}
