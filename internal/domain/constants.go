package domain

import "time"

// Scheduling rules
const (
	// MinBookingNotice minimum lead time between now and a bookable slot (inclusive)
	MinBookingNotice = 6 * time.Hour
)

// Outbound messaging
const (
	// PhoneCountryCode Brazil country code, prefixed to normalized phone numbers
	PhoneCountryCode = "55"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Weekdays in display order, used by the business hours listing
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}
