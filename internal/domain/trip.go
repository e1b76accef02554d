package domain

import (
	"strings"
	"time"
)

// TripStatus represents the status of an inter-branch transfer
type TripStatus string

const (
	TripPending   TripStatus = "pending"
	TripCompleted TripStatus = "completed"
)

// ParseTripStatus converts external input into a status, rejecting unknown values
func ParseTripStatus(s string) (TripStatus, error) {
	switch status := TripStatus(strings.TrimSpace(s)); status {
	case TripPending, TripCompleted:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Trip represents a motorcycle transfer between locations ("viagem").
// Trips are tracked by status only, they are never scheduled to a slot.
type Trip struct {
	ID          string
	Origin      string
	Destination string
	Model       string
	Color       string
	Chassis     string
	OrderNumber string
	Status      TripStatus
	CreatedAt   time.Time
}

// IsPending returns true if the transfer has not been completed yet
func (t *Trip) IsPending() bool {
	return t.Status == TripPending
}

// IsCompleted returns true if the transfer was completed
func (t *Trip) IsCompleted() bool {
	return t.Status == TripCompleted
}
