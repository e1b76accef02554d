package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-MotoAgenda/pkg/types"
)

// ErrInvalidStatus returned when a status value from outside is not part of the closed set
var ErrInvalidStatus = errors.New("invalid status")

// AppointmentStatus represents the status of a pickup appointment
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentDelivered AppointmentStatus = "delivered"
)

// ParseAppointmentStatus converts external input into a status, rejecting unknown values
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch status := AppointmentStatus(strings.TrimSpace(s)); status {
	case AppointmentPending, AppointmentDelivered:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Appointment represents a motorcycle pickup appointment ("agendamento")
type Appointment struct {
	ID           string // assigned by storage on creation
	CustomerName string
	Phone        string // stored as typed; normalized only for outbound messaging
	Model        string
	Color        string
	Chassis      string
	OrderNumber  string
	PickupDate   types.Date
	PickupTime   types.TimeString
	Status       AppointmentStatus
	CreatedAt    time.Time
}

// IsPending returns true if the motorcycle has not been handed over yet
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentPending
}

// IsDelivered returns true if the motorcycle was handed over
func (a *Appointment) IsDelivered() bool {
	return a.Status == AppointmentDelivered
}

// Occupies returns true if the appointment holds the given slot
func (a *Appointment) Occupies(date types.Date, t types.TimeString) bool {
	return a.PickupDate.Equal(date) && a.PickupTime == t
}

// AppointmentsFilter filter for appointment listings
type AppointmentsFilter struct {
	Status     *AppointmentStatus // optional
	PickupDate *types.Date        // optional, exact day
}
