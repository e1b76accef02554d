package create_appointment

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-MotoAgenda/pkg/types"
)

var (
	// ErrValidation возвращается, когда форма не прошла проверку (см. ValidationError)
	ErrValidation = errors.New("create_appointment: validation failed")

	// ErrSlotTaken возвращается, когда выбранный слот уже занят (см. SlotConflictError)
	ErrSlotTaken = errors.New("create_appointment: slot already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// ValidationError содержит все нарушенные правила формы в порядке проверки
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Errors, "; ")
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// SlotConflictError возвращается, когда слот заняли раньше нас.
// AvailableSlots - свежий список свободных слотов на ту же дату.
type SlotConflictError struct {
	Date           types.Date
	Time           types.TimeString
	AvailableSlots []types.TimeString
}

func (e *SlotConflictError) Error() string {
	return ErrSlotTaken.Error() + ": " + e.Date.String() + " " + e.Time.String()
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrSlotTaken)
func (e *SlotConflictError) Unwrap() error {
	return ErrSlotTaken
}
