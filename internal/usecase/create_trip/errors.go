package create_trip

import (
	"errors"
	"strings"
)

var (
	// ErrValidation возвращается, когда форма не прошла проверку (см. ValidationError)
	ErrValidation = errors.New("create_trip: validation failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_trip: internal error")
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
