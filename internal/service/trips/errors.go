package trips

import "errors"

var (
	// ErrTripNotFound возвращается, когда поездка не найдена
	ErrTripNotFound = errors.New("trips: trip not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("trips: invalid trip status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("trips: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("trips: internal error")
)
