package whatsapp

import "errors"

var (
	// ErrInvalidPhone возвращается, когда в номере нет ни одной цифры
	ErrInvalidPhone = errors.New("whatsapp: invalid phone number")

	// ErrNotConnected возвращается при отправке без активного подключения
	ErrNotConnected = errors.New("whatsapp: client is not connected")

	// ErrNotOnWhatsApp возвращается, когда номер не зарегистрирован в WhatsApp
	ErrNotOnWhatsApp = errors.New("whatsapp: number is not on whatsapp")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")
)
