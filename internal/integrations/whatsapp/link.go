package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
)

const linkBaseURL = "https://wa.me/"

// NormalizePhone оставляет только цифры и добавляет код страны 55, если его нет.
// Для строки без цифр возвращает пустую строку.
func NormalizePhone(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, raw)

	if digits == "" {
		return ""
	}
	if !strings.HasPrefix(digits, domain.PhoneCountryCode) {
		digits = domain.PhoneCountryCode + digits
	}
	return digits
}

// BuildLink строит ссылку wa.me на чат с номером и предзаполненным текстом
func BuildLink(phone, text string) (string, error) {
	digits := NormalizePhone(phone)
	if digits == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}

	// QueryEscape кодирует пробел как "+", wa.me ожидает %20
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")

	return linkBaseURL + digits + "?text=" + escaped, nil
}

// PickupMessage текст подтверждения записи на выдачу
func PickupMessage(a *domain.Appointment) string {
	return fmt.Sprintf(
		"Olá, %s! Sua moto %s (%s) está agendada para retirada em %s às %s. Pedido: %s. Chassi: %s.",
		firstName(a.CustomerName),
		a.Model,
		a.Color,
		a.PickupDate.Format(),
		a.PickupTime,
		a.OrderNumber,
		a.Chassis,
	)
}

// Linker строит ссылки для записей
type Linker struct{}

// PickupLink ссылка на чат с клиентом с текстом подтверждения
func (Linker) PickupLink(a *domain.Appointment) (string, error) {
	return BuildLink(a.Phone, PickupMessage(a))
}

func firstName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return fullName
	}
	return fields[0]
}
