package create_trip

import (
	"strings"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
)

// Сообщения об ошибках формы (показываются пользователю как есть)
const (
	MsgOriginRequired           = "Origem é obrigatória"
	MsgOriginUnknown            = "Origem inválida"
	MsgOriginOtherRequired      = "Informe o local de origem"
	MsgDestinationRequired      = "Destino é obrigatório"
	MsgDestinationUnknown       = "Destino inválido"
	MsgDestinationOtherRequired = "Informe o local de destino"
	MsgModelRequired            = "Modelo da moto é obrigatório"
	MsgColorRequired            = "Cor da moto é obrigatória"
	MsgChassisRequired          = "Chassi é obrigatório"
	MsgOrderNumberRequired      = "Número do pedido é obrigatório"
)

// Result результат проверки формы
type Result struct {
	Valid  bool
	Errors []string
}

// ValidateTripForm проверяет форму поездки. Возвращает все нарушенные правила по порядку.
func ValidateTripForm(form *Request) Result {
	errs := make([]string, 0)

	if form == nil {
		form = &Request{}
	}

	errs = append(errs, validateLocation(form.Origin, form.OriginOther, MsgOriginRequired, MsgOriginUnknown, MsgOriginOtherRequired)...)
	errs = append(errs, validateLocation(form.Destination, form.DestinationOther, MsgDestinationRequired, MsgDestinationUnknown, MsgDestinationOtherRequired)...)

	required := []struct {
		value string
		msg   string
	}{
		{form.Model, MsgModelRequired},
		{form.Color, MsgColorRequired},
		{form.Chassis, MsgChassisRequired},
		{form.OrderNumber, MsgOrderNumberRequired},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			errs = append(errs, field.msg)
		}
	}

	return Result{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// validateLocation проверяет выбранный филиал и, для "Outro", текстовое поле
func validateLocation(selected, other, msgRequired, msgUnknown, msgOtherRequired string) []string {
	selected = strings.TrimSpace(selected)

	switch {
	case selected == "":
		return []string{msgRequired}
	case !domain.IsKnownLocation(selected):
		return []string{msgUnknown}
	case domain.IsOtherLocation(selected) && strings.TrimSpace(other) == "":
		return []string{msgOtherRequired}
	default:
		return nil
	}
}

// resolveLocation возвращает сохраняемое значение: филиал или свободный текст для "Outro"
func resolveLocation(selected, other string) string {
	if domain.IsOtherLocation(selected) {
		return strings.TrimSpace(other)
	}
	return strings.TrimSpace(selected)
}
