package create_appointment

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-MotoAgenda/internal/availability"
	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
	"github.com/m04kA/SMC-MotoAgenda/pkg/types"
)

// Сообщения об ошибках формы (показываются пользователю как есть)
const (
	MsgNameRequired        = "Nome é obrigatório"
	MsgSurnameRequired     = "Sobrenome é obrigatório"
	MsgPhoneRequired       = "Telefone é obrigatório"
	MsgModelRequired       = "Modelo da moto é obrigatório"
	MsgColorRequired       = "Cor da moto é obrigatória"
	MsgChassisRequired     = "Chassi é obrigatório"
	MsgOrderNumberRequired = "Número do pedido é obrigatório"
	MsgDateRequired        = "Data de retirada é obrigatória"
	MsgTimeRequired        = "Horário de retirada é obrigatório"
	MsgDateInPast          = "A data de retirada não pode ser no passado"
	MsgSundayClosed        = "Não abrimos aos domingos"
	MsgNoticeTooShort      = "O agendamento deve ser feito com pelo menos 6 horas de antecedência"
	MsgOutsideBusinessHrs  = "Horário fora do expediente para este dia"
)

// Result результат проверки формы
type Result struct {
	Valid  bool
	Errors []string
}

// ValidateAppointmentForm проверяет форму записи относительно now.
// Возвращает все нарушенные правила в порядке проверки, ошибок не бросает.
func ValidateAppointmentForm(form *Request, now time.Time) Result {
	errs := make([]string, 0)

	if form == nil {
		form = &Request{}
	}

	// 1. Обязательные текстовые поля
	required := []struct {
		value string
		msg   string
	}{
		{form.Name, MsgNameRequired},
		{form.Surname, MsgSurnameRequired},
		{form.Phone, MsgPhoneRequired},
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

	// 2-3. Дата и время выбраны
	hasDate := !form.PickupDate.IsZero()
	hasTime := !form.PickupTime.IsZero()
	if !hasDate {
		errs = append(errs, MsgDateRequired)
	}
	if !hasTime {
		errs = append(errs, MsgTimeRequired)
	}

	if hasDate {
		// 4. Дата не раньше сегодняшней (сравниваем календарные даты)
		if form.PickupDate.Before(types.DateOf(now)) {
			errs = append(errs, MsgDateInPast)
		}

		// 5. Воскресенье - выходной
		sunday := domain.IsClosed(form.PickupDate.Weekday())
		if sunday {
			errs = append(errs, MsgSundayClosed)
		}

		if hasTime {
			// 6. Минимальное время до выдачи
			if !availability.IsSlotValid(form.PickupDate, form.PickupTime, now) {
				errs = append(errs, MsgNoticeTooShort)
			}

			// 7. Время из расписания этого дня недели
			if !sunday && !domain.IsBusinessSlot(form.PickupDate, form.PickupTime) {
				errs = append(errs, MsgOutsideBusinessHrs)
			}
		}
	}

	return Result{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
