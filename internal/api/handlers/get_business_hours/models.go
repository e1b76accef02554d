package get_business_hours

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
)

var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// DayResponse слоты одного дня недели
type DayResponse struct {
	Weekday string   `json:"weekday"` // "monday"
	Label   string   `json:"label"`   // "Segunda-feira"
	Closed  bool     `json:"closed"`
	Slots   []string `json:"slots"`
}

// BusinessHoursResponse HTTP response model
type BusinessHoursResponse struct {
	Days                    []DayResponse `json:"days"`
	MinBookingNoticeMinutes int           `json:"minBookingNoticeMinutes"`
}

// BuildResponse собирает таблицу слотов по дням недели
func BuildResponse() *BusinessHoursResponse {
	days := make([]DayResponse, 0, len(domain.Weekdays))
	for _, weekday := range domain.Weekdays {
		table := domain.SlotsForWeekday(weekday)
		slots := make([]string, len(table))
		for i, slot := range table {
			slots[i] = slot.String()
		}

		days = append(days, DayResponse{
			Weekday: strings.ToLower(weekday.String()),
			Label:   weekdayLabels[weekday],
			Closed:  domain.IsClosed(weekday),
			Slots:   slots,
		})
	}

	return &BusinessHoursResponse{
		Days:                    days,
		MinBookingNoticeMinutes: int(domain.MinBookingNotice / time.Minute),
	}
}
