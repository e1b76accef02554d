package appointments

import (
	"slices"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
)

// SortAppointments упорядочивает записи на месте: сначала ожидающие выдачи,
// затем по возрастанию (дата, время). Сортировка стабильная.
func SortAppointments(items []*domain.Appointment) {
	slices.SortStableFunc(items, func(a, b *domain.Appointment) int {
		if a.IsPending() != b.IsPending() {
			if a.IsPending() {
				return -1
			}
			return 1
		}
		if c := a.PickupDate.Compare(b.PickupDate); c != 0 {
			return c
		}
		switch {
		case a.PickupTime.IsBefore(b.PickupTime):
			return -1
		case a.PickupTime.IsAfter(b.PickupTime):
			return 1
		default:
			return 0
		}
	})
}

// CountAppointments считает записи по статусам
func CountAppointments(items []*domain.Appointment) (pending, delivered int) {
	for _, a := range items {
		if a.IsPending() {
			pending++
		} else if a.IsDelivered() {
			delivered++
		}
	}
	return pending, delivered
}
