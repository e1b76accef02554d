package trips

import (
	"slices"
	"strings"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
)

// Group поездки с одним пунктом назначения
type Group struct {
	Destination string
	Trips       []*domain.Trip
}

// GroupTripsByDestination группирует поездки по пункту назначения.
// Группы: Aracaju, Socorro, Itabaiana, затем остальные по алфавиту.
// Внутри группы: сначала ожидающие, затем по времени создания (новые первыми).
func GroupTripsByDestination(items []*domain.Trip) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)

	for _, trip := range items {
		i, ok := index[trip.Destination]
		if !ok {
			i = len(groups)
			index[trip.Destination] = i
			groups = append(groups, Group{Destination: trip.Destination})
		}
		groups[i].Trips = append(groups[i].Trips, trip)
	}

	slices.SortFunc(groups, func(a, b Group) int {
		pa, pb := domain.HubPriority(a.Destination), domain.HubPriority(b.Destination)
		switch {
		case pa >= 0 && pb >= 0:
			return pa - pb
		case pa >= 0:
			return -1
		case pb >= 0:
			return 1
		default:
			return strings.Compare(a.Destination, b.Destination)
		}
	})

	for _, group := range groups {
		slices.SortStableFunc(group.Trips, func(a, b *domain.Trip) int {
			if a.IsPending() != b.IsPending() {
				if a.IsPending() {
					return -1
				}
				return 1
			}
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}

	return groups
}

// CountTrips считает поездки по статусам
func CountTrips(items []*domain.Trip) (pending, completed int) {
	for _, trip := range items {
		if trip.IsPending() {
			pending++
		} else if trip.IsCompleted() {
			completed++
		}
	}
	return pending, completed
}
