package catalog

import "parlour/models"

// WithAvailability returns a copy of services where each service's slot
// list excludes every slot consumed by a booking for that treatment on
// the given date, preserving the offered order. Consumed labels that a
// service never offered are ignored. Inputs are not mutated.
func WithAvailability(date string, services []models.Service, bookings []models.Booking) []models.Service {
	out := make([]models.Service, len(services))
	for i, svc := range services {
		consumed := map[string]bool{}
		for _, b := range bookings {
			if b.Treatment == svc.Name && b.SelectedDate == date {
				consumed[b.Slot] = true
			}
		}

		remaining := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if !consumed[slot] {
				remaining = append(remaining, slot)
			}
		}

		out[i] = svc
		out[i].Slots = remaining
	}
	return out
}
