package availability

import "brushfloss/models"

// Resolve computes the remaining open slots per treatment for a single date.
//
// catalog is the full treatment list in storage order; bookingsOnDate must be
// the bookings whose appointmentDate equals date exactly (the caller fetches
// them — Resolve itself never touches storage). The result carries one view
// per catalog entry, in catalog order, with each option's slot list narrowed
// to the slots no booking for that treatment has consumed.
//
// The narrowing is a list difference, not a set difference: the relative
// order of option.Slots is preserved, and every occurrence of a consumed
// label is dropped. Resolve is pure — identical inputs yield identical
// output, and an empty bookingsOnDate returns the catalog unchanged.
//
// date participates only as a grouping key the caller already filtered by;
// it is not validated or parsed here.
func Resolve(date string, catalog []models.TreatmentOption, bookingsOnDate []models.Booking) []models.AvailabilityView {
	consumedByTreatment := make(map[string]map[string]struct{})
	for _, booking := range bookingsOnDate {
		consumed, ok := consumedByTreatment[booking.Treatment]
		if !ok {
			consumed = make(map[string]struct{})
			consumedByTreatment[booking.Treatment] = consumed
		}
		consumed[booking.Slot] = struct{}{}
	}

	views := make([]models.AvailabilityView, 0, len(catalog))
	for _, option := range catalog {
		consumed := consumedByTreatment[option.Name]

		remaining := make([]string, 0, len(option.Slots))
		for _, slot := range option.Slots {
			if _, taken := consumed[slot]; taken {
				continue
			}
			remaining = append(remaining, slot)
		}

		views = append(views, models.AvailabilityView{
			Name:  option.Name,
			Price: option.Price,
			Slots: remaining,
		})
	}
	return views
}
