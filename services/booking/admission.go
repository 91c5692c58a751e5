package booking

import "brushfloss/models"

// Admit is the uniqueness gate for booking creation. existingForKey must be
// the bookings already stored under the request's (email, appointmentDate,
// treatment) key; any hit rejects the request before insertion, regardless
// of which slot it asked for.
//
// Admit does not check that the requested slot is still free: two different
// emails can take the same slot, and two concurrent requests for the same
// key can both pass the gate. The pre-check is a best-effort guard, not a
// reservation.
func Admit(request models.Booking, existingForKey []models.Booking) error {
	if len(existingForKey) > 0 {
		return &ConflictError{Date: request.AppointmentDate}
	}
	return nil
}
