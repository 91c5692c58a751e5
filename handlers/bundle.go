package handlers

import "brushfloss/services/user"

// HandlerBundle aggregates the handlers routes are wired from, plus the
// user service the admin gate consults.
type HandlerBundle struct {
	UserService user.UserService

	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Payment      *PaymentHandler
	User         *UserHandler
	Doctor       *DoctorHandler
	Auth         *AuthHandler
}
