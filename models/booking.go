package models

// Booking is one user's reservation of one slot of one treatment on one date.
// AppointmentDate is an opaque label (e.g. "12-25-2024") compared by raw
// string equality everywhere; no calendar parsing is performed.
type Booking struct {
	ID              string  `bson:"_id,omitempty" json:"id,omitempty"`
	Email           string  `bson:"email" json:"email"`
	AppointmentDate string  `bson:"appointmentDate" json:"appointmentDate"`
	Treatment       string  `bson:"treatment" json:"treatment"` // A TreatmentOption name
	Slot            string  `bson:"slot" json:"slot"`           // One of that option's slots
	Price           float64 `bson:"price" json:"price"`
	Paid            bool    `bson:"paid,omitempty" json:"paid,omitempty"`
	TransactionID   string  `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

// BookingKey is the tuple enforced unique at admission time.
type BookingKey struct {
	Email           string
	AppointmentDate string
	Treatment       string
}

// Key extracts the admission key of a booking.
func (b Booking) Key() BookingKey {
	return BookingKey{
		Email:           b.Email,
		AppointmentDate: b.AppointmentDate,
		Treatment:       b.Treatment,
	}
}
