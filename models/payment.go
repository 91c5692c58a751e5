package models

import "time"

// Payment records a completed charge against a booking.
type Payment struct {
	ID            string    `bson:"_id,omitempty" json:"id,omitempty"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	Email         string    `bson:"email" json:"email"`
	Price         float64   `bson:"price" json:"price"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// PaymentIntentRequest is the payload for creating a Stripe payment intent.
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required"`
}
