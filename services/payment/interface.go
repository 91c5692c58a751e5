package payment

import "context"

// PaymentService creates Stripe payment intents and settles bookings once a
// charge completes.
type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
	Settle(ctx context.Context, bookingID, transactionID, email string, price float64) error
}
