package payment

import (
	"context"
	"errors"

	bookingRepo "brushfloss/database/repository/booking"
	paymentRepo "brushfloss/database/repository/payment"
	"brushfloss/models"
	"brushfloss/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultPaymentService talks to Stripe for intents and to the booking and
// payment collections for settlement.
type DefaultPaymentService struct {
	Bookings bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
}

// CreateIntent creates a card payment intent for the given price. Price is
// in whole currency units; Stripe wants minor units.
func (s *DefaultPaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(price * 100)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// Settle records the payment document and marks the booking paid.
// Settlement is unconditional beyond the booking existing: it does not
// verify the amount and silently overwrites the transaction id on repeat
// calls, so re-settlement is idempotent.
func (s *DefaultPaymentService) Settle(ctx context.Context, bookingID, transactionID, email string, price float64) error {
	logger := utils.GetLogger()

	record := models.Payment{
		BookingID:     bookingID,
		Email:         email,
		Price:         price,
		TransactionID: transactionID,
	}
	if _, err := s.Payments.Insert(ctx, record); err != nil {
		return err
	}

	if err := s.Bookings.MarkPaid(ctx, bookingID, transactionID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{BookingID: bookingID}
		}
		return err
	}

	logger.Info("booking settled",
		zap.String("bookingId", bookingID),
		zap.String("transactionId", transactionID))
	return nil
}
