// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"brushfloss/models"
)

func (r *mongoBookingRepo) Insert(ctx context.Context, booking models.Booking) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return "", err
	}
	return booking.ID, nil
}

// ListByDate returns every booking whose appointmentDate equals date exactly.
// The date is an opaque label; no normalization happens here or anywhere else.
func (r *mongoBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"appointmentDate": date})
}

// ListByKey returns bookings matching the (email, appointmentDate, treatment)
// admission key.
func (r *mongoBookingRepo) ListByKey(ctx context.Context, key models.BookingKey) ([]models.Booking, error) {
	return r.list(ctx, bson.M{
		"email":           key.Email,
		"appointmentDate": key.AppointmentDate,
		"treatment":       key.Treatment,
	})
}

func (r *mongoBookingRepo) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"email": email})
}

func (r *mongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// MarkPaid sets paid=true and records the transaction id. Re-settlement is
// allowed and overwrites the previous transaction id.
func (r *mongoBookingRepo) MarkPaid(ctx context.Context, id, transactionID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	update := bson.M{
		"$set": bson.M{
			"paid":          true,
			"transactionId": transactionID,
		},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
