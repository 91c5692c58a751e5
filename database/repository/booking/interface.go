// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"brushfloss/config"
	"brushfloss/database"
	"brushfloss/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking models.Booking) (string, error)
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
	ListByKey(ctx context.Context, key models.BookingKey) ([]models.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	MarkPaid(ctx context.Context, id, transactionID string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
