package booking

import (
	"context"

	"brushfloss/models"
)

// BookingService creates and reads booking records.
type BookingService interface {
	Create(ctx context.Context, booking models.Booking) (*models.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}
