package booking

import (
	"context"
	"errors"

	bookingRepo "brushfloss/database/repository/booking"
	"brushfloss/models"
	"brushfloss/services/availability"
	"brushfloss/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultBookingService runs the admission gate against the booking store.
// Cache may be nil; when set, a successful insert drops the availability
// cache entry for the booked date.
type DefaultBookingService struct {
	Repo  bookingRepo.BookingRepository
	Cache *redis.Client
}

// Create admits and inserts a booking. A ConflictError means a booking with
// the same (email, appointmentDate, treatment) key already exists and
// nothing was inserted.
func (s *DefaultBookingService) Create(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	existing, err := s.Repo.ListByKey(ctx, booking.Key())
	if err != nil {
		return nil, err
	}
	if err := Admit(booking, existing); err != nil {
		return nil, err
	}

	id, err := s.Repo.Insert(ctx, booking)
	if err != nil {
		return nil, err
	}
	booking.ID = id

	if s.Cache != nil {
		if err := s.Cache.Del(ctx, availability.CacheKey(booking.AppointmentDate)).Err(); err != nil {
			utils.GetLogger().Warn("failed to invalidate availability cache",
				zap.String("date", booking.AppointmentDate), zap.Error(err))
		}
	}
	return &booking, nil
}

func (s *DefaultBookingService) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.Repo.ListByEmail(ctx, email)
}

func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	return booking, nil
}
