package availability

import (
	"context"
	"encoding/json"
	"time"

	bookingRepo "brushfloss/database/repository/booking"
	treatmentRepo "brushfloss/database/repository/treatment"
	"brushfloss/models"
	"brushfloss/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// cacheTTL bounds how stale a cached availability view may be. Booking
// creation also deletes the date key, so the TTL only covers writes that
// bypass this service.
const cacheTTL = time.Minute

const cacheKeyPrefix = "availability:"

// DefaultAvailabilityService resolves availability in application memory
// behind two equality fetches. Cache may be nil, in which case every call
// resolves from storage.
type DefaultAvailabilityService struct {
	Treatments treatmentRepo.TreatmentRepository
	Bookings   bookingRepo.BookingRepository
	Cache      *redis.Client
}

// CacheKey returns the cache key holding the availability views for a date.
func CacheKey(date string) string {
	return cacheKeyPrefix + date
}

// GetAvailability returns one view per treatment option for the given date,
// in catalog order. The date is matched against bookings by raw string
// equality; an unknown date simply yields every option's full slot list.
func (s *DefaultAvailabilityService) GetAvailability(ctx context.Context, date string) ([]models.AvailabilityView, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, CacheKey(date)).Result()
		if err == nil {
			var views []models.AvailabilityView
			if uerr := json.Unmarshal([]byte(cached), &views); uerr == nil {
				return views, nil
			} else {
				logger.Warn("discarding unreadable availability cache entry",
					zap.String("date", date), zap.Error(uerr))
			}
		}
	}

	catalog, err := s.Treatments.List(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	views := Resolve(date, catalog, bookings)

	if s.Cache != nil {
		if data, err := json.Marshal(views); err == nil {
			if err := s.Cache.Set(ctx, CacheKey(date), data, cacheTTL).Err(); err != nil {
				logger.Warn("failed to cache availability",
					zap.String("date", date), zap.Error(err))
			}
		}
	}
	return views, nil
}

// GetSpecialtyNames returns the name-only catalog projection.
func (s *DefaultAvailabilityService) GetSpecialtyNames(ctx context.Context) ([]models.SpecialtyName, error) {
	return s.Treatments.ListNames(ctx)
}
