package availability

import (
	"context"

	"brushfloss/models"
)

// AvailabilityService exposes the per-date availability views and the
// specialty-name projection of the catalog.
type AvailabilityService interface {
	GetAvailability(ctx context.Context, date string) ([]models.AvailabilityView, error)
	GetSpecialtyNames(ctx context.Context) ([]models.SpecialtyName, error)
}
