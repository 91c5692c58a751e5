package doctor

import (
	"context"

	"brushfloss/models"
)

// DoctorService manages practitioner records. All operations are
// admin-gated at the transport layer.
type DoctorService interface {
	List(ctx context.Context) ([]models.Doctor, error)
	Add(ctx context.Context, doctor models.Doctor) (*models.Doctor, error)
	Delete(ctx context.Context, id string) error
}
