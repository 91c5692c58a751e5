package doctor

import (
	"context"
	"errors"
	"fmt"

	doctorRepo "brushfloss/database/repository/doctor"
	"brushfloss/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultDoctorService is the store-backed DoctorService.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultDoctorService) Add(ctx context.Context, doctor models.Doctor) (*models.Doctor, error) {
	id, err := s.Repo.Insert(ctx, doctor)
	if err != nil {
		return nil, err
	}
	doctor.ID = id
	return &doctor, nil
}

func (s *DefaultDoctorService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("doctor %s not found", id)
		}
		return err
	}
	return nil
}
