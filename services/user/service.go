package user

import (
	"context"
	"errors"

	userRepo "brushfloss/database/repository/user"
	"brushfloss/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultUserService is the store-backed UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Create(ctx context.Context, user models.User) (*models.User, error) {
	id, err := s.Repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return &user, nil
}

func (s *DefaultUserService) List(ctx context.Context) ([]models.User, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.Repo.GetByEmail(ctx, email)
}

// IsAdmin is the authorization predicate consulted before doctor management
// and role escalation. An unknown email is simply not an admin.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *DefaultUserService) Promote(ctx context.Context, id string) error {
	return s.Repo.PromoteToAdmin(ctx, id)
}
