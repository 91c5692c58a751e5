package user

import (
	"context"

	"brushfloss/models"
)

// UserService manages account records and the admin capability check.
type UserService interface {
	Create(ctx context.Context, user models.User) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	Promote(ctx context.Context, id string) error
}
