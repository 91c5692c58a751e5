// File: database/repository/user/interface.go
package userRepo

import (
	"context"

	"brushfloss/config"
	"brushfloss/database"
	"brushfloss/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Insert(ctx context.Context, user models.User) (string, error)
	List(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	PromoteToAdmin(ctx context.Context, id string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}
