// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"

	"brushfloss/config"
	"brushfloss/database"
	"brushfloss/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorRepository interface {
	List(ctx context.Context) ([]models.Doctor, error)
	Insert(ctx context.Context, doctor models.Doctor) (string, error)
	Delete(ctx context.Context, id string) error
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoDoctorRepo{
		coll: db.Collection("doctors"),
	}
}
