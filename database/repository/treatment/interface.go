// File: database/repository/treatment/interface.go
package treatmentRepo

import (
	"context"

	"brushfloss/config"
	"brushfloss/database"
	"brushfloss/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TreatmentRepository interface {
	List(ctx context.Context) ([]models.TreatmentOption, error)
	ListNames(ctx context.Context) ([]models.SpecialtyName, error)
}

type mongoTreatmentRepo struct {
	coll *mongo.Collection
}

// NewMongoTreatmentRepo constructs a new MongoDB TreatmentRepository.
func NewMongoTreatmentRepo() TreatmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoTreatmentRepo{
		coll: db.Collection("appointmentOptions"),
	}
}
