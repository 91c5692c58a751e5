// File: database/repository/payment/interface.go
package paymentRepo

import (
	"context"

	"brushfloss/config"
	"brushfloss/database"
	"brushfloss/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment models.Payment) (string, error)
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo constructs a new MongoDB PaymentRepository.
func NewMongoPaymentRepo() PaymentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoPaymentRepo{
		coll: db.Collection("payment"),
	}
}
