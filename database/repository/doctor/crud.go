// File: database/repository/doctor/crud.go
package doctorRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"brushfloss/models"
)

func (r *mongoDoctorRepo) List(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *mongoDoctorRepo) Insert(ctx context.Context, doctor models.Doctor) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, doctor); err != nil {
		return "", err
	}
	return doctor.ID, nil
}

func (r *mongoDoctorRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
