// File: database/repository/treatment/crud.go
package treatmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brushfloss/models"
)

// List returns the full treatment catalog, unfiltered. The catalog is the
// master slot list; booked state is never stored on it.
func (r *mongoTreatmentRepo) List(ctx context.Context) ([]models.TreatmentOption, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var catalog []models.TreatmentOption
	if err := cursor.All(ctx, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// ListNames returns the name-only projection of the catalog.
func (r *mongoTreatmentRepo) ListNames(ctx context.Context) ([]models.SpecialtyName, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var names []models.SpecialtyName
	if err := cursor.All(ctx, &names); err != nil {
		return nil, err
	}
	return names, nil
}
