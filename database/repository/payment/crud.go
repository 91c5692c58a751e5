// File: database/repository/payment/crud.go
package paymentRepo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"brushfloss/models"
)

func (r *mongoPaymentRepo) Insert(ctx context.Context, payment models.Payment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return "", err
	}
	return payment.ID, nil
}
