package booking

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"brushfloss/models"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	bookings []models.Booking
	nextID   int
}

func (f *fakeBookingRepo) Insert(_ context.Context, b models.Booking) (string, error) {
	f.nextID++
	b.ID = "bk-" + strconv.Itoa(f.nextID)
	f.bookings = append(f.bookings, b)
	return b.ID, nil
}

func (f *fakeBookingRepo) ListByDate(_ context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.AppointmentDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByKey(_ context.Context, key models.BookingKey) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Key() == key {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByEmail(_ context.Context, email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBookingRepo) MarkPaid(_ context.Context, id, transactionID string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Paid = true
			f.bookings[i].TransactionID = transactionID
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func TestCreate_SecondIdenticalKeyRejected(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeBookingRepo{}}
	ctx := context.Background()

	req := models.Booking{
		Email:           "a@x.com",
		AppointmentDate: "12-25-2024",
		Treatment:       "Cleaning",
		Slot:            "9am",
	}

	first, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if first.ID == "" {
		t.Error("first create should assign an id")
	}

	_, err = svc.Create(ctx, req)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("second create: expected ConflictError, got %v", err)
	}
}

func TestCreate_SameUserDifferentTreatmentAccepted(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeBookingRepo{}}
	ctx := context.Background()

	base := models.Booking{Email: "a@x.com", AppointmentDate: "12-25-2024", Treatment: "Cleaning", Slot: "9am"}
	if _, err := svc.Create(ctx, base); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	other := base
	other.Treatment = "Whitening"
	if _, err := svc.Create(ctx, other); err != nil {
		t.Fatalf("different treatment should be admitted: %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeBookingRepo{}}

	_, err := svc.GetByID(context.Background(), "missing")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestListByEmail_FiltersByEmail(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}
	ctx := context.Background()

	for _, b := range []models.Booking{
		{Email: "a@x.com", AppointmentDate: "12-25-2024", Treatment: "Cleaning", Slot: "9am"},
		{Email: "b@x.com", AppointmentDate: "12-25-2024", Treatment: "Cleaning", Slot: "10am"},
	} {
		if _, err := svc.Create(ctx, b); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	got, err := svc.ListByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 || got[0].Email != "a@x.com" {
		t.Fatalf("expected exactly a@x.com's bookings, got %+v", got)
	}
}
