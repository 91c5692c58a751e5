package availability

import (
	"context"
	"reflect"
	"testing"

	"brushfloss/models"
)

type fakeTreatmentRepo struct {
	catalog []models.TreatmentOption
}

func (f *fakeTreatmentRepo) List(_ context.Context) ([]models.TreatmentOption, error) {
	return f.catalog, nil
}

func (f *fakeTreatmentRepo) ListNames(_ context.Context) ([]models.SpecialtyName, error) {
	names := make([]models.SpecialtyName, 0, len(f.catalog))
	for _, option := range f.catalog {
		names = append(names, models.SpecialtyName{Name: option.Name})
	}
	return names, nil
}

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) Insert(_ context.Context, b models.Booking) (string, error) {
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

func (f *fakeBookingRepo) ListByKey(_ context.Context, _ models.BookingKey) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ListByEmail(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ string) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) MarkPaid(_ context.Context, _, _ string) error {
	return nil
}

func TestGetAvailability_FiltersByExactDate(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Treatments: &fakeTreatmentRepo{catalog: []models.TreatmentOption{
			{Name: "Cleaning", Price: 50, Slots: []string{"9am", "10am", "11am"}},
		}},
		Bookings: &fakeBookingRepo{bookings: []models.Booking{
			{Treatment: "Cleaning", Slot: "10am", AppointmentDate: "12-25-2024"},
			{Treatment: "Cleaning", Slot: "9am", AppointmentDate: "12-26-2024"},
		}},
	}

	got, err := svc.GetAvailability(context.Background(), "12-25-2024")
	if err != nil {
		t.Fatalf("GetAvailability failed: %v", err)
	}
	want := []models.AvailabilityView{
		{Name: "Cleaning", Price: 50, Slots: []string{"9am", "11am"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GetAvailability() = %+v, want %+v", got, want)
	}
}

func TestGetAvailability_UnknownDateYieldsFullCatalog(t *testing.T) {
	// Dates are opaque labels; a string that is not even a date is a valid key.
	svc := &DefaultAvailabilityService{
		Treatments: &fakeTreatmentRepo{catalog: []models.TreatmentOption{
			{Name: "Cleaning", Price: 50, Slots: []string{"9am"}},
		}},
		Bookings: &fakeBookingRepo{},
	}

	got, err := svc.GetAvailability(context.Background(), "not-a-date")
	if err != nil {
		t.Fatalf("GetAvailability failed: %v", err)
	}
	if len(got) != 1 || !reflect.DeepEqual(got[0].Slots, []string{"9am"}) {
		t.Fatalf("expected full catalog for unknown date, got %+v", got)
	}
}

func TestGetSpecialtyNames(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Treatments: &fakeTreatmentRepo{catalog: []models.TreatmentOption{
			{Name: "Cleaning"}, {Name: "Whitening"},
		}},
		Bookings: &fakeBookingRepo{},
	}

	got, err := svc.GetSpecialtyNames(context.Background())
	if err != nil {
		t.Fatalf("GetSpecialtyNames failed: %v", err)
	}
	want := []models.SpecialtyName{{Name: "Cleaning"}, {Name: "Whitening"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GetSpecialtyNames() = %+v, want %+v", got, want)
	}
}
