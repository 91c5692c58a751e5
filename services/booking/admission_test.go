package booking

import (
	"errors"
	"strings"
	"testing"

	"brushfloss/models"
)

func TestAdmit_AcceptsWhenNoExisting(t *testing.T) {
	req := models.Booking{
		Email:           "a@x.com",
		AppointmentDate: "12-25-2024",
		Treatment:       "Cleaning",
		Slot:            "9am",
	}
	if err := Admit(req, nil); err != nil {
		t.Fatalf("expected acceptance, got %v", err)
	}
}

func TestAdmit_RejectsDuplicateKey(t *testing.T) {
	req := models.Booking{
		Email:           "a@x.com",
		AppointmentDate: "12-25-2024",
		Treatment:       "Cleaning",
		Slot:            "9am",
	}
	existing := []models.Booking{
		{Email: "a@x.com", AppointmentDate: "12-25-2024", Treatment: "Cleaning", Slot: "10am"},
	}

	err := Admit(req, existing)
	if err == nil {
		t.Fatal("expected rejection for duplicate key")
	}

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %T", err)
	}
	if !strings.Contains(err.Error(), "12-25-2024") {
		t.Errorf("conflict message should name the date, got %q", err.Error())
	}
}

func TestAdmit_RejectsRegardlessOfRequestedSlot(t *testing.T) {
	// The gate keys on (email, date, treatment); the slot plays no part.
	req := models.Booking{
		Email:           "a@x.com",
		AppointmentDate: "12-25-2024",
		Treatment:       "Cleaning",
		Slot:            "11am",
	}
	existing := []models.Booking{
		{Email: "a@x.com", AppointmentDate: "12-25-2024", Treatment: "Cleaning", Slot: "11am"},
	}
	if err := Admit(req, existing); err == nil {
		t.Fatal("expected rejection even for a different requested slot")
	}
}
