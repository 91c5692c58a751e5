package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"brushfloss/models"
)

type stubAvailabilityService struct {
	views []models.AvailabilityView
	names []models.SpecialtyName
}

func (s *stubAvailabilityService) GetAvailability(_ context.Context, _ string) ([]models.AvailabilityView, error) {
	return s.views, nil
}

func (s *stubAvailabilityService) GetSpecialtyNames(_ context.Context) ([]models.SpecialtyName, error) {
	return s.names, nil
}

func availabilityRouter(svc *stubAvailabilityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAvailabilityHandler(svc)
	r.GET("/api/appointments/options", h.GetAppointmentOptions)
	r.GET("/api/appointments/specialties", h.GetSpecialties)
	return r
}

func TestGetAppointmentOptions_RequiresDate(t *testing.T) {
	r := availabilityRouter(&stubAvailabilityService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/options", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetAppointmentOptions_ReturnsViews(t *testing.T) {
	svc := &stubAvailabilityService{
		views: []models.AvailabilityView{
			{Name: "Cleaning", Price: 50, Slots: []string{"9am", "11am"}},
		},
	}
	r := availabilityRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/options?date=12-25-2024", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got []models.AvailabilityView
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response not valid JSON: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Cleaning" || len(got[0].Slots) != 2 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestGetSpecialties(t *testing.T) {
	svc := &stubAvailabilityService{
		names: []models.SpecialtyName{{Name: "Cleaning"}},
	}
	r := availabilityRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/specialties", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got []models.SpecialtyName
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response not valid JSON: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Cleaning" {
		t.Fatalf("unexpected response: %+v", got)
	}
}
