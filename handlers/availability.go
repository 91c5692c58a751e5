package handlers

import (
	"net/http"

	"brushfloss/services/availability"
	"brushfloss/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the per-date availability views.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetAppointmentOptions handles GET /api/appointments/options?date=.
// The date is an opaque label; an unknown one yields every option's full
// slot list rather than an error.
func (h *AvailabilityHandler) GetAppointmentOptions(c *gin.Context) {
	logger := utils.GetLogger()
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query parameter"})
		return
	}

	views, err := h.Service.GetAvailability(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to resolve availability", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve availability"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetSpecialties handles GET /api/appointments/specialties.
func (h *AvailabilityHandler) GetSpecialties(c *gin.Context) {
	logger := utils.GetLogger()
	names, err := h.Service.GetSpecialtyNames(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list specialties", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list specialties"})
		return
	}
	c.JSON(http.StatusOK, names)
}
