package handlers

import (
	"net/http"

	"brushfloss/models"
	"brushfloss/services/doctor"
	"brushfloss/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves practitioner management. Routes are admin-gated.
type DoctorHandler struct {
	Service doctor.DoctorService
}

// NewDoctorHandler constructs a DoctorHandler.
func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// ListDoctors handles GET /api/doctors.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// AddDoctor handles POST /api/doctors.
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var input models.Doctor
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Add(c.Request.Context(), input)
	if err != nil {
		utils.GetLogger().Error("Failed to add doctor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add doctor"})
		return
	}
	c.JSON(http.StatusOK, created)
}

// DeleteDoctor handles DELETE /api/doctors/:id.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		utils.GetLogger().Error("Failed to delete doctor", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
