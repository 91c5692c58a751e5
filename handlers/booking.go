package handlers

import (
	"errors"
	"net/http"

	"brushfloss/middleware"
	"brushfloss/models"
	"brushfloss/services/booking"
	"brushfloss/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation and lookups.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /api/bookings. A duplicate (email, date,
// treatment) key is a 409; the message names the conflicting date.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := utils.GetLogger()

	var input models.Booking
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		var conflict *booking.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, gin.H{"acknowledged": false, "message": conflict.Error()})
			return
		}
		logger.Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "booking": created})
}

// ListBookings handles GET /api/bookings?email=. The email must match the
// authenticated token's email.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	decodedEmail, ok := middleware.AuthenticatedEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated identity"})
		return
	}
	if email != decodedEmail {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	bookings, err := h.Service.ListByEmail(c.Request.Context(), email)
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByID handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	id := c.Param("id")
	found, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		var notFound *booking.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return
		}
		utils.GetLogger().Error("Failed to fetch booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, found)
}
