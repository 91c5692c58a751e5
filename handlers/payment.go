package handlers

import (
	"errors"
	"net/http"

	"brushfloss/models"
	"brushfloss/services/payment"
	"brushfloss/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves payment-intent creation and settlement.
type PaymentHandler struct {
	Service payment.PaymentService
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreateIntent handles POST /api/payments/create-intent.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	logger := utils.GetLogger()

	var input models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	clientSecret, err := h.Service.CreateIntent(c.Request.Context(), input.Price)
	if err != nil {
		logger.Error("Failed to create payment intent", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// RecordPayment handles POST /api/payments: it stores the payment record
// and marks the booking paid.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	logger := utils.GetLogger()

	var input struct {
		BookingID     string  `json:"bookingId" binding:"required"`
		TransactionID string  `json:"transactionId" binding:"required"`
		Email         string  `json:"email"`
		Price         float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	err := h.Service.Settle(c.Request.Context(), input.BookingID, input.TransactionID, input.Email, input.Price)
	if err != nil {
		var notFound *payment.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return
		}
		logger.Error("Failed to settle payment", zap.String("bookingId", input.BookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to settle payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settled": true})
}
