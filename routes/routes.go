package routes

import (
	"net/http"
	"time"

	"brushfloss/handlers"
	"brushfloss/middleware"
	"brushfloss/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers the availability endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.GET("/options", hb.Availability.GetAppointmentOptions)
		api.GET("/specialties", hb.Availability.GetSpecialties)
	}
}

// RegisterBookingRoutes registers booking creation and lookups. Creation is
// open (the client books before authenticating for payment); listing a
// user's bookings requires their own token.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("/:id", hb.Booking.GetBookingByID)
		api.GET("", middleware.JWTAuthMiddleware(), hb.Booking.ListBookings)
	}
}

// RegisterPaymentRoutes registers intent creation and settlement.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/create-intent", hb.Payment.CreateIntent)
		api.POST("", hb.Payment.RecordPayment)
	}
}

// RegisterUserRoutes registers account endpoints. Role escalation requires
// an authenticated admin.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/jwt", hb.Auth.IssueToken)

	api := r.Group("/api/users")
	{
		api.GET("", hb.User.ListUsers)
		api.POST("", hb.User.CreateUser)
		api.GET("/admin/:email", hb.User.CheckAdmin)
		api.PUT("/admin/:id",
			middleware.JWTAuthMiddleware(),
			middleware.AdminOnlyMiddleware(hb.UserService),
			hb.User.PromoteUser)
	}
}

// RegisterDoctorRoutes registers practitioner management, all admin-gated.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware(hb.UserService))
		api.GET("", hb.Doctor.ListDoctors)
		api.POST("", hb.Doctor.AddDoctor)
		api.DELETE("/:id", hb.Doctor.DeleteDoctor)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterHealthRoute(r)
}
