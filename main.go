// File: brushfloss/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brushfloss/config"
	"brushfloss/database"
	bookingRepoPkg "brushfloss/database/repository/booking"
	doctorRepoPkg "brushfloss/database/repository/doctor"
	paymentRepoPkg "brushfloss/database/repository/payment"
	treatmentRepoPkg "brushfloss/database/repository/treatment"
	userRepoPkg "brushfloss/database/repository/user"
	"brushfloss/handlers"
	"brushfloss/middleware"
	"brushfloss/routes"
	"brushfloss/services/availability"
	"brushfloss/services/booking"
	"brushfloss/services/doctor"
	"brushfloss/services/payment"
	"brushfloss/services/user"
	"brushfloss/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	treatmentRepo := treatmentRepoPkg.NewMongoTreatmentRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// services.
	cacheClient := utils.GetCacheClient()
	availabilityService := &availability.DefaultAvailabilityService{
		Treatments: treatmentRepo,
		Bookings:   bookingRepo,
		Cache:      cacheClient,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:  bookingRepo,
		Cache: cacheClient,
	}
	paymentService := &payment.DefaultPaymentService{
		Bookings: bookingRepo,
		Payments: paymentRepo,
	}
	userService := &user.DefaultUserService{Repo: userRepo}
	doctorService := &doctor.DefaultDoctorService{Repo: doctorRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserService:  userService,
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Booking:      handlers.NewBookingHandler(bookingService),
		Payment:      handlers.NewPaymentHandler(paymentService),
		User:         handlers.NewUserHandler(userService),
		Doctor:       handlers.NewDoctorHandler(doctorService),
		Auth:         handlers.NewAuthHandler(userService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(cacheClient, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
