// File: healthtick/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthtick/config"
	"healthtick/database"
	bookingRepoPkg "healthtick/database/repository/booking"
	"healthtick/handlers"
	"healthtick/middleware"
	"healthtick/routes"
	"healthtick/services/booking"
	"healthtick/services/clientdir"
	"healthtick/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create booking indexes: %v", err)
	}

	// collaborators and services.
	directory := clientdir.NewSeededDirectory()
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	sessionStore := booking.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Clients:  directory,
		Sessions: sessionStore,
		Logger:   logger,
	}

	// handlers.
	calendarHandler := handlers.NewCalendarHandler(bookingService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	clientHandler := handlers.NewClientHandler(directory)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Calendar endpoints.
		GetDayView:        calendarHandler.GetDayView,
		CheckAvailability: calendarHandler.CheckAvailability,

		// Booking workflow endpoints.
		InitiateSession: bookingHandler.InitiateSession,
		UpdateSession:   bookingHandler.UpdateSession,
		ConfirmBooking:  bookingHandler.ConfirmBooking,
		CancelSession:   bookingHandler.CancelSession,
		RequestDelete:   bookingHandler.RequestDelete,
		ConfirmDelete:   bookingHandler.ConfirmDelete,

		// Client directory endpoints.
		ListClients:   clientHandler.ListClients,
		GetClientByID: clientHandler.GetClientByID,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background health checks for /health.
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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
