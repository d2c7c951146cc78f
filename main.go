package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"surfbrew/config"
	"surfbrew/database"
	bookingRepoPkg "surfbrew/database/repository/booking"
	coachRepoPkg "surfbrew/database/repository/coach"
	schoolRepoPkg "surfbrew/database/repository/school"
	sessionRepoPkg "surfbrew/database/repository/session"
	userRepoPkg "surfbrew/database/repository/user"
	"surfbrew/handlers"
	"surfbrew/middleware"
	"surfbrew/routes"
	"surfbrew/services/booking"
	"surfbrew/services/directory"
	"surfbrew/services/session"
	"surfbrew/services/user"
	"surfbrew/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()
	mongoClient, err := database.Connect(ctx, config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	utils.InitAuthCache()
	authCache := utils.GetAuthCacheClient()
	utils.StartHealthMonitor(authCache, mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	coachRepo := coachRepoPkg.NewMongoCoachRepo(db)
	schoolRepo := schoolRepoPkg.NewMongoSchoolRepo(db)

	// services.
	bookingService := &booking.DefaultBookingService{
		Sessions: sessionRepo,
		Bookings: bookingRepo,
	}
	sessionService := &session.DefaultSessionService{
		Repo:     sessionRepo,
		Bookings: bookingService,
	}
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: authCache,
	}
	directoryService := &directory.DefaultDirectoryService{
		Coaches: coachRepo,
		Schools: schoolRepo,
	}

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	sessionHandler := handlers.NewSessionHandler(sessionService, logger)
	authHandler := handlers.NewAuthHandler(userService, logger)
	directoryHandler := handlers.NewDirectoryHandler(directoryService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserService: userService,

		RegisterHandler: authHandler.Register,
		LoginHandler:    authHandler.Login,
		MeHandler:       authHandler.Me,

		ListSessionsHandler:  sessionHandler.ListSessions,
		CreateSessionHandler: sessionHandler.CreateSession,

		CreateBookingHandler:     bookingHandler.CreateBooking,
		ListBookingsHandler:      bookingHandler.ListBookings,
		AdminListBookingsHandler: bookingHandler.AdminListBookings,
		CancelBookingHandler:     bookingHandler.CancelBooking,
		AttendBookingHandler:     bookingHandler.AttendBooking,

		ListCoachesHandler:  directoryHandler.ListCoaches,
		CreateCoachHandler:  directoryHandler.CreateCoach,
		ListSchoolsHandler:  directoryHandler.ListSchools,
		CreateSchoolHandler: directoryHandler.CreateSchool,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(shutdownCtx, mongoClient); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
