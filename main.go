package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotify/config"
	"slotify/cron"
	"slotify/database"
	appointmentRepoPkg "slotify/database/repository/appointment"
	eventRepoPkg "slotify/database/repository/event"
	facultyRepoPkg "slotify/database/repository/faculty"
	scheduleRepoPkg "slotify/database/repository/schedule"
	"slotify/handlers"
	"slotify/middleware"
	"slotify/routes"
	"slotify/services/booking"
	"slotify/services/faculty"
	"slotify/services/notification"
	"slotify/services/schedule"
	"slotify/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	facultyRepo := facultyRepoPkg.NewMongoFacultyRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	facultyService := &faculty.DefaultFacultyService{
		Repo: facultyRepo,
	}
	scheduleService := &schedule.DefaultScheduleService{
		Repo:   scheduleRepo,
		Events: eventRepo,
	}
	notificationService := notification.NewEmailNotificationService()

	reminderScheduler := cron.NewAsynqReminderScheduler()
	defer reminderScheduler.Close()
	cron.InitReminderWorker(appointmentRepo, eventRepo, notificationService)

	bookingService := &booking.DefaultBookingService{
		Events:       eventRepo,
		Schedules:    scheduleRepo,
		Appointments: appointmentRepo,
		Notifier:     notificationService,
		Reminders:    reminderScheduler,
	}

	facultyHandler := handlers.NewFacultyHandler(facultyService, eventRepo)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	availabilityHandler := handlers.NewAvailabilityHandler(bookingService)
	appointmentHandler := handlers.NewAppointmentHandler(bookingService, appointmentRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		FacultyRepo: facultyRepo,

		// Faculty account endpoints.
		RegisterFacultyHandler:     facultyHandler.RegisterFacultyHandler,
		AuthenticateFacultyHandler: facultyHandler.AuthenticateFacultyHandler,
		RevokeFacultyTokenHandler:  facultyHandler.RevokeFacultyTokenHandler,

		// Public directory endpoints.
		ListFacultyHandler:       facultyHandler.ListFacultyHandler,
		ListFacultyEventsHandler: facultyHandler.ListFacultyEventsHandler,
		GetEventHandler:          facultyHandler.GetEventHandler,

		// Availability endpoints.
		MonthAvailabilityHandler: availabilityHandler.MonthAvailabilityHandler,
		DaySlotsHandler:          availabilityHandler.DaySlotsHandler,

		// Booking endpoints.
		BookAppointmentHandler:   appointmentHandler.BookAppointmentHandler,
		ListAppointmentsHandler:  appointmentHandler.ListAppointmentsHandler,
		CancelAppointmentHandler: appointmentHandler.CancelAppointmentHandler,

		// Schedule admin endpoints.
		CreateScheduleHandler: scheduleHandler.CreateScheduleHandler,
		ListSchedulesHandler:  scheduleHandler.ListSchedulesHandler,
		DeleteScheduleHandler: scheduleHandler.DeleteScheduleHandler,
		SetWeeklyRulesHandler: scheduleHandler.SetWeeklyRulesHandler,
		GetWeeklyRulesHandler: scheduleHandler.GetWeeklyRulesHandler,
		AddOverrideHandler:    scheduleHandler.AddOverrideHandler,
		ListOverridesHandler:  scheduleHandler.ListOverridesHandler,
		RemoveOverrideHandler: scheduleHandler.RemoveOverrideHandler,

		// Event admin endpoints.
		CreateEventHandler: scheduleHandler.CreateEventHandler,
		UpdateEventHandler: scheduleHandler.UpdateEventHandler,
		DeleteEventHandler: scheduleHandler.DeleteEventHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

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
