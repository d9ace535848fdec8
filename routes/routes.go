package routes

import (
	"net/http"
	"time"

	"slotify/handlers"
	"slotify/middleware"
	"slotify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterFacultyRoutes registers faculty account endpoints.
func RegisterFacultyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/faculty")
	{
		api.POST("/register", hb.RegisterFacultyHandler)
		api.POST("/login", hb.AuthenticateFacultyHandler)

		// Public directory endpoints
		api.GET("", hb.ListFacultyHandler)
		api.GET("/:id/events", hb.ListFacultyEventsHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthFacultyMiddleware(hb.FacultyRepo))
		api.DELETE("/revoke", hb.RevokeFacultyTokenHandler)
	}
}

// RegisterScheduleRoutes registers the availability endpoints students hit
// when picking a slot.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.GET("/month/:eventId", hb.MonthAvailabilityHandler)
		api.GET("/day/:eventId", hb.DaySlotsHandler)
	}
}

// RegisterAppointmentRoutes registers booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("", hb.BookAppointmentHandler)
	}
}

// RegisterEventRoutes registers public event lookup endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.GET("/:id", hb.GetEventHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for schedule and event management.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthFacultyMiddleware(hb.FacultyRepo))

		adminGroup.POST("/schedules", hb.CreateScheduleHandler)
		adminGroup.GET("/schedules", hb.ListSchedulesHandler)
		adminGroup.DELETE("/schedules/:scheduleId", hb.DeleteScheduleHandler)

		adminGroup.PUT("/schedules/:scheduleId/weekly", hb.SetWeeklyRulesHandler)
		adminGroup.GET("/schedules/:scheduleId/weekly", hb.GetWeeklyRulesHandler)

		adminGroup.POST("/schedules/:scheduleId/overrides", hb.AddOverrideHandler)
		adminGroup.GET("/schedules/:scheduleId/overrides", hb.ListOverridesHandler)
		adminGroup.DELETE("/overrides/:overrideId", hb.RemoveOverrideHandler)

		adminGroup.POST("/events", hb.CreateEventHandler)
		adminGroup.PATCH("/events/:eventId", hb.UpdateEventHandler)
		adminGroup.DELETE("/events/:eventId", hb.DeleteEventHandler)

		adminGroup.GET("/appointments", hb.ListAppointmentsHandler)
		adminGroup.DELETE("/appointments/:id", hb.CancelAppointmentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo || !status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": "ok", "mongo": status.Mongo, "redis": status.Redis})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterFacultyRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
