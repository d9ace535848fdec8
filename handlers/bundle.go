package handlers

import (
	facultyRepoPkg "slotify/database/repository/faculty"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	FacultyRepo facultyRepoPkg.FacultyRepository

	// Faculty account endpoints
	RegisterFacultyHandler     gin.HandlerFunc
	AuthenticateFacultyHandler gin.HandlerFunc
	RevokeFacultyTokenHandler  gin.HandlerFunc

	// Public directory endpoints
	ListFacultyHandler       gin.HandlerFunc
	ListFacultyEventsHandler gin.HandlerFunc
	GetEventHandler          gin.HandlerFunc

	// Availability endpoints
	MonthAvailabilityHandler gin.HandlerFunc
	DaySlotsHandler          gin.HandlerFunc

	// Booking endpoints
	BookAppointmentHandler   gin.HandlerFunc
	ListAppointmentsHandler  gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc

	// Schedule admin endpoints
	CreateScheduleHandler gin.HandlerFunc
	ListSchedulesHandler  gin.HandlerFunc
	DeleteScheduleHandler gin.HandlerFunc
	SetWeeklyRulesHandler gin.HandlerFunc
	GetWeeklyRulesHandler gin.HandlerFunc
	AddOverrideHandler    gin.HandlerFunc
	ListOverridesHandler  gin.HandlerFunc
	RemoveOverrideHandler gin.HandlerFunc

	// Event admin endpoints
	CreateEventHandler gin.HandlerFunc
	UpdateEventHandler gin.HandlerFunc
	DeleteEventHandler gin.HandlerFunc
}

// facultyIDFromContext retrieves the authenticated faculty ID set by
// JWTAuthFacultyMiddleware.
func facultyIDFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("facultyID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
