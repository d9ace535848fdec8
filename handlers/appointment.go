package handlers

import (
	"errors"
	"net/http"
	"time"

	appointmentRepo "slotify/database/repository/appointment"
	"slotify/models"
	"slotify/services/booking"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AppointmentHandler serves booking confirmation plus the faculty-facing
// appointment list.
type AppointmentHandler struct {
	Service      booking.BookingService
	Appointments appointmentRepo.AppointmentRepository
}

func NewAppointmentHandler(svc booking.BookingService, appts appointmentRepo.AppointmentRepository) *AppointmentHandler {
	return &AppointmentHandler{Service: svc, Appointments: appts}
}

// BookAppointmentHandler confirms a slot for an attendee. Public endpoint.
func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	appt, err := h.Service.Book(c.Request.Context(), req, time.Now())
	if err != nil {
		var be *booking.BookingError
		switch {
		case errors.As(err, &be):
			c.JSON(http.StatusConflict, gin.H{"error": be.Message, "code": be.Code})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		default:
			utils.GetLogger().Error("Failed to book appointment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment confirmed",
		"appointment": appt,
	})
}

// ListAppointmentsHandler returns the authenticated faculty member's
// appointments, optionally filtered to one date.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	facultyID, ok := facultyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Faculty not authenticated"})
		return
	}

	date := c.Query("date")
	if date != "" {
		if _, err := time.Parse(utils.DateLayout, date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date parameter, expected YYYY-MM-DD"})
			return
		}
	}

	appts, err := h.Appointments.ListByFaculty(c.Request.Context(), facultyID, date)
	if err != nil {
		utils.GetLogger().Error("Failed to list appointments", zap.String("facultyId", facultyID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// CancelAppointmentHandler deletes one of the faculty member's appointments.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	facultyID, ok := facultyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Faculty not authenticated"})
		return
	}

	apptID := c.Param("id")
	if apptID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing appointment ID in path"})
		return
	}

	appt, err := h.Appointments.GetByID(c.Request.Context(), apptID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointment"})
		return
	}
	if appt.FacultyID != facultyID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Appointment belongs to another faculty member"})
		return
	}

	if err := h.Service.Cancel(c.Request.Context(), apptID); err != nil {
		utils.GetLogger().Error("Failed to cancel appointment", zap.String("appointmentId", apptID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}
