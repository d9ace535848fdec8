package handlers

import (
	"errors"
	"net/http"

	"slotify/models"
	"slotify/services/schedule"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ScheduleHandler serves the faculty admin surface: schedules, weekly rules,
// overrides, and events.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// respondScheduleError maps the schedule service's sentinel errors onto
// HTTP statuses shared by every admin endpoint.
func respondScheduleError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, schedule.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Resource belongs to another faculty member"})
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, schedule.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Schedule admin operation failed", zap.String("action", action), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

func (h *ScheduleHandler) CreateScheduleHandler(c *gin.Context) {
	facultyID, ok := facultyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Faculty not authenticated"})
		return
	}

	var req struct {
		Name     string `json:"name" binding:"required"`
		Timezone string `json:"timezone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	sched, err := h.Service.CreateSchedule(c.Request.Context(), facultyID, req.Name, req.Timezone)
	if err != nil {
		respondScheduleError(c, err, "create schedule")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"schedule": sched})
}

func (h *ScheduleHandler) ListSchedulesHandler(c *gin.Context) {
	facultyID, ok := facultyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Faculty not authenticated"})
		return
	}

	schedules, err := h.Service.ListSchedules(c.Request.Context(), facultyID)
	if err != nil {
		respondScheduleError(c, err, "list schedules")
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

func (h *ScheduleHandler) DeleteScheduleHandler(c *gin.Context) {
	facultyID, ok := facultyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Faculty not authenticated"})
		return
	}

	scheduleID := c.Param("scheduleId")
	if err := h.Service.DeleteSchedule(c.Request.Context(), facultyID, scheduleID); err != nil {
		respondScheduleError(c, err, "delete schedule")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}

// SetWeeklyRulesHandler replaces a schedule's full weekly rule set.
func (h *ScheduleHandler) SetWeeklyRulesHandler(c *gin.Context) {
	facultyID, ok := facultyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Faculty not authenticated"})
		return
	}

	var req models.SetWeeklyScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	rules, err := h.Service.SetWeeklyRules(c.Request.Context(), facultyID, c.Param("scheduleId"), req)
	if err != nil {
		respondScheduleError(c, err, "set weekly rules")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

func (h *ScheduleHandler) GetWeeklyRulesHandler(c *gin.Context) {
	facultyID, ok := facultyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Faculty not authenticated"})
		return
	}

	rules, err := h.Service.GetWeeklyRules(c.Request.Context(), facultyID, c.Param("scheduleId"))
	if err != nil {
		respondScheduleError(c, err, "fetch weekly rules")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

func (h *ScheduleHandler) AddOverrideHandler(c *gin.Context) {
	facultyID, ok := facultyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Faculty not authenticated"})
		return
	}

	var in models.OverrideInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	o, err := h.Service.AddOverride(c.Request.Context(), facultyID, c.Param("scheduleId"), in)
	if err != nil {
		respondScheduleError(c, err, "add override")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"override": o})
}

func (h *ScheduleHandler) ListOverridesHandler(c *gin.Context) {
	facultyID, ok := facultyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Faculty not authenticated"})
		return
	}

	overrides, err := h.Service.ListOverrides(c.Request.Context(), facultyID, c.Param("scheduleId"))
	if err != nil {
		respondScheduleError(c, err, "list overrides")
		return
	}
	c.JSON(http.StatusOK, gin.H{"overrides": overrides})
}

func (h *ScheduleHandler) RemoveOverrideHandler(c *gin.Context) {
	facultyID, ok := facultyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Faculty not authenticated"})
		return
	}

	if err := h.Service.RemoveOverride(c.Request.Context(), facultyID, c.Param("overrideId")); err != nil {
		respondScheduleError(c, err, "remove override")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Override removed"})
}

func (h *ScheduleHandler) CreateEventHandler(c *gin.Context) {
	facultyID, ok := facultyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Faculty not authenticated"})
		return
	}

	var in models.EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	event, err := h.Service.CreateEvent(c.Request.Context(), facultyID, in)
	if err != nil {
		respondScheduleError(c, err, "create event")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": event})
}

func (h *ScheduleHandler) UpdateEventHandler(c *gin.Context) {
	facultyID, ok := facultyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Faculty not authenticated"})
		return
	}

	var in models.EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	event, err := h.Service.UpdateEvent(c.Request.Context(), facultyID, c.Param("eventId"), in)
	if err != nil {
		respondScheduleError(c, err, "update event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}

func (h *ScheduleHandler) DeleteEventHandler(c *gin.Context) {
	facultyID, ok := facultyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Faculty not authenticated"})
		return
	}

	if err := h.Service.DeleteEvent(c.Request.Context(), facultyID, c.Param("eventId")); err != nil {
		respondScheduleError(c, err, "delete event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
