package handlers

import (
	"errors"
	"net/http"

	eventRepo "slotify/database/repository/event"
	"slotify/models"
	"slotify/services/faculty"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// FacultyHandler serves faculty account and public directory endpoints.
type FacultyHandler struct {
	Service faculty.FacultyService
	Events  eventRepo.EventRepository
}

func NewFacultyHandler(svc faculty.FacultyService, events eventRepo.EventRepository) *FacultyHandler {
	return &FacultyHandler{Service: svc, Events: events}
}

func (h *FacultyHandler) RegisterFacultyHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var reg models.FacultyRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	f, token, err := h.Service.Register(c.Request.Context(), reg)
	if err != nil {
		if errors.Is(err, faculty.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		logger.Error("Failed to register faculty", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register faculty"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"faculty": f,
		"token":   token,
	})
}

func (h *FacultyHandler) AuthenticateFacultyHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	f, token, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, faculty.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		utils.GetLogger().Error("Faculty authentication failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"faculty": f,
		"token":   token,
	})
}

func (h *FacultyHandler) RevokeFacultyTokenHandler(c *gin.Context) {
	facultyID, ok := facultyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Faculty not authenticated"})
		return
	}

	if err := h.Service.RevokeToken(c.Request.Context(), facultyID); err != nil {
		utils.GetLogger().Error("Failed to revoke token", zap.String("facultyId", facultyID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}

// ListFacultyHandler returns the public faculty directory.
func (h *FacultyHandler) ListFacultyHandler(c *gin.Context) {
	dtos, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list faculty", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list faculty"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"faculty": dtos})
}

// ListFacultyEventsHandler returns the bookable events of one faculty member.
func (h *FacultyHandler) ListFacultyEventsHandler(c *gin.Context) {
	facultyID := c.Param("id")
	if facultyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing faculty ID in path"})
		return
	}

	if _, err := h.Service.GetByID(c.Request.Context(), facultyID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Faculty member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch faculty member"})
		return
	}

	events, err := h.Events.ListByFaculty(c.Request.Context(), facultyID)
	if err != nil {
		utils.GetLogger().Error("Failed to list events", zap.String("facultyId", facultyID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GetEventHandler returns one event by ID.
func (h *FacultyHandler) GetEventHandler(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing event ID in path"})
		return
	}

	event, err := h.Events.GetByID(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}
