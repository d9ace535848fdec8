package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"slotify/services/booking"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the student-facing availability endpoints.
type AvailabilityHandler struct {
	Service booking.BookingService
}

func NewAvailabilityHandler(svc booking.BookingService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// monthParamRe accepts "YYYY-MM" with a valid month number.
var monthParamRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// parseMonthParam interprets the month query parameter. Anything that does
// not match "YYYY-MM" falls back silently to the current month. The second
// return reports whether the client supplied a well-formed value.
func parseMonthParam(raw string, now time.Time) (time.Time, bool) {
	if !monthParamRe.MatchString(raw) {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), false
	}
	t, err := time.ParseInLocation(utils.MonthLayout, raw, now.Location())
	if err != nil {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), false
	}
	return t, true
}

// MonthAvailabilityHandler resolves availability for the month window of an
// event. When the supplied month disagrees with the effective window start,
// it redirects to the corrected month instead of serving stale dates.
func (h *AvailabilityHandler) MonthAvailabilityHandler(c *gin.Context) {
	eventID := c.Param("eventId")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing event ID in path"})
		return
	}

	now := time.Now()
	rawMonth := c.Query("month")
	target, supplied := parseMonthParam(rawMonth, now)

	avail, anchor, err := h.Service.MonthAvailability(c.Request.Context(), eventID, target, now)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		utils.GetLogger().Error("Failed to resolve month availability", zap.String("eventId", eventID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve availability"})
		return
	}

	anchorMonth := anchor.Format(utils.MonthLayout)
	if supplied && rawMonth != anchorMonth {
		c.Redirect(http.StatusFound, fmt.Sprintf("%s?month=%s", c.Request.URL.Path, anchorMonth))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"availability": avail,
		"month":        anchorMonth,
	})
}

// DaySlotsHandler expands one date's open ranges into bookable slots.
func (h *AvailabilityHandler) DaySlotsHandler(c *gin.Context) {
	eventID := c.Param("eventId")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing event ID in path"})
		return
	}

	rawDate := c.Query("date")
	date, err := time.Parse(utils.DateLayout, rawDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid date parameter, expected YYYY-MM-DD"})
		return
	}

	ranges, slots, err := h.Service.DaySlots(c.Request.Context(), eventID, date, time.Now())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		utils.GetLogger().Error("Failed to resolve day slots", zap.String("eventId", eventID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve slots"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":   rawDate,
		"ranges": ranges,
		"slots":  slots,
	})
}
