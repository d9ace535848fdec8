package models

import "time"

// AppointmentEvent is a bookable meeting type: duration, booking interval,
// and an optional inclusive validity window bound to one schedule.
type AppointmentEvent struct {
	ID              string     `bson:"id" json:"id"`
	ScheduleID      string     `bson:"scheduleId" json:"scheduleId"`
	FacultyID       string     `bson:"facultyId" json:"facultyId"`
	Name            string     `bson:"name" json:"name"`
	Location        string     `bson:"location,omitempty" json:"location,omitempty"`
	Description     string     `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int        `bson:"durationMinutes" json:"durationMinutes"`
	BookingInterval int        `bson:"bookingInterval" json:"bookingInterval"` // minutes between consecutive slot starts
	StartDate       *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"` // nil = unbounded
	EndDate         *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`     // nil = unbounded
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
}

// EventInput defines the payload for creating or updating an event.
type EventInput struct {
	ScheduleID      string `json:"scheduleId" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Location        string `json:"location"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,min=5"`
	BookingInterval int    `json:"bookingInterval" binding:"required,min=5"`
	StartDate       string `json:"startDate"` // "YYYY-MM-DD", empty = unbounded
	EndDate         string `json:"endDate"`
}
