package models

import "time"

// Appointment is a confirmed booking of one slot.
type Appointment struct {
	ID            string    `bson:"id" json:"id"`
	EventID       string    `bson:"eventId" json:"eventId"`
	FacultyID     string    `bson:"facultyId" json:"facultyId"`
	Date          string    `bson:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime     string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime       string    `bson:"endTime" json:"endTime"`
	AttendeeName  string    `bson:"attendeeName" json:"attendeeName"`
	AttendeeEmail string    `bson:"attendeeEmail" json:"attendeeEmail"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingRequest defines the payload for booking a slot.
type BookingRequest struct {
	EventID       string `json:"eventId" binding:"required"`
	Date          string `json:"date" binding:"required"`      // "YYYY-MM-DD"
	StartTime     string `json:"startTime" binding:"required"` // "HH:MM"
	AttendeeName  string `json:"attendeeName" binding:"required"`
	AttendeeEmail string `json:"attendeeEmail" binding:"required,email"`
	Notes         string `json:"notes"`
}

// ReminderPayload is the asynq task payload for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
}
