package booking

import (
	"context"
	"time"

	"slotify/models"
)

// BookingService is the student-facing surface: month availability, day
// slot expansion, and booking confirmation.
type BookingService interface {
	MonthAvailability(ctx context.Context, eventID string, target, now time.Time) (models.Availability, time.Time, error)
	DaySlots(ctx context.Context, eventID string, date, now time.Time) ([]models.TimeRange, []models.Slot, error)
	Book(ctx context.Context, req models.BookingRequest, now time.Time) (*models.Appointment, error)
	Cancel(ctx context.Context, appointmentID string) error
}

// ReminderScheduler enqueues a reminder for a confirmed appointment.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, appt models.Appointment) error
}
