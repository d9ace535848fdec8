package notification

import (
	"context"

	"slotify/models"
)

// NotificationService delivers booking emails to attendees.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, appt models.Appointment, event models.AppointmentEvent) error
	SendReminder(ctx context.Context, appt models.Appointment, event models.AppointmentEvent) error
}
