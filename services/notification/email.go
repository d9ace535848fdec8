package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"slotify/config"
	"slotify/models"
)

// EmailNotificationService sends plain-text email via unauthenticated SMTP
// (Mailpit-compatible in development, a relay in production).
type EmailNotificationService struct {
	addr string
	from string
}

// NewEmailNotificationService builds a sender from the loaded config.
func NewEmailNotificationService() *EmailNotificationService {
	from := strings.TrimSpace(config.AppConfig.MailFrom)
	if from == "" {
		from = "no-reply@slotify.local"
	}
	return &EmailNotificationService{
		addr: fmt.Sprintf("%s:%s", strings.TrimSpace(config.AppConfig.SMTPHost), strings.TrimSpace(config.AppConfig.SMTPPort)),
		from: from,
	}
}

func (s *EmailNotificationService) SendBookingConfirmation(ctx context.Context, appt models.Appointment, event models.AppointmentEvent) error {
	subject := fmt.Sprintf("Appointment confirmed: %s", event.Name)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour appointment %q is confirmed for %s at %s.\nLocation: %s\n\nSee you then!",
		appt.AttendeeName, event.Name, appt.Date, appt.StartTime, orTBD(event.Location),
	)
	return s.send(appt.AttendeeEmail, subject, body)
}

func (s *EmailNotificationService) SendReminder(ctx context.Context, appt models.Appointment, event models.AppointmentEvent) error {
	subject := fmt.Sprintf("Reminder: %s on %s", event.Name, appt.Date)
	body := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder for your appointment %q on %s at %s.\nLocation: %s",
		appt.AttendeeName, event.Name, appt.Date, appt.StartTime, orTBD(event.Location),
	)
	return s.send(appt.AttendeeEmail, subject, body)
}

func (s *EmailNotificationService) send(to, subject, body string) error {
	msg := buildMessage(s.from, to, subject, body)
	return smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from, to, subject, body,
	)
}

func orTBD(location string) string {
	if location == "" {
		return "TBD"
	}
	return location
}
