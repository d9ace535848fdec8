package booking

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "slotify/database/repository/appointment"
	eventRepo "slotify/database/repository/event"
	scheduleRepo "slotify/database/repository/schedule"
	"slotify/models"
	"slotify/services/availability"
	"slotify/services/notification"
	"slotify/utils"

	"go.uber.org/zap"
)

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Events       eventRepo.EventRepository
	Schedules    scheduleRepo.ScheduleRepository
	Appointments appointmentRepo.AppointmentRepository
	Notifier     notification.NotificationService
	Reminders    ReminderScheduler
}

// MonthAvailability loads the event's schedule rows and resolves per-date
// availability for the window anchored near target. The returned time is
// the effective window start; the route layer compares its month against
// the month query parameter to issue corrective redirects.
func (s *DefaultBookingService) MonthAvailability(ctx context.Context, eventID string, target, now time.Time) (models.Availability, time.Time, error) {
	event, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, time.Time{}, err
	}
	daily, err := s.Schedules.GetWeeklyRules(ctx, event.ScheduleID)
	if err != nil {
		return nil, time.Time{}, err
	}
	overrides, err := s.Schedules.GetOverrides(ctx, event.ScheduleID)
	if err != nil {
		return nil, time.Time{}, err
	}

	avail, anchor := availability.ResolveMonth(target, *event, daily, overrides, now)
	return avail, anchor, nil
}

// DaySlots resolves one date's effective ranges and expands them into
// bookable slots using the event's duration and booking interval.
func (s *DefaultBookingService) DaySlots(ctx context.Context, eventID string, date, now time.Time) ([]models.TimeRange, []models.Slot, error) {
	event, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}
	daily, err := s.Schedules.GetWeeklyRules(ctx, event.ScheduleID)
	if err != nil {
		return nil, nil, err
	}
	overrides, err := s.Schedules.GetOverrides(ctx, event.ScheduleID)
	if err != nil {
		return nil, nil, err
	}

	ranges := availability.ResolveDay(date, *event, daily, overrides, now)
	slots := availability.ExpandSlots(ranges, event.DurationMinutes, event.BookingInterval)
	return ranges, slots, nil
}

// Book confirms a slot: the requested start must be one of the day's open
// slots and must not collide with an existing appointment for the same
// faculty member.
func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest, now time.Time) (*models.Appointment, error) {
	event, err := s.Events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse(utils.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", req.Date)
	}

	_, slots, err := s.DaySlots(ctx, req.EventID, date, now)
	if err != nil {
		return nil, err
	}
	if !containsSlot(slots, req.StartTime) {
		return nil, ErrSlotUnavailable
	}

	endTime, err := slotEndTime(req.StartTime, event.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q", req.StartTime)
	}

	overlapping, err := s.Appointments.CountOverlapping(ctx, event.FacultyID, req.Date, req.StartTime, endTime)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, ErrSlotTaken
	}

	appt := &models.Appointment{
		EventID:       event.ID,
		FacultyID:     event.FacultyID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       endTime,
		AttendeeName:  req.AttendeeName,
		AttendeeEmail: req.AttendeeEmail,
		Notes:         req.Notes,
	}
	if err := s.Appointments.Create(ctx, appt); err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, *appt); err != nil {
			logger.Warn("failed to schedule reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	if s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmation(ctx, *appt, *event); err != nil {
			logger.Warn("failed to send confirmation email", zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	return appt, nil
}

// Cancel deletes an appointment.
func (s *DefaultBookingService) Cancel(ctx context.Context, appointmentID string) error {
	return s.Appointments.Delete(ctx, appointmentID)
}

// containsSlot reports whether any expanded slot starts at the given time.
func containsSlot(slots []models.Slot, start string) bool {
	for _, slot := range slots {
		if slot.StartTime == start {
			return true
		}
	}
	return false
}

// slotEndTime adds the event duration to a "HH:MM" start.
func slotEndTime(start string, durationMinutes int) (string, error) {
	t, err := time.Parse(utils.TimeLayout, start)
	if err != nil {
		return "", err
	}
	return t.Add(time.Duration(durationMinutes) * time.Minute).Format(utils.TimeLayout), nil
}
