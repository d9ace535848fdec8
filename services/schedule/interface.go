package schedule

import (
	"context"

	"slotify/models"
)

// ScheduleService covers the faculty admin surface: schedules, recurring
// weekly rules, date overrides, and appointment events.
type ScheduleService interface {
	CreateSchedule(ctx context.Context, facultyID, name, timezone string) (*models.Schedule, error)
	ListSchedules(ctx context.Context, facultyID string) ([]models.Schedule, error)
	DeleteSchedule(ctx context.Context, facultyID, scheduleID string) error

	SetWeeklyRules(ctx context.Context, facultyID, scheduleID string, req models.SetWeeklyScheduleRequest) ([]models.DailySchedule, error)
	GetWeeklyRules(ctx context.Context, facultyID, scheduleID string) ([]models.DailySchedule, error)

	AddOverride(ctx context.Context, facultyID, scheduleID string, in models.OverrideInput) (*models.ScheduleOverride, error)
	ListOverrides(ctx context.Context, facultyID, scheduleID string) ([]models.ScheduleOverride, error)
	RemoveOverride(ctx context.Context, facultyID, overrideID string) error

	CreateEvent(ctx context.Context, facultyID string, in models.EventInput) (*models.AppointmentEvent, error)
	UpdateEvent(ctx context.Context, facultyID, eventID string, in models.EventInput) (*models.AppointmentEvent, error)
	DeleteEvent(ctx context.Context, facultyID, eventID string) error
}
