package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	eventRepo "slotify/database/repository/event"
	scheduleRepo "slotify/database/repository/schedule"
	"slotify/models"
	"slotify/utils"
)

var (
	ErrNotOwner         = errors.New("schedule does not belong to this faculty member")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
)

// DefaultScheduleService is the production ScheduleService.
type DefaultScheduleService struct {
	Repo   scheduleRepo.ScheduleRepository
	Events eventRepo.EventRepository
}

func (s *DefaultScheduleService) CreateSchedule(ctx context.Context, facultyID, name, timezone string) (*models.Schedule, error) {
	sched := &models.Schedule{
		FacultyID: facultyID,
		Name:      name,
		Timezone:  timezone,
	}
	if err := s.Repo.Create(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *DefaultScheduleService) ListSchedules(ctx context.Context, facultyID string) ([]models.Schedule, error) {
	return s.Repo.ListByFaculty(ctx, facultyID)
}

// DeleteSchedule removes a schedule, its rules and overrides, and any
// events bound to it.
func (s *DefaultScheduleService) DeleteSchedule(ctx context.Context, facultyID, scheduleID string) error {
	if _, err := s.ownedSchedule(ctx, facultyID, scheduleID); err != nil {
		return err
	}
	events, err := s.Events.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return err
	}
	for _, e := range events {
		if err := s.Events.Delete(ctx, e.ID); err != nil {
			return fmt.Errorf("failed to delete event %s: %w", e.ID, err)
		}
	}
	return s.Repo.Delete(ctx, scheduleID)
}

// SetWeeklyRules replaces the full weekly rule set of a schedule.
func (s *DefaultScheduleService) SetWeeklyRules(ctx context.Context, facultyID, scheduleID string, req models.SetWeeklyScheduleRequest) ([]models.DailySchedule, error) {
	if _, err := s.ownedSchedule(ctx, facultyID, scheduleID); err != nil {
		return nil, err
	}

	rules := make([]models.DailySchedule, len(req.Rules))
	for i, in := range req.Rules {
		start, err := time.Parse(utils.TimeLayout, in.StartTime)
		if err != nil {
			return nil, fmt.Errorf("rule %d: invalid start time %q", i+1, in.StartTime)
		}
		end, err := time.Parse(utils.TimeLayout, in.EndTime)
		if err != nil {
			return nil, fmt.Errorf("rule %d: invalid end time %q", i+1, in.EndTime)
		}
		if !start.Before(end) {
			return nil, fmt.Errorf("rule %d: %w", i+1, ErrInvalidTimeRange)
		}
		rules[i] = models.DailySchedule{
			ScheduleID: scheduleID,
			DayOfWeek:  in.DayOfWeek,
			StartTime:  start,
			EndTime:    end,
		}
	}

	if err := s.Repo.ReplaceWeeklyRules(ctx, scheduleID, rules); err != nil {
		return nil, err
	}
	return s.Repo.GetWeeklyRules(ctx, scheduleID)
}

func (s *DefaultScheduleService) GetWeeklyRules(ctx context.Context, facultyID, scheduleID string) ([]models.DailySchedule, error) {
	if _, err := s.ownedSchedule(ctx, facultyID, scheduleID); err != nil {
		return nil, err
	}
	return s.Repo.GetWeeklyRules(ctx, scheduleID)
}

// AddOverride records a date exception. A non-blocked override must carry a
// complete time range; the resolver tolerates legacy rows with missing
// times, but new ones are rejected here.
func (s *DefaultScheduleService) AddOverride(ctx context.Context, facultyID, scheduleID string, in models.OverrideInput) (*models.ScheduleOverride, error) {
	if _, err := s.ownedSchedule(ctx, facultyID, scheduleID); err != nil {
		return nil, err
	}

	date, err := time.Parse(utils.DateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", in.Date)
	}

	o := &models.ScheduleOverride{
		ScheduleID: scheduleID,
		Date:       date,
		Blocked:    in.Blocked,
	}
	if !in.Blocked {
		start, err := time.Parse(utils.TimeLayout, in.StartTime)
		if err != nil {
			return nil, fmt.Errorf("invalid start time %q", in.StartTime)
		}
		end, err := time.Parse(utils.TimeLayout, in.EndTime)
		if err != nil {
			return nil, fmt.Errorf("invalid end time %q", in.EndTime)
		}
		if !start.Before(end) {
			return nil, ErrInvalidTimeRange
		}
		o.StartTime = &start
		o.EndTime = &end
	}

	if err := s.Repo.CreateOverride(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *DefaultScheduleService) ListOverrides(ctx context.Context, facultyID, scheduleID string) ([]models.ScheduleOverride, error) {
	if _, err := s.ownedSchedule(ctx, facultyID, scheduleID); err != nil {
		return nil, err
	}
	return s.Repo.GetOverrides(ctx, scheduleID)
}

func (s *DefaultScheduleService) RemoveOverride(ctx context.Context, facultyID, overrideID string) error {
	o, err := s.Repo.GetOverrideByID(ctx, overrideID)
	if err != nil {
		return err
	}
	if _, err := s.ownedSchedule(ctx, facultyID, o.ScheduleID); err != nil {
		return err
	}
	return s.Repo.DeleteOverride(ctx, overrideID)
}

func (s *DefaultScheduleService) CreateEvent(ctx context.Context, facultyID string, in models.EventInput) (*models.AppointmentEvent, error) {
	if _, err := s.ownedSchedule(ctx, facultyID, in.ScheduleID); err != nil {
		return nil, err
	}
	e, err := eventFromInput(facultyID, in)
	if err != nil {
		return nil, err
	}
	if err := s.Events.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *DefaultScheduleService) UpdateEvent(ctx context.Context, facultyID, eventID string, in models.EventInput) (*models.AppointmentEvent, error) {
	existing, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if existing.FacultyID != facultyID {
		return nil, ErrNotOwner
	}
	if _, err := s.ownedSchedule(ctx, facultyID, in.ScheduleID); err != nil {
		return nil, err
	}

	e, err := eventFromInput(facultyID, in)
	if err != nil {
		return nil, err
	}
	e.ID = existing.ID
	e.CreatedAt = existing.CreatedAt
	if err := s.Events.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *DefaultScheduleService) DeleteEvent(ctx context.Context, facultyID, eventID string) error {
	existing, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if existing.FacultyID != facultyID {
		return ErrNotOwner
	}
	return s.Events.Delete(ctx, eventID)
}

func (s *DefaultScheduleService) ownedSchedule(ctx context.Context, facultyID, scheduleID string) (*models.Schedule, error) {
	sched, err := s.Repo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if sched.FacultyID != facultyID {
		return nil, ErrNotOwner
	}
	return sched, nil
}

func eventFromInput(facultyID string, in models.EventInput) (*models.AppointmentEvent, error) {
	e := &models.AppointmentEvent{
		ScheduleID:      in.ScheduleID,
		FacultyID:       facultyID,
		Name:            in.Name,
		Location:        in.Location,
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		BookingInterval: in.BookingInterval,
	}
	if in.StartDate != "" {
		start, err := time.Parse(utils.DateLayout, in.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q", in.StartDate)
		}
		e.StartDate = &start
	}
	if in.EndDate != "" {
		end, err := time.Parse(utils.DateLayout, in.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q", in.EndDate)
		}
		e.EndDate = &end
	}
	if e.StartDate != nil && e.EndDate != nil && e.EndDate.Before(*e.StartDate) {
		return nil, errors.New("end date must not precede start date")
	}
	return e, nil
}
