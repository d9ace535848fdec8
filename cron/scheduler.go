package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slotify/config"
	"slotify/models"
	"slotify/utils"

	"github.com/hibiken/asynq"
)

// reminderLead is how far ahead of the appointment the reminder fires.
const reminderLead = 24 * time.Hour

// AsynqReminderScheduler enqueues reminder tasks on the shared Redis queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewAsynqReminderScheduler builds a scheduler from the loaded config.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		}),
	}
}

// ScheduleReminder enqueues a reminder 24 hours before the appointment, or
// immediately when the appointment is nearer than that.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, appt models.Appointment) error {
	payload, err := json.Marshal(models.ReminderPayload{AppointmentID: appt.ID})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	startsAt, err := time.ParseInLocation(utils.DateLayout+" "+utils.TimeLayout, appt.Date+" "+appt.StartTime, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse appointment time: %w", err)
	}

	fireAt := startsAt.Add(-reminderLead)
	task := asynq.NewTask(TypeReminderSend, payload)
	if fireAt.Before(time.Now()) {
		_, err = s.client.EnqueueContext(ctx, task)
	} else {
		_, err = s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt))
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying queue client.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
