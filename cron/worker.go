package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"slotify/config"
	appointmentRepo "slotify/database/repository/appointment"
	eventRepo "slotify/database/repository/event"
	"slotify/models"
	"slotify/services/notification"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
)

const TypeReminderSend = "reminder:send"

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(
	appointments appointmentRepo.AppointmentRepository,
	events eventRepo.EventRepository,
	notifier notification.NotificationService,
) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(appointments, events, notifier))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(
	appointments appointmentRepo.AppointmentRepository,
	events eventRepo.EventRepository,
	notifier notification.NotificationService,
) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		appt, err := appointments.GetByID(ctx, p.AppointmentID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				// Appointment was cancelled; nothing to remind.
				return nil
			}
			return err
		}
		event, err := events.GetByID(ctx, appt.EventID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil
			}
			return err
		}

		log.Printf("[ReminderHandler] sending reminder for appointment %s (%s %s)", appt.ID, appt.Date, appt.StartTime)
		return notifier.SendReminder(ctx, *appt, *event)
	}
}
