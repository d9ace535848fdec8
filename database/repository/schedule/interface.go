// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository persists schedules together with their weekly rules
// and date overrides. Rules and overrides live in their own collections,
// scoped by scheduleId.
type ScheduleRepository interface {
	Create(ctx context.Context, s *models.Schedule) error
	GetByID(ctx context.Context, id string) (*models.Schedule, error)
	ListByFaculty(ctx context.Context, facultyID string) ([]models.Schedule, error)
	Delete(ctx context.Context, id string) error

	ReplaceWeeklyRules(ctx context.Context, scheduleID string, rules []models.DailySchedule) error
	GetWeeklyRules(ctx context.Context, scheduleID string) ([]models.DailySchedule, error)

	CreateOverride(ctx context.Context, o *models.ScheduleOverride) error
	GetOverrides(ctx context.Context, scheduleID string) ([]models.ScheduleOverride, error)
	GetOverrideByID(ctx context.Context, id string) (*models.ScheduleOverride, error)
	DeleteOverride(ctx context.Context, id string) error
}

type mongoScheduleRepo struct {
	schedules *mongo.Collection
	daily     *mongo.Collection
	overrides *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.DB()
	return &mongoScheduleRepo{
		schedules: db.Collection("schedules"),
		daily:     db.Collection("daily_schedules"),
		overrides: db.Collection("schedule_overrides"),
	}
}
