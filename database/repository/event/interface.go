// File: database/repository/event/interface.go
package eventRepo

import (
	"context"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type EventRepository interface {
	Create(ctx context.Context, e *models.AppointmentEvent) error
	GetByID(ctx context.Context, id string) (*models.AppointmentEvent, error)
	ListByFaculty(ctx context.Context, facultyID string) ([]models.AppointmentEvent, error)
	ListBySchedule(ctx context.Context, scheduleID string) ([]models.AppointmentEvent, error)
	Update(ctx context.Context, e *models.AppointmentEvent) error
	Delete(ctx context.Context, id string) error
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo constructs a new MongoDB EventRepository.
func NewMongoEventRepo() EventRepository {
	return &mongoEventRepo{
		coll: database.DB().Collection("events"),
	}
}
