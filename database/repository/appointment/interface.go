// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByFaculty(ctx context.Context, facultyID, date string) ([]models.Appointment, error)
	CountOverlapping(ctx context.Context, facultyID, date, start, end string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
