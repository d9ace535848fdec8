// File: database/repository/event/crud.go
package eventRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
)

func (r *mongoEventRepo) Create(ctx context.Context, e *models.AppointmentEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (r *mongoEventRepo) GetByID(ctx context.Context, id string) (*models.AppointmentEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var e models.AppointmentEvent
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *mongoEventRepo) ListByFaculty(ctx context.Context, facultyID string) ([]models.AppointmentEvent, error) {
	return r.list(ctx, bson.M{"facultyId": facultyID})
}

func (r *mongoEventRepo) ListBySchedule(ctx context.Context, scheduleID string) ([]models.AppointmentEvent, error) {
	return r.list(ctx, bson.M{"scheduleId": scheduleID})
}

func (r *mongoEventRepo) list(ctx context.Context, filter bson.M) ([]models.AppointmentEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.AppointmentEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("error decoding events: %w", err)
	}
	return events, nil
}

func (r *mongoEventRepo) Update(ctx context.Context, e *models.AppointmentEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": e.ID}, e)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoEventRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
