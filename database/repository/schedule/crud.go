// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
)

func (r *mongoScheduleRepo) Create(ctx context.Context, s *models.Schedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	s.CreatedAt = time.Now()

	if _, err := r.schedules.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}
	return nil
}

func (r *mongoScheduleRepo) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Schedule
	if err := r.schedules.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoScheduleRepo) ListByFaculty(ctx context.Context, facultyID string) ([]models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.schedules.Find(ctx, bson.M{"facultyId": facultyID})
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.Schedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("error decoding schedules: %w", err)
	}
	return schedules, nil
}

// Delete removes a schedule along with its weekly rules and overrides.
func (r *mongoScheduleRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.schedules.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	if _, err := r.daily.DeleteMany(ctx, bson.M{"scheduleId": id}); err != nil {
		return fmt.Errorf("failed to delete weekly rules: %w", err)
	}
	if _, err := r.overrides.DeleteMany(ctx, bson.M{"scheduleId": id}); err != nil {
		return fmt.Errorf("failed to delete overrides: %w", err)
	}
	return nil
}

// ReplaceWeeklyRules swaps the full weekly rule set of a schedule.
func (r *mongoScheduleRepo) ReplaceWeeklyRules(ctx context.Context, scheduleID string, rules []models.DailySchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.daily.DeleteMany(ctx, bson.M{"scheduleId": scheduleID}); err != nil {
		return fmt.Errorf("failed to clear weekly rules: %w", err)
	}
	if len(rules) == 0 {
		return nil
	}

	docs := make([]interface{}, len(rules))
	for i, rule := range rules {
		if rule.ID == "" {
			rule.ID = uuid.New().String()
		}
		rule.ScheduleID = scheduleID
		docs[i] = rule
	}
	if _, err := r.daily.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert weekly rules: %w", err)
	}
	return nil
}

func (r *mongoScheduleRepo) CreateOverride(ctx context.Context, o *models.ScheduleOverride) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if _, err := r.overrides.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("failed to insert override: %w", err)
	}
	return nil
}

func (r *mongoScheduleRepo) GetOverrideByID(ctx context.Context, id string) (*models.ScheduleOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o models.ScheduleOverride
	if err := r.overrides.FindOne(ctx, bson.M{"id": id}).Decode(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *mongoScheduleRepo) DeleteOverride(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.overrides.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
