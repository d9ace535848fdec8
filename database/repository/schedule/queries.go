// File: database/repository/schedule/queries.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotify/models"
)

// GetWeeklyRules returns all recurring rules for a schedule, ordered by
// day of week then start time so split shifts keep their daily order.
func (r *mongoScheduleRepo) GetWeeklyRules(ctx context.Context, scheduleID string) ([]models.DailySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.daily.Find(ctx, bson.M{"scheduleId": scheduleID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly rules: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.DailySchedule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("error decoding weekly rules: %w", err)
	}
	return rules, nil
}

// GetOverrides returns all date overrides for a schedule, ordered by date.
func (r *mongoScheduleRepo) GetOverrides(ctx context.Context, scheduleID string) ([]models.ScheduleOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.overrides.Find(ctx, bson.M{"scheduleId": scheduleID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overrides: %w", err)
	}
	defer cursor.Close(ctx)

	var overrides []models.ScheduleOverride
	if err := cursor.All(ctx, &overrides); err != nil {
		return nil, fmt.Errorf("error decoding overrides: %w", err)
	}
	return overrides, nil
}
