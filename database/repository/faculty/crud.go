// File: database/repository/faculty/crud.go
package facultyRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
)

func (r *mongoFacultyRepo) Create(ctx context.Context, f *models.Faculty) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	f.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, f); err != nil {
		return fmt.Errorf("failed to insert faculty: %w", err)
	}
	return nil
}

func (r *mongoFacultyRepo) GetByID(ctx context.Context, id string) (*models.Faculty, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var f models.Faculty
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *mongoFacultyRepo) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var f models.Faculty
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *mongoFacultyRepo) List(ctx context.Context) ([]models.Faculty, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list faculty: %w", err)
	}
	defer cursor.Close(ctx)

	var faculty []models.Faculty
	if err := cursor.All(ctx, &faculty); err != nil {
		return nil, fmt.Errorf("error decoding faculty: %w", err)
	}
	return faculty, nil
}

func (r *mongoFacultyRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update token hash: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoFacultyRepo) Delete(ctx context.Context, id string) error {
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
