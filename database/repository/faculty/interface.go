// File: database/repository/faculty/interface.go
package facultyRepo

import (
	"context"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type FacultyRepository interface {
	Create(ctx context.Context, f *models.Faculty) error
	GetByID(ctx context.Context, id string) (*models.Faculty, error)
	GetByEmail(ctx context.Context, email string) (*models.Faculty, error)
	List(ctx context.Context) ([]models.Faculty, error)
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
	Delete(ctx context.Context, id string) error
}

type mongoFacultyRepo struct {
	coll *mongo.Collection
}

// NewMongoFacultyRepo constructs a new MongoDB FacultyRepository.
func NewMongoFacultyRepo() FacultyRepository {
	return &mongoFacultyRepo{
		coll: database.DB().Collection("faculty"),
	}
}
