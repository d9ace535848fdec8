package faculty

import (
	"context"

	"slotify/models"
)

// FacultyService manages faculty accounts and authentication.
type FacultyService interface {
	Register(ctx context.Context, reg models.FacultyRegistration) (*models.Faculty, string, error)
	Authenticate(ctx context.Context, email, password string) (*models.Faculty, string, error)
	RevokeToken(ctx context.Context, facultyID string) error
	GetByID(ctx context.Context, id string) (*models.Faculty, error)
	List(ctx context.Context) ([]models.FacultyDTO, error)
}
