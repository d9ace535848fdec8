package models

import "time"

// Faculty represents a bookable faculty member and admin account.
type Faculty struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Title        string    `bson:"title,omitempty" json:"title,omitempty"`           // e.g., "Associate Professor"
	Department   string    `bson:"department,omitempty" json:"department,omitempty"` // e.g., "Computer Science"
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// FacultyRegistration defines the payload for creating a faculty account.
type FacultyRegistration struct {
	Name       string `json:"name" binding:"required"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
}

// FacultyDTO is the public view of a faculty member returned to students.
type FacultyDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Title      string `json:"title,omitempty"`
	Department string `json:"department,omitempty"`
}

// PublicView strips account fields from a Faculty record.
func (f Faculty) PublicView() FacultyDTO {
	return FacultyDTO{
		ID:         f.ID,
		Name:       f.Name,
		Title:      f.Title,
		Department: f.Department,
	}
}
