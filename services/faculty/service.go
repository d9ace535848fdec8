package faculty

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	facultyRepo "slotify/database/repository/faculty"
	"slotify/models"
	"slotify/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// DefaultFacultyService is the production FacultyService.
type DefaultFacultyService struct {
	Repo facultyRepo.FacultyRepository
}

// Register creates a faculty account and returns it with a fresh session token.
func (s *DefaultFacultyService) Register(ctx context.Context, reg models.FacultyRegistration) (*models.Faculty, string, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Email))

	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	} else if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	f := &models.Faculty{
		Name:         reg.Name,
		Title:        reg.Title,
		Department:   reg.Department,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, f); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(ctx, f)
	if err != nil {
		return nil, "", err
	}
	return f, token, nil
}

// Authenticate verifies credentials and returns the account with a fresh token.
func (s *DefaultFacultyService) Authenticate(ctx context.Context, email, password string) (*models.Faculty, string, error) {
	f, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to fetch faculty: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(f.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, f)
	if err != nil {
		return nil, "", err
	}
	return f, token, nil
}

// issueToken signs a JWT, persists its hash, and primes the auth cache so
// the middleware can verify without a database hit.
func (s *DefaultFacultyService) issueToken(ctx context.Context, f *models.Faculty) (string, error) {
	token, err := utils.GenerateToken(f.ID, f.Email, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	hash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(ctx, f.ID, hash); err != nil {
		return "", err
	}
	f.TokenHash = hash

	cache := utils.GetAuthCacheClient()
	if err := cache.Set(ctx, utils.AuthCachePrefix+f.ID, hash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to prime auth cache for %s: %v", f.ID, err)
	}
	return token, nil
}

// RevokeToken invalidates the current session token.
func (s *DefaultFacultyService) RevokeToken(ctx context.Context, facultyID string) error {
	if err := s.Repo.UpdateTokenHash(ctx, facultyID, ""); err != nil {
		return err
	}
	return utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+facultyID).Err()
}

func (s *DefaultFacultyService) GetByID(ctx context.Context, id string) (*models.Faculty, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns the public directory of faculty members.
func (s *DefaultFacultyService) List(ctx context.Context) ([]models.FacultyDTO, error) {
	faculty, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]models.FacultyDTO, len(faculty))
	for i, f := range faculty {
		dtos[i] = f.PublicView()
	}
	return dtos, nil
}
