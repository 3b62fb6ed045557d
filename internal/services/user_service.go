package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tropicaldog17/folio/internal/apperr"
	"github.com/tropicaldog17/folio/internal/auth"
	"github.com/tropicaldog17/folio/internal/db"
	"github.com/tropicaldog17/folio/internal/models"
)

// userService implements the UserService interface
type userService struct {
	db *db.DB
}

// NewUserService creates a new user service
func NewUserService(database *db.DB) UserService {
	return &userService{db: database}
}

// Register creates a new user with a bcrypt password hash. The plaintext
// password is never stored. Registration conflicts on either username or
// email.
func (s *userService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	var existing models.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", username, email).
		First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("user already exists: %w", apperr.ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := user.Validate(); err != nil {
		return nil, &apperr.ErrValidation{Field: "user", Message: err.Error()}
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate checks the credentials and returns the user id. Unknown
// username and wrong password produce the same unauthorized error so the
// response leaks nothing about which accounts exist.
func (s *userService) Authenticate(ctx context.Context, username, password string) (string, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperr.ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", apperr.ErrUnauthorized
	}
	return user.ID, nil
}
