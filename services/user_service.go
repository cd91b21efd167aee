package services

import (
	"errors"
	"fmt"

	"github.com/filmvault-api/models"
	"github.com/filmvault-api/repositories"
	"github.com/filmvault-api/utils"
	"gorm.io/gorm"
)

// UserService exposes the admin-only user reads. Accounts are created
// through registration and never hard-deleted.
type UserService struct {
	users *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns all users
func (s *UserService) List() ([]models.User, error) {
	return s.users.FindAll()
}

// Get returns a user by id
func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, utils.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}
