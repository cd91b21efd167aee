package services

import (
	"errors"
	"fmt"

	"github.com/filmvault-api/dto"
	"github.com/filmvault-api/models"
	"github.com/filmvault-api/repositories"
	"github.com/filmvault-api/utils"
	"gorm.io/gorm"
)

// GenreService implements genre CRUD.
type GenreService struct {
	genres *repositories.GenreRepository
}

// NewGenreService creates a new genre service instance
func NewGenreService(genres *repositories.GenreRepository) *GenreService {
	return &GenreService{genres: genres}
}

// List returns all genres
func (s *GenreService) List() ([]models.Genre, error) {
	return s.genres.FindAll()
}

// Get returns a genre by id
func (s *GenreService) Get(id uint) (*models.Genre, error) {
	genre, err := s.genres.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("genre %d: %w", id, utils.ErrNotFound)
		}
		return nil, err
	}
	return &genre, nil
}

// Create inserts a new genre; names are unique.
func (s *GenreService) Create(req dto.CreateGenreRequest) (*models.Genre, error) {
	genre := models.Genre{Name: req.Name}
	if err := s.genres.Create(&genre); err != nil {
		if utils.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("genre %q: %w", req.Name, utils.ErrAlreadyExists)
		}
		return nil, err
	}
	return &genre, nil
}

// Update renames a genre
func (s *GenreService) Update(id uint, req dto.UpdateGenreRequest) (*models.Genre, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	if req.Name != nil {
		fields := map[string]interface{}{
			"name":    *req.Name,
			"version": gorm.Expr("version + 1"),
		}
		if err := s.genres.UpdateFields(id, fields); err != nil {
			if utils.IsDuplicateKeyError(err) {
				return nil, fmt.Errorf("genre %q: %w", *req.Name, utils.ErrAlreadyExists)
			}
			return nil, err
		}
	}

	return s.Get(id)
}

// Delete removes a genre, severing its movie associations but leaving
// the movies themselves untouched.
func (s *GenreService) Delete(id uint) (uint, error) {
	if _, err := s.Get(id); err != nil {
		return 0, err
	}
	if err := s.genres.Delete(id); err != nil {
		return 0, err
	}
	return id, nil
}
