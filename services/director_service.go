package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/filmvault-api/dto"
	"github.com/filmvault-api/models"
	"github.com/filmvault-api/repositories"
	"github.com/filmvault-api/utils"
	"gorm.io/gorm"
)

const dobLayout = "2006-01-02"

// DirectorService implements director CRUD.
type DirectorService struct {
	directors *repositories.DirectorRepository
}

// NewDirectorService creates a new director service instance
func NewDirectorService(directors *repositories.DirectorRepository) *DirectorService {
	return &DirectorService{directors: directors}
}

// List returns all directors
func (s *DirectorService) List() ([]models.Director, error) {
	return s.directors.FindAll()
}

// Get returns a director by id
func (s *DirectorService) Get(id uint) (*models.Director, error) {
	director, err := s.directors.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("director %d: %w", id, utils.ErrNotFound)
		}
		return nil, err
	}
	return &director, nil
}

// Create inserts a new director
func (s *DirectorService) Create(req dto.CreateDirectorRequest) (*models.Director, error) {
	dob, err := time.Parse(dobLayout, req.DOB)
	if err != nil {
		return nil, fmt.Errorf("invalid dob: %w", utils.ErrMalformedRequest)
	}

	director := models.Director{
		Name:        req.Name,
		DOB:         dob,
		Nationality: req.Nationality,
	}
	if err := s.directors.Create(&director); err != nil {
		return nil, err
	}
	return &director, nil
}

// Update applies a partial update to a director
func (s *DirectorService) Update(id uint, req dto.UpdateDirectorRequest) (*models.Director, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.DOB != nil {
		dob, err := time.Parse(dobLayout, *req.DOB)
		if err != nil {
			return nil, fmt.Errorf("invalid dob: %w", utils.ErrMalformedRequest)
		}
		fields["dob"] = dob
	}
	if req.Nationality != nil {
		fields["nationality"] = *req.Nationality
	}

	if len(fields) > 0 {
		fields["version"] = gorm.Expr("version + 1")
		if err := s.directors.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}

	return s.Get(id)
}

// Delete removes a director. Directors still referenced by movies are
// not deletable, since movie rows hold a mandatory director reference.
func (s *DirectorService) Delete(id uint) (uint, error) {
	if _, err := s.Get(id); err != nil {
		return 0, err
	}

	count, err := s.directors.CountMovies(id)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, fmt.Errorf("director %d is referenced by %d movies: %w", id, count, utils.ErrConflict)
	}

	if err := s.directors.Delete(id); err != nil {
		return 0, err
	}
	return id, nil
}
