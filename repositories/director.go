package repositories

import (
	"github.com/filmvault-api/models"
	"gorm.io/gorm"
)

// DirectorRepository handles database operations for directors
type DirectorRepository struct {
	db *gorm.DB
}

// NewDirectorRepository creates a new director repository instance
func NewDirectorRepository(db *gorm.DB) *DirectorRepository {
	return &DirectorRepository{db: db}
}

// FindAll retrieves all directors ordered by id
func (r *DirectorRepository) FindAll() ([]models.Director, error) {
	var directors []models.Director
	result := r.db.Order("id ASC").Find(&directors)
	return directors, result.Error
}

// FindByID retrieves a director by its ID
func (r *DirectorRepository) FindByID(id uint) (models.Director, error) {
	var director models.Director
	result := r.db.First(&director, id)
	return director, result.Error
}

// Create inserts a new director into the database
func (r *DirectorRepository) Create(director *models.Director) error {
	return r.db.Create(director).Error
}

// UpdateFields applies a partial update to a director
func (r *DirectorRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Director{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a director from the database
func (r *DirectorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Director{}, id).Error
}

// CountMovies counts the movies that reference the director
func (r *DirectorRepository) CountMovies(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Movie{}).Where("director_id = ?", id).Count(&count).Error
	return count, err
}
