package repositories

import (
	"github.com/filmvault-api/models"
	"gorm.io/gorm"
)

// GenreRepository handles database operations for genres
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a new genre repository instance
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// FindAll retrieves all genres ordered by id
func (r *GenreRepository) FindAll() ([]models.Genre, error) {
	var genres []models.Genre
	result := r.db.Order("id ASC").Find(&genres)
	return genres, result.Error
}

// FindByID retrieves a genre by its ID
func (r *GenreRepository) FindByID(id uint) (models.Genre, error) {
	var genre models.Genre
	result := r.db.First(&genre, id)
	return genre, result.Error
}

// FindByIDs retrieves every genre whose id is in ids. Callers compare
// the result length against the requested set to enforce all-or-nothing
// resolution.
func (r *GenreRepository) FindByIDs(ids []uint) ([]models.Genre, error) {
	var genres []models.Genre
	result := r.db.Where("id IN ?", ids).Order("id ASC").Find(&genres)
	return genres, result.Error
}

// Create inserts a new genre into the database
func (r *GenreRepository) Create(genre *models.Genre) error {
	return r.db.Create(genre).Error
}

// UpdateFields applies a partial update to a genre
func (r *GenreRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Genre{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a genre after severing its movie associations
func (r *GenreRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		genre := models.Genre{ID: id}
		if err := tx.Model(&genre).Association("Movies").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Genre{}, id).Error
	})
}
