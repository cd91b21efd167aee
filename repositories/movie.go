package repositories

import (
	"github.com/filmvault-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieRepository handles database operations for movies and their
// owned detail rows.
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository instance
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle, so
// services can compose repository calls inside one transaction.
func (r *MovieRepository) WithTx(tx *gorm.DB) *MovieRepository {
	return &MovieRepository{db: tx}
}

// FindWithRelations retrieves a movie with its director, detail and
// genre set populated.
func (r *MovieRepository) FindWithRelations(id uint) (models.Movie, error) {
	var movie models.Movie
	result := r.db.
		Preload("Director").
		Preload("Detail").
		Preload("Genres").
		First(&movie, id)
	return movie, result.Error
}

// FindPage retrieves one page of movies keyed by the last-seen id, with
// an optional substring title filter. Rows come back in ascending id
// order so the cursor stays stable under concurrent writes.
func (r *MovieRepository) FindPage(title string, cursor uint, take int) ([]models.Movie, error) {
	q := r.db.
		Preload("Director").
		Preload("Detail").
		Preload("Genres")
	if title != "" {
		q = q.Where("title LIKE ?", "%"+title+"%")
	}
	if cursor > 0 {
		q = q.Where("id > ?", cursor)
	}

	var movies []models.Movie
	result := q.Order("id ASC").Limit(take).Find(&movies)
	return movies, result.Error
}

// CreateDetail inserts a movie detail row
func (r *MovieRepository) CreateDetail(detail *models.MovieDetail) error {
	return r.db.Create(detail).Error
}

// Create inserts a movie row. Associations are written separately, so
// only the scalar columns and foreign keys go in here.
func (r *MovieRepository) Create(movie *models.Movie) error {
	return r.db.Omit(clause.Associations).Create(movie).Error
}

// UpdateFields applies a partial update to a movie's scalar columns
func (r *MovieRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Movie{}).Where("id = ?", id).Updates(fields).Error
}

// UpdateDetailText updates the owned detail row in place, preserving
// its identity.
func (r *MovieRepository) UpdateDetailText(detailID uint, text string) error {
	return r.db.Model(&models.MovieDetail{}).Where("id = ?", detailID).
		Update("detail", text).Error
}

// AppendGenres adds association rows for the given genres
func (r *MovieRepository) AppendGenres(movie *models.Movie, genres []models.Genre) error {
	if len(genres) == 0 {
		return nil
	}
	return r.db.Model(movie).Association("Genres").Append(&genres)
}

// RemoveGenres deletes association rows for the given genres, leaving
// the genres themselves untouched.
func (r *MovieRepository) RemoveGenres(movie *models.Movie, genres []models.Genre) error {
	if len(genres) == 0 {
		return nil
	}
	return r.db.Model(movie).Association("Genres").Delete(&genres)
}

// ClearGenres removes every association row of the movie
func (r *MovieRepository) ClearGenres(movie *models.Movie) error {
	return r.db.Model(movie).Association("Genres").Clear()
}

// Delete removes a movie row
func (r *MovieRepository) Delete(id uint) error {
	return r.db.Delete(&models.Movie{}, id).Error
}

// DeleteDetail removes a movie detail row
func (r *MovieRepository) DeleteDetail(id uint) error {
	return r.db.Delete(&models.MovieDetail{}, id).Error
}
