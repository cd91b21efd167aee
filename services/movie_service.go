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

// MovieService implements the catalog's read path and the multi-table
// transactional write path. Every mutating operation resolves its
// referenced entities before writing and runs all writes inside one
// transaction, so a failure never leaves a partially committed movie.
type MovieService struct {
	db        *gorm.DB
	movies    *repositories.MovieRepository
	directors *repositories.DirectorRepository
	genres    *repositories.GenreRepository
}

// NewMovieService creates a new movie service instance
func NewMovieService(db *gorm.DB, movies *repositories.MovieRepository, directors *repositories.DirectorRepository, genres *repositories.GenreRepository) *MovieService {
	return &MovieService{db: db, movies: movies, directors: directors, genres: genres}
}

// defaultPageTake is the page size when the query carries none. An
// explicit take=0 passes binding (the zero value skips validation), so
// List normalizes it here rather than trusting the binding default.
const defaultPageTake = 5

// List returns one cursor page of movies with relations populated.
func (s *MovieService) List(q dto.ListMoviesQuery) (*dto.MovieListResponse, error) {
	if q.Take <= 0 {
		q.Take = defaultPageTake
	}

	movies, err := s.movies.FindPage(q.Title, q.Cursor, q.Take)
	if err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []models.Movie{}
	}

	resp := &dto.MovieListResponse{Items: movies, Count: len(movies)}
	if len(movies) > 0 && len(movies) == q.Take {
		last := movies[len(movies)-1].ID
		resp.NextCursor = &last
	}
	return resp, nil
}

// Get returns a movie with director, detail and genres populated.
func (s *MovieService) Get(id uint) (*models.Movie, error) {
	movie, err := s.movies.FindWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("movie %d: %w", id, utils.ErrNotFound)
		}
		return nil, err
	}
	return &movie, nil
}

// Create resolves the director and the full genre set, then inserts the
// detail row, the movie row and the genre associations in a single
// transaction. Any failure rolls everything back.
func (s *MovieService) Create(req dto.CreateMovieRequest) (*models.Movie, error) {
	director, err := s.resolveDirector(req.DirectorID)
	if err != nil {
		return nil, err
	}
	genres, err := s.resolveGenres(req.GenreIDs)
	if err != nil {
		return nil, err
	}

	var movieID uint
	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.movies.WithTx(tx)

		detail := models.MovieDetail{Detail: req.Detail}
		if err := repo.CreateDetail(&detail); err != nil {
			return err
		}

		movie := models.Movie{
			Title:      req.Title,
			DirectorID: director.ID,
			DetailID:   detail.ID,
		}
		if err := repo.Create(&movie); err != nil {
			if utils.IsDuplicateKeyError(err) {
				return fmt.Errorf("movie title %q: %w", req.Title, utils.ErrAlreadyExists)
			}
			return err
		}

		if err := repo.AppendGenres(&movie, genres); err != nil {
			return err
		}

		movieID = movie.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(movieID)
}

// Update applies a partial update. Scalar fields and the director
// reference go into one update statement, the detail text is updated in
// place, and a supplied genre set is applied as a symmetric difference
// against the current associations rather than a delete-and-reinsert.
func (s *MovieService) Update(id uint, req dto.UpdateMovieRequest) (*models.Movie, error) {
	movie, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.DirectorID != nil {
		if _, err := s.resolveDirector(*req.DirectorID); err != nil {
			return nil, err
		}
	}

	var toAdd, toRemove []models.Genre
	if req.GenreIDs != nil {
		desired, err := s.resolveGenres(*req.GenreIDs)
		if err != nil {
			return nil, err
		}
		toAdd, toRemove = genreDiff(movie.Genres, desired)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.movies.WithTx(tx)

		fields := map[string]interface{}{}
		if req.Title != nil {
			fields["title"] = *req.Title
		}
		if req.DirectorID != nil {
			fields["director_id"] = *req.DirectorID
		}
		if len(fields) > 0 {
			fields["version"] = gorm.Expr("version + 1")
			if err := repo.UpdateFields(id, fields); err != nil {
				if req.Title != nil && utils.IsDuplicateKeyError(err) {
					return fmt.Errorf("movie title %q: %w", *req.Title, utils.ErrAlreadyExists)
				}
				return err
			}
		}

		if req.Detail != nil {
			if err := repo.UpdateDetailText(movie.DetailID, *req.Detail); err != nil {
				return err
			}
		}

		if err := repo.AppendGenres(movie, toAdd); err != nil {
			return err
		}
		return repo.RemoveGenres(movie, toRemove)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Delete removes a movie together with its owned detail row and genre
// associations in one transaction, then returns the deleted id.
func (s *MovieService) Delete(id uint) (uint, error) {
	movie, err := s.Get(id)
	if err != nil {
		return 0, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.movies.WithTx(tx)
		if err := repo.ClearGenres(movie); err != nil {
			return err
		}
		if err := repo.Delete(movie.ID); err != nil {
			return err
		}
		return repo.DeleteDetail(movie.DetailID)
	})
	if err != nil {
		return 0, err
	}

	return movie.ID, nil
}

func (s *MovieService) resolveDirector(id uint) (*models.Director, error) {
	director, err := s.directors.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("director %d: %w", id, utils.ErrNotFound)
		}
		return nil, err
	}
	return &director, nil
}

// resolveGenres requires every requested id to resolve; on a mismatch
// it fails before any write, reporting the ids that did resolve so the
// caller can identify the bad ones.
func (s *MovieService) resolveGenres(ids []uint) ([]models.Genre, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	genres, err := s.genres.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(ids) {
		found := make([]uint, 0, len(genres))
		for _, g := range genres {
			found = append(found, g.ID)
		}
		return nil, fmt.Errorf("some genres do not exist, resolved ids %v: %w", found, utils.ErrNotFound)
	}

	return genres, nil
}

// genreDiff computes the symmetric difference between the current and
// desired genre sets.
func genreDiff(current, desired []models.Genre) (toAdd, toRemove []models.Genre) {
	currentSet := make(map[uint]bool, len(current))
	for _, g := range current {
		currentSet[g.ID] = true
	}
	desiredSet := make(map[uint]bool, len(desired))
	for _, g := range desired {
		desiredSet[g.ID] = true
	}

	for _, g := range desired {
		if !currentSet[g.ID] {
			toAdd = append(toAdd, g)
		}
	}
	for _, g := range current {
		if !desiredSet[g.ID] {
			toRemove = append(toRemove, g)
		}
	}
	return toAdd, toRemove
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
