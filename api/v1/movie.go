package v1

import (
	"net/http"

	"github.com/filmvault-api/dto"
	"github.com/filmvault-api/services"
	"github.com/gin-gonic/gin"
)

// MovieController exposes the movie catalog: public reads with cursor
// pagination, admin-gated writes.
type MovieController struct {
	movies *services.MovieService
}

// NewMovieController creates a new movie controller instance
func NewMovieController(movies *services.MovieService) *MovieController {
	return &MovieController{movies: movies}
}

// List returns one cursor page of movies, optionally filtered by title
// substring.
func (ctrl *MovieController) List(c *gin.Context) {
	var query dto.ListMoviesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := ctrl.movies.List(query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Get returns a movie with detail, director and genres, or 404.
func (ctrl *MovieController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	movie, err := ctrl.movies.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, movie)
}

// Create inserts a movie with its detail, director reference and genre
// set in one transaction.
func (ctrl *MovieController) Create(c *gin.Context) {
	var req dto.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	movie, err := ctrl.movies.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, movie)
}

// Update applies a partial update and returns the reloaded movie.
func (ctrl *MovieController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	movie, err := ctrl.movies.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, movie)
}

// Delete removes a movie with its owned detail and returns the deleted id.
func (ctrl *MovieController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deletedID, err := ctrl.movies.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": deletedID})
}
