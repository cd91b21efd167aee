package v1

import (
	"net/http"

	"github.com/filmvault-api/dto"
	"github.com/filmvault-api/services"
	"github.com/gin-gonic/gin"
)

// GenreController exposes genre CRUD: public reads, admin writes.
type GenreController struct {
	genres *services.GenreService
}

// NewGenreController creates a new genre controller instance
func NewGenreController(genres *services.GenreService) *GenreController {
	return &GenreController{genres: genres}
}

// List returns all genres
func (ctrl *GenreController) List(c *gin.Context) {
	genres, err := ctrl.genres.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}

// Get returns a genre by id
func (ctrl *GenreController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	genre, err := ctrl.genres.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, genre)
}

// Create inserts a new genre
func (ctrl *GenreController) Create(c *gin.Context) {
	var req dto.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	genre, err := ctrl.genres.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, genre)
}

// Update renames a genre
func (ctrl *GenreController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	genre, err := ctrl.genres.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, genre)
}

// Delete removes a genre and its movie associations
func (ctrl *GenreController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deletedID, err := ctrl.genres.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": deletedID})
}
