package v1

import (
	"net/http"

	"github.com/filmvault-api/dto"
	"github.com/filmvault-api/services"
	"github.com/gin-gonic/gin"
)

// DirectorController exposes director CRUD: public reads, admin writes.
type DirectorController struct {
	directors *services.DirectorService
}

// NewDirectorController creates a new director controller instance
func NewDirectorController(directors *services.DirectorService) *DirectorController {
	return &DirectorController{directors: directors}
}

// List returns all directors
func (ctrl *DirectorController) List(c *gin.Context) {
	directors, err := ctrl.directors.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, directors)
}

// Get returns a director by id
func (ctrl *DirectorController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	director, err := ctrl.directors.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, director)
}

// Create inserts a new director
func (ctrl *DirectorController) Create(c *gin.Context) {
	var req dto.CreateDirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	director, err := ctrl.directors.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, director)
}

// Update applies a partial update to a director
func (ctrl *DirectorController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateDirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	director, err := ctrl.directors.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, director)
}

// Delete removes a director that no movie references
func (ctrl *DirectorController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deletedID, err := ctrl.directors.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": deletedID})
}
