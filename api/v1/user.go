package v1

import (
	"net/http"

	"github.com/filmvault-api/services"
	"github.com/gin-gonic/gin"
)

// UserController exposes the admin-only user reads. Password hashes
// never appear in responses; the model excludes them from JSON.
type UserController struct {
	users *services.UserService
}

// NewUserController creates a new user controller instance
func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// List returns all users
func (ctrl *UserController) List(c *gin.Context) {
	users, err := ctrl.users.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get returns a user by id
func (ctrl *UserController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	user, err := ctrl.users.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
