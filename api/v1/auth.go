package v1

import (
	"net/http"

	"github.com/filmvault-api/middleware"
	"github.com/filmvault-api/services"
	"github.com/filmvault-api/utils"
	"github.com/gin-gonic/gin"
)

// AuthController exposes registration, login and the refresh-token
// exchange. Register and login read Basic credentials straight from the
// Authorization header; no request body is involved.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new auth controller instance
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register handles user registration
// Authorization: Basic base64(email:password)
func (ctrl *AuthController) Register(c *gin.Context) {
	user, err := ctrl.auth.Register(c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"user":   user,
	})
}

// Login handles user authentication and returns a token pair
// Authorization: Basic base64(email:password)
func (ctrl *AuthController) Login(c *gin.Context) {
	pair, err := ctrl.auth.Login(c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

// RotateAccessToken exchanges a refresh token for a fresh access token.
// The refresh-token gate has already verified the claims in context.
func (ctrl *AuthController) RotateAccessToken(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		respondError(c, utils.ErrForbidden)
		return
	}

	token, err := ctrl.auth.RotateAccessToken(claims)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}
