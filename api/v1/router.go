package v1

import (
	"github.com/filmvault-api/middleware"
	"github.com/filmvault-api/models"
	"github.com/gin-gonic/gin"
)

// Controllers bundles the feature controllers for route registration.
type Controllers struct {
	Auth      *AuthController
	Movies    *MovieController
	Directors *DirectorController
	Genres    *GenreController
	Users     *UserController
}

// RegisterRoutes registers all v1 API routes. This table is the single
// source of truth for which routes are public and which role each
// write requires; routes without a gate are public by construction.
func RegisterRoutes(router *gin.RouterGroup, ctrl Controllers) {
	// Auth endpoints. Register and login are public but rate-limited;
	// the exchange endpoint requires a verified refresh token.
	authGroup := router.Group("/auth")
	authGroup.Use(middleware.RateLimit(5, 10))
	{
		authGroup.POST("/register", ctrl.Auth.Register)
		authGroup.POST("/login", ctrl.Auth.Login)
		authGroup.POST("/token/access", middleware.RequireRefreshToken(), ctrl.Auth.RotateAccessToken)
	}

	// Movie endpoints - public reads, admin writes
	movieGroup := router.Group("/movie")
	{
		movieGroup.GET("", ctrl.Movies.List)
		movieGroup.GET("/:id", ctrl.Movies.Get)
		movieGroup.POST("", middleware.RequireRole(models.RoleAdmin), ctrl.Movies.Create)
		movieGroup.PATCH("/:id", middleware.RequireRole(models.RoleAdmin), ctrl.Movies.Update)
		movieGroup.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), ctrl.Movies.Delete)
	}

	// Director endpoints - public reads, admin writes
	directorGroup := router.Group("/director")
	{
		directorGroup.GET("", ctrl.Directors.List)
		directorGroup.GET("/:id", ctrl.Directors.Get)
		directorGroup.POST("", middleware.RequireRole(models.RoleAdmin), ctrl.Directors.Create)
		directorGroup.PATCH("/:id", middleware.RequireRole(models.RoleAdmin), ctrl.Directors.Update)
		directorGroup.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), ctrl.Directors.Delete)
	}

	// Genre endpoints - public reads, admin writes
	genreGroup := router.Group("/genre")
	{
		genreGroup.GET("", ctrl.Genres.List)
		genreGroup.GET("/:id", ctrl.Genres.Get)
		genreGroup.POST("", middleware.RequireRole(models.RoleAdmin), ctrl.Genres.Create)
		genreGroup.PATCH("/:id", middleware.RequireRole(models.RoleAdmin), ctrl.Genres.Update)
		genreGroup.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), ctrl.Genres.Delete)
	}

	// User endpoints - admin only
	userGroup := router.Group("/user")
	userGroup.Use(middleware.RequireRole(models.RoleAdmin))
	{
		userGroup.GET("", ctrl.Users.List)
		userGroup.GET("/:id", ctrl.Users.Get)
	}
}
