package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	v1 "github.com/filmvault-api/api/v1"
	"github.com/filmvault-api/config"
	"github.com/filmvault-api/database"
	"github.com/filmvault-api/middleware"
	"github.com/filmvault-api/repositories"
	"github.com/filmvault-api/services"
)

func main() {
	// Load .env if present; real deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	directorRepo := repositories.NewDirectorRepository(db)
	genreRepo := repositories.NewGenreRepository(db)
	movieRepo := repositories.NewMovieRepository(db)

	// Services
	tokenService := services.NewTokenService(cfg)
	authService := services.NewAuthService(cfg, userRepo, tokenService)
	movieService := services.NewMovieService(db, movieRepo, directorRepo, genreRepo)
	directorService := services.NewDirectorService(directorRepo)
	genreService := services.NewGenreService(genreRepo)
	userService := services.NewUserService(userRepo)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Token extraction runs on every request; authorization decisions
	// belong to the per-route gates.
	router.Use(middleware.BearerToken(tokenService))

	// Health check endpoint
	router.GET("/health", v1.HealthCheck)

	api := router.Group("/api/v1")
	v1.RegisterRoutes(api, v1.Controllers{
		Auth:      v1.NewAuthController(authService),
		Movies:    v1.NewMovieController(movieService),
		Directors: v1.NewDirectorController(directorService),
		Genres:    v1.NewGenreController(genreService),
		Users:     v1.NewUserController(userService),
	})

	log.Printf("🚀 FilmVault API starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
