package main

import (
	"log"

	"github.com/filmvault-api/config"
	"github.com/filmvault-api/database"
	"github.com/joho/godotenv"
)

// Applies the catalog schema and seeds the configured admin account
// without starting the API server. Useful for provisioning a database
// ahead of a deployment.
func main() {
	log.Println("Starting database migration...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Println("✅ Database migration completed successfully!")
}
