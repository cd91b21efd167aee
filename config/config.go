package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config is the process-wide configuration snapshot, read once at
// startup and read-only afterwards.
type Config struct {
	Env  string `validate:"required,oneof=dev test prod"`
	Port string `validate:"required"`

	DatabaseURL string `validate:"required"`

	// Distinct signing secrets per token type so a refresh token can
	// never pass verification as an access token.
	AccessTokenSecret  string `validate:"required,min=16"`
	RefreshTokenSecret string `validate:"required,min=16"`

	// HashRounds is the bcrypt cost factor for password hashing.
	HashRounds int `validate:"required,min=4,max=31"`

	// Optional seed account created at startup when both values are set.
	AdminEmail    string `validate:"omitempty,email"`
	AdminPassword string `validate:"required_with=AdminEmail"`
}

// Load reads the configuration from environment variables and validates
// it against the schema above. Missing or invalid values prevent startup.
func Load() (*Config, error) {
	cfg := &Config{
		Env:                GetEnv("ENV", "dev"),
		Port:               GetEnv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		AccessTokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
		AdminEmail:         os.Getenv("ADMIN_EMAIL"),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
	}

	rounds := GetEnv("HASH_ROUNDS", "10")
	n, err := strconv.Atoi(rounds)
	if err != nil {
		return nil, fmt.Errorf("invalid HASH_ROUNDS %q: %v", rounds, err)
	}
	cfg.HashRounds = n

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}

	return cfg, nil
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
