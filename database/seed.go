package database

import (
	"log"

	"github.com/filmvault-api/config"
	"github.com/filmvault-api/models"
	"github.com/filmvault-api/utils"
	"gorm.io/gorm"
)

// SeedAdmin creates the admin account configured through
// ADMIN_EMAIL/ADMIN_PASSWORD so a fresh deployment has a principal able
// to use the admin-gated write endpoints. It is a no-op when the
// variables are unset or the account already exists.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(cfg.AdminPassword, cfg.HashRounds)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:    cfg.AdminEmail,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded admin user %s", cfg.AdminEmail)
	return nil
}
