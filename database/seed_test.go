package database

import (
	"testing"

	"github.com/filmvault-api/config"
	"github.com/filmvault-api/models"
	"github.com/filmvault-api/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedAdminCreatesAdminOnce(t *testing.T) {
	db := newSeedTestDB(t)
	cfg := &config.Config{
		AdminEmail:    "admin@example.com",
		AdminPassword: "seed-password",
		HashRounds:    bcrypt.MinCost,
	}

	if err := SeedAdmin(db, cfg); err != nil {
		t.Fatalf("SeedAdmin() error = %v", err)
	}
	if err := SeedAdmin(db, cfg); err != nil {
		t.Fatalf("second SeedAdmin() error = %v", err)
	}

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		t.Fatalf("load users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("user count = %d, want 1", len(users))
	}

	admin := users[0]
	if admin.Role != models.RoleAdmin {
		t.Errorf("Role = %v, want %v", admin.Role, models.RoleAdmin)
	}
	if !utils.VerifyPassword(admin.Password, "seed-password") {
		t.Error("seeded hash does not verify the configured password")
	}
}

func TestSeedAdminNoopWithoutEmail(t *testing.T) {
	db := newSeedTestDB(t)

	if err := SeedAdmin(db, &config.Config{}); err != nil {
		t.Fatalf("SeedAdmin() error = %v", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("user count = %d, want 0", count)
	}
}
