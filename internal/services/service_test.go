// internal/services/service_test.go
package services_test

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bazaarworks/marketplace-backend/internal/config"
	"github.com/bazaarworks/marketplace-backend/internal/models"
	"github.com/bazaarworks/marketplace-backend/internal/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=busy_timeout(10000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying sql.DB: %v", err)
	}
	// Single connection keeps SQLite from returning busy errors under
	// concurrent test traffic.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.Order{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:      "test-secret-key",
			AccessTokenTTL: 24,
		},
		Admin: config.AdminConfig{
			APIKey:       "test-admin-key",
			APIKeyHeader: "X-API-Key",
		},
	}
}

func init() {
	utils.SetJWTSecret("test-secret-key")
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:        name,
		Email:       email,
		PhoneNumber: "555",
		Address:     "1 St",
	}
	if err := user.SetPassword("pw"); err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestItem(t *testing.T, db *gorm.DB, name, category string, stock int) *models.Item {
	t.Helper()

	item := &models.Item{
		ItemName: name,
		Category: category,
		ItemDesc: name + " description",
		Stock:    stock,
		ItemPic:  "https://cdn.example.com/items/" + name + ".png",
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test item: %v", err)
	}
	return item
}
