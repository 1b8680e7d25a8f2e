package controllers

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nyanga-tradition/yayoh-api/config"
	"github.com/nyanga-tradition/yayoh-api/models"
)

// setupTestDB creates a fresh in-memory database with all models migrated
// and installs it as the global store
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// A :memory: database exists per connection, so keep the pool at one
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access underlying database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Product{},
		&models.Testimonial{},
		&models.Gallery{},
		&models.SiteSettings{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	config.SetDB(db)
	return db
}

// setupTestConfig installs a test configuration
func setupTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		GoEnv:          "test",
		Port:           "8080",
		JWTSecret:      "test-secret",
		JWTExpiryHours: 24,
		UploadDir:      t.TempDir(),
		DemoFallback:   true,
	}
	config.SetConfig(cfg)
	return cfg
}

// createTestProduct inserts a product with the given title
func createTestProduct(t *testing.T, db *gorm.DB, title string) models.Product {
	t.Helper()

	product := models.Product{
		Title:  title,
		Images: models.StringList{},
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	return product
}
