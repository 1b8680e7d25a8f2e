package testutil

import (
	"os"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nyanga-tradition/yayoh-api/config"
	"github.com/nyanga-tradition/yayoh-api/models"
)

// RequireTestEnvironment ensures that tests are running in the test environment.
// This prevents accidental execution of tests against production or development databases.
// It will fail the test immediately if GO_ENV is not set to "test".
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Fatalf("SAFETY CHECK FAILED: Tests must run with GO_ENV=test to prevent data loss. Current GO_ENV=%q. Set GO_ENV=test before running tests.", env)
	}
}

// MustSetTestEnvironment sets GO_ENV to test and fails if it cannot be set.
// Use this in TestMain or suite setup functions.
func MustSetTestEnvironment(t *testing.T) {
	t.Helper()

	if err := os.Setenv("GO_ENV", "test"); err != nil {
		t.Fatalf("Failed to set GO_ENV=test: %v", err)
	}
}

// NewTestConfig returns a configuration suitable for tests and installs it
// as the global configuration
func NewTestConfig(uploadDir string) *config.Config {
	cfg := &config.Config{
		GoEnv:          "test",
		Port:           "8080",
		JWTSecret:      "acceptance-test-secret",
		JWTExpiryHours: 24,
		UploadDir:      uploadDir,
		DemoFallback:   true,
	}
	config.SetConfig(cfg)
	return cfg
}

// NewTestDB opens a fresh in-memory database with all models migrated and
// installs it as the global store. The connection pool is capped at one so
// the :memory: database is shared by every query.
func NewTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Product{},
		&models.Testimonial{},
		&models.Gallery{},
		&models.SiteSettings{},
	); err != nil {
		return nil, err
	}

	config.SetDB(db)
	return db, nil
}

// TruncateAll removes every row from every table, keeping the schema
func TruncateAll(db *gorm.DB) {
	db.Exec("DELETE FROM testimonials")
	db.Exec("DELETE FROM galleries")
	db.Exec("DELETE FROM products")
	db.Exec("DELETE FROM admins")
	db.Exec("DELETE FROM site_settings")
}
