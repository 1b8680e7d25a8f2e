package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nyanga-tradition/yayoh-api/data"
	"github.com/nyanga-tradition/yayoh-api/models"
	"github.com/nyanga-tradition/yayoh-api/utils"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Product{},
		&models.Testimonial{},
		&models.Gallery{},
		&models.SiteSettings{},
	))
	return db
}

func TestRunBootstrapsEmptyStore(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, Run(db, "admin@indigenat.com", "admin123"))

	var admin models.Admin
	require.NoError(t, db.Where("email = ?", "admin@indigenat.com").First(&admin).Error)
	assert.Equal(t, "admin", admin.Role)
	assert.True(t, utils.CheckPasswordHash("admin123", admin.Password))

	var product models.Product
	require.NoError(t, db.Where("title = ?", data.DefaultProduct().Title).First(&product).Error)

	var testimonialCount int64
	db.Model(&models.Testimonial{}).Where("product_id = ?", product.ID).Count(&testimonialCount)
	assert.Equal(t, int64(3), testimonialCount)

	// Seeded testimonials are public from the start
	var approvedCount int64
	db.Model(&models.Testimonial{}).Where("approved = ?", true).Count(&approvedCount)
	assert.Equal(t, int64(3), approvedCount)

	var galleryCount int64
	db.Model(&models.Gallery{}).Where("product_id = ?", product.ID).Count(&galleryCount)
	assert.Equal(t, int64(3), galleryCount)

	var settings models.SiteSettings
	require.NoError(t, db.First(&settings, models.SiteSettingsID).Error)
	require.NotNil(t, settings.MainProductID)
	assert.Equal(t, product.ID, *settings.MainProductID)
}

func TestRunIsIdempotent(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, Run(db, "admin@indigenat.com", "admin123"))
	require.NoError(t, Run(db, "admin@indigenat.com", "admin123"))

	var adminCount, productCount, testimonialCount, galleryCount, settingsCount int64
	db.Model(&models.Admin{}).Count(&adminCount)
	db.Model(&models.Product{}).Count(&productCount)
	db.Model(&models.Testimonial{}).Count(&testimonialCount)
	db.Model(&models.Gallery{}).Count(&galleryCount)
	db.Model(&models.SiteSettings{}).Count(&settingsCount)

	assert.Equal(t, int64(1), adminCount)
	assert.Equal(t, int64(1), productCount)
	assert.Equal(t, int64(3), testimonialCount)
	assert.Equal(t, int64(3), galleryCount)
	assert.Equal(t, int64(1), settingsCount)
}

func TestRunPreservesExistingMainProductPointer(t *testing.T) {
	db := setupSeedDB(t)

	other := models.Product{Title: "Autre produit", Images: models.StringList{}}
	require.NoError(t, db.Create(&other).Error)

	otherID := other.ID
	settings := data.DefaultSettings()
	settings.MainProductID = &otherID
	require.NoError(t, db.Create(&settings).Error)

	require.NoError(t, Run(db, "admin@indigenat.com", "admin123"))

	var saved models.SiteSettings
	require.NoError(t, db.First(&saved, models.SiteSettingsID).Error)
	require.NotNil(t, saved.MainProductID)
	assert.Equal(t, otherID, *saved.MainProductID)
}

func TestRunSkipsProductWhenTitleExists(t *testing.T) {
	db := setupSeedDB(t)

	existing := models.Product{Title: data.DefaultProduct().Title, Images: models.StringList{}}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, Run(db, "admin@indigenat.com", "admin123"))

	var productCount, testimonialCount int64
	db.Model(&models.Product{}).Count(&productCount)
	db.Model(&models.Testimonial{}).Count(&testimonialCount)
	assert.Equal(t, int64(1), productCount)
	assert.Equal(t, int64(0), testimonialCount)

	var settings models.SiteSettings
	require.NoError(t, db.First(&settings, models.SiteSettingsID).Error)
	require.NotNil(t, settings.MainProductID)
	assert.Equal(t, existing.ID, *settings.MainProductID)
}
