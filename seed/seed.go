// Package seed populates the store with the default admin account, the
// initial product with its testimonials and gallery, and the site settings.
// Running it more than once is safe.
package seed

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/nyanga-tradition/yayoh-api/data"
	"github.com/nyanga-tradition/yayoh-api/models"
	"github.com/nyanga-tradition/yayoh-api/utils"
)

// Run executes the full bootstrap against the given store
func Run(db *gorm.DB, adminEmail, adminPassword string) error {
	if err := seedAdmin(db, adminEmail, adminPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	productID, err := seedProduct(db)
	if err != nil {
		return fmt.Errorf("seed product: %w", err)
	}

	if err := seedSettings(db, productID); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	return nil
}

// seedAdmin creates the default admin account if its email is not taken
func seedAdmin(db *gorm.DB, email, password string) error {
	var existing models.Admin
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Email:    email,
		Password: hashed,
		Name:     "Administrateur",
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded admin account: %s", admin.Email)
	return nil
}

// seedProduct creates the default product with its testimonials and gallery
// unless a product with the default title already exists. It returns the id
// of the seeded (or pre-existing) product.
func seedProduct(db *gorm.DB) (uint, error) {
	defaults := data.DefaultProduct()

	var existing models.Product
	err := db.Where("title = ?", defaults.Title).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	product := defaults
	if err := db.Create(&product).Error; err != nil {
		return 0, err
	}

	// Seeded testimonials are editorial content, visible right away
	for _, testimonial := range data.DefaultTestimonials() {
		testimonial.ProductID = product.ID
		testimonial.Approved = true
		if err := db.Create(&testimonial).Error; err != nil {
			return 0, err
		}
	}

	for _, item := range data.DefaultGalleries() {
		item.ProductID = product.ID
		if err := db.Create(&item).Error; err != nil {
			return 0, err
		}
	}

	log.Printf("Seeded product %q with testimonials and gallery", product.Title)
	return product.ID, nil
}

// seedSettings upserts the singleton settings row and designates the
// canonical product if no pointer is set yet
func seedSettings(db *gorm.DB, productID uint) error {
	var settings models.SiteSettings
	err := db.First(&settings, models.SiteSettingsID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		settings = data.DefaultSettings()
	}

	if settings.MainProductID == nil && productID != 0 {
		settings.MainProductID = &productID
	}

	return db.Save(&settings).Error
}
