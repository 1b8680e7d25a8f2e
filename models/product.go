package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents the story product presented by the storefront.
// The schema allows many rows but the site treats a single product as
// canonical; see MainProduct.
type Product struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Title          string        `gorm:"not null" json:"title"`
	Subtitle       string        `json:"subtitle"`
	Description    string        `gorm:"type:text" json:"description"`
	TraditionalUse string        `gorm:"type:text" json:"traditionalUse"`
	Disclaimer     string        `gorm:"type:text" json:"disclaimer"`
	MainImage      string        `json:"mainImage"`
	Images         StringList    `gorm:"type:text" json:"images"`
	Price          float64       `gorm:"not null;default:0" json:"price"`
	ContactPhone   string        `json:"contactPhone"`
	WhatsappNumber string        `json:"whatsappNumber"`
	Email          string        `json:"email"`
	Testimonials   []Testimonial `gorm:"foreignKey:ProductID" json:"testimonials"`
	Galleries      []Gallery     `gorm:"foreignKey:ProductID" json:"galleries"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// MainProduct resolves the canonical product: the one referenced by the
// site settings if set, otherwise the oldest row. Returns
// gorm.ErrRecordNotFound when the store holds no product.
func MainProduct(db *gorm.DB) (*Product, error) {
	var settings SiteSettings
	if err := db.First(&settings, SiteSettingsID).Error; err == nil && settings.MainProductID != nil {
		var product Product
		if err := db.First(&product, *settings.MainProductID).Error; err == nil {
			return &product, nil
		}
		// Stale pointer, fall through to the oldest row
	}

	var product Product
	if err := db.Order("created_at asc").First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
