package models

import (
	"time"
)

// SiteSettingsID is the fixed primary key of the singleton settings row
const SiteSettingsID uint = 1

// SiteSettings holds site-wide contact details and social links.
// Exactly one row exists, keyed by SiteSettingsID and upserted on update.
// MainProductID designates the canonical product shown by the public
// storefront.
type SiteSettings struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ContactPhone   string    `json:"contactPhone"`
	WhatsappNumber string    `json:"whatsappNumber"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	SocialLinks    JSONMap   `gorm:"type:text" json:"socialLinks"`
	MainProductID  *uint     `json:"mainProductId,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TableName specifies the table name for the SiteSettings model
func (SiteSettings) TableName() string {
	return "site_settings"
}
