package models

import (
	"time"

	"gorm.io/gorm"
)

// Gallery represents a media item (image or video) in the product gallery
type Gallery struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	VideoURL  string    `json:"videoUrl"`
	Type      string    `gorm:"not null;default:'image'" json:"type"` // "image" or "video"
	Order     int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	ProductID uint      `gorm:"not null;index" json:"productId"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for the Gallery model
func (Gallery) TableName() string {
	return "galleries"
}

// BeforeCreate infers the media type from the submitted URLs when absent
func (g *Gallery) BeforeCreate(tx *gorm.DB) error {
	if g.Type == "" {
		if g.VideoURL != "" {
			g.Type = "video"
		} else {
			g.Type = "image"
		}
	}
	return nil
}
