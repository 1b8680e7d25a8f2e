package models

import (
	"time"
)

// Testimonial represents a customer testimonial attached to the product.
// New testimonials start unapproved and become publicly visible only after
// admin review.
type Testimonial struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Location  string    `json:"location"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Avatar    string    `json:"avatar"`
	Approved  bool      `gorm:"not null;default:false" json:"approved"`
	ProductID uint      `gorm:"not null;index" json:"productId"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for the Testimonial model
func (Testimonial) TableName() string {
	return "testimonials"
}
