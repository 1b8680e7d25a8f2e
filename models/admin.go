package models

import (
	"time"
)

// Admin represents an administrator account for the admin panel
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `gorm:"not null;default:'admin'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for the Admin model
func (Admin) TableName() string {
	return "admins"
}
