package testutil

import (
	"gorm.io/gorm"

	"github.com/nyanga-tradition/yayoh-api/models"
	"github.com/nyanga-tradition/yayoh-api/utils"
)

// CreateAdmin inserts an admin account with a bcrypt-hashed password
func CreateAdmin(db *gorm.DB, email, password string) (*models.Admin, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Email:    email,
		Password: hashed,
		Name:     "Administrateur",
		Role:     "admin",
	}
	if err := db.Create(admin).Error; err != nil {
		return nil, err
	}
	return admin, nil
}

// IssueToken signs a real bearer token for the given admin, using the
// globally installed configuration's secret
func IssueToken(admin *models.Admin) (string, error) {
	return utils.GenerateToken(admin.ID, admin.Email, admin.Role)
}
