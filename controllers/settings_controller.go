package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nyanga-tradition/yayoh-api/config"
	"github.com/nyanga-tradition/yayoh-api/data"
	"github.com/nyanga-tradition/yayoh-api/models"
	"github.com/nyanga-tradition/yayoh-api/utils"
)

// UpdateSiteSettingsRequest represents the settings upsert body
type UpdateSiteSettingsRequest struct {
	ContactPhone   *string        `json:"contactPhone"`
	WhatsappNumber *string        `json:"whatsappNumber"`
	Email          *string        `json:"email"`
	Address        *string        `json:"address"`
	SocialLinks    models.JSONMap `json:"socialLinks"`
	MainProductID  *uint          `json:"mainProductId"`
}

// GetSiteSettings handles GET /api/products/settings/site (public).
// Reads degrade to static defaults rather than propagating 5xx: the full
// default object when the row is absent, contact fields only on store error.
func GetSiteSettings(c *gin.Context) {
	db := config.GetDB()

	var settings models.SiteSettings
	err := db.First(&settings, models.SiteSettingsID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, data.DefaultSettings())
			return
		}
		defaults := data.DefaultSettings()
		c.JSON(http.StatusOK, gin.H{
			"contactPhone":   defaults.ContactPhone,
			"whatsappNumber": defaults.WhatsappNumber,
			"email":          defaults.Email,
		})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSiteSettings handles PUT /api/products/settings/site (admin),
// upserting the singleton row
func UpdateSiteSettings(c *gin.Context) {
	var req UpdateSiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithErrorDetails(c, http.StatusBadRequest, "Format de données invalide", err.Error())
		return
	}

	db := config.GetDB()

	var settings models.SiteSettings
	if err := db.First(&settings, models.SiteSettingsID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
		settings = models.SiteSettings{ID: models.SiteSettingsID}
	}

	if req.ContactPhone != nil {
		settings.ContactPhone = *req.ContactPhone
	}
	if req.WhatsappNumber != nil {
		settings.WhatsappNumber = *req.WhatsappNumber
	}
	if req.Email != nil {
		settings.Email = *req.Email
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.SocialLinks != nil {
		settings.SocialLinks = req.SocialLinks
	}
	if req.MainProductID != nil {
		settings.MainProductID = req.MainProductID
	}

	if err := db.Save(&settings).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, settings)
}
