package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nyanga-tradition/yayoh-api/config"
	"github.com/nyanga-tradition/yayoh-api/middleware"
	"github.com/nyanga-tradition/yayoh-api/models"
	"github.com/nyanga-tradition/yayoh-api/utils"
)

// LoginRequest represents the request body for the admin login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginAdmin handles POST /api/admin/login
func LoginAdmin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithErrorDetails(c, http.StatusBadRequest, "Requête invalide", err.Error())
		return
	}

	db := config.GetDB()
	var admin models.Admin
	if err := db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Identifiants incorrects")
		return
	}

	if !utils.CheckPasswordHash(req.Password, admin.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Identifiants incorrects")
		return
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email, admin.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Impossible de générer le token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":    admin.ID,
			"email": admin.Email,
			"name":  admin.Name,
			"role":  admin.Role,
		},
	})
}

// GetAdminProfile handles GET /api/admin/profile (bearer-token-protected)
func GetAdminProfile(c *gin.Context) {
	adminID, err := middleware.GetAdminID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Token invalide")
		return
	}

	db := config.GetDB()
	var admin models.Admin
	if err := db.First(&admin, adminID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Admin non trouvé")
		return
	}

	c.JSON(http.StatusOK, admin)
}
