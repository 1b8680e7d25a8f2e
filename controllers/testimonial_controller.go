package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nyanga-tradition/yayoh-api/config"
	"github.com/nyanga-tradition/yayoh-api/models"
	"github.com/nyanga-tradition/yayoh-api/utils"
)

// AddTestimonialRequest represents the public testimonial submission
type AddTestimonialRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
	Avatar   string `json:"avatar"`
}

// UpdateTestimonialRequest represents a partial testimonial update (admin)
type UpdateTestimonialRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Text     *string `json:"text"`
	Rating   *int    `json:"rating"`
	Avatar   *string `json:"avatar"`
	Approved *bool   `json:"approved"`
}

// AddTestimonial handles POST /api/products/testimonials (public).
// The testimonial is attached to the canonical product and starts unapproved.
func AddTestimonial(c *gin.Context) {
	var req AddTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithErrorDetails(c, http.StatusBadRequest, "Format de données invalide", err.Error())
		return
	}

	db := config.GetDB()
	mainProduct, err := models.MainProduct(db)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Aucun produit trouvé. Créez d'abord un produit.")
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		utils.RespondWithError(c, http.StatusBadRequest, "Le rating doit être entre 1 et 5")
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Text) == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Le nom et le texte sont obligatoires")
		return
	}

	testimonial := models.Testimonial{
		Name:      req.Name,
		Location:  req.Location,
		Text:      req.Text,
		Rating:    req.Rating,
		Avatar:    req.Avatar,
		Approved:  false,
		ProductID: mainProduct.ID,
	}

	if err := db.Create(&testimonial).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusCreated, testimonial)
}

// GetAllTestimonials handles GET /api/products/testimonials/all (admin).
// Optional ?approved=true|false filter; includes the parent product's title.
func GetAllTestimonials(c *gin.Context) {
	db := config.GetDB()

	query := db.
		Preload("Product", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title")
		}).
		Order("created_at desc")

	if approved, ok := c.GetQuery("approved"); ok {
		query = query.Where("approved = ?", approved == "true")
	}

	var testimonials []models.Testimonial
	if err := query.Find(&testimonials).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

// UpdateTestimonial handles PUT /api/products/testimonials/:id (admin)
func UpdateTestimonial(c *gin.Context) {
	var req UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithErrorDetails(c, http.StatusBadRequest, "Format de données invalide", err.Error())
		return
	}

	db := config.GetDB()
	var testimonial models.Testimonial
	if err := db.First(&testimonial, "id = ?", c.Param("id")).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Témoignage non trouvé")
		return
	}

	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		utils.RespondWithError(c, http.StatusBadRequest, "Le rating doit être entre 1 et 5")
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Text != nil {
		updates["text"] = *req.Text
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.Approved != nil {
		updates["approved"] = *req.Approved
	}

	if len(updates) > 0 {
		if err := db.Model(&testimonial).Updates(updates).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	c.JSON(http.StatusOK, testimonial)
}

// ApproveTestimonial handles PUT /api/products/testimonials/:id/approve
// (admin). Approving twice is idempotent.
func ApproveTestimonial(c *gin.Context) {
	db := config.GetDB()

	var testimonial models.Testimonial
	if err := db.First(&testimonial, "id = ?", c.Param("id")).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Témoignage non trouvé")
		return
	}

	if err := db.Model(&testimonial).Update("approved", true).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, testimonial)
}

// DeleteTestimonial handles DELETE /api/products/testimonials/:id (admin)
func DeleteTestimonial(c *gin.Context) {
	db := config.GetDB()

	var testimonial models.Testimonial
	if err := db.First(&testimonial, "id = ?", c.Param("id")).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Témoignage non trouvé")
		return
	}

	if err := db.Delete(&testimonial).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Témoignage supprimé avec succès"})
}
