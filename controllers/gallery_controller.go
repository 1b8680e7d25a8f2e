package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nyanga-tradition/yayoh-api/config"
	"github.com/nyanga-tradition/yayoh-api/models"
	"github.com/nyanga-tradition/yayoh-api/utils"
)

// AddGalleryItemRequest represents the request body for adding a gallery item
type AddGalleryItemRequest struct {
	Title    string      `json:"title"`
	Type     string      `json:"type"`
	Order    interface{} `json:"order"`
	ImageURL string      `json:"imageUrl"`
	VideoURL string      `json:"videoUrl"`
}

// UpdateGalleryItemRequest represents a partial gallery item update
type UpdateGalleryItemRequest struct {
	Title    *string `json:"title"`
	Type     *string `json:"type"`
	ImageURL *string `json:"imageUrl"`
	VideoURL *string `json:"videoUrl"`
}

// parseOrder converts the submitted display order to an int, 0 when absent
// or unparseable. The admin panel sends it either as a number or a string.
func parseOrder(value interface{}) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}

// AddGalleryItem handles POST /api/products/gallery (admin).
// The item is attached to the canonical product; a type of "video" stores
// the submitted URL as a video reference.
func AddGalleryItem(c *gin.Context) {
	var req AddGalleryItemRequest
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

	videoURL := req.VideoURL
	if req.Type == "video" && videoURL == "" {
		videoURL = req.ImageURL
	}

	item := models.Gallery{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		VideoURL:  videoURL,
		Type:      req.Type,
		Order:     parseOrder(req.Order),
		ProductID: mainProduct.ID,
	}

	if err := db.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetGalleryItems handles GET /api/products/:id/gallery (admin),
// sorted by display order then newest first
func GetGalleryItems(c *gin.Context) {
	db := config.GetDB()

	var items []models.Gallery
	if err := db.
		Where("product_id = ?", c.Param("id")).
		Order("sort_order asc").
		Order("created_at desc").
		Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdateGalleryItem handles PUT /api/products/gallery/:id (admin)
func UpdateGalleryItem(c *gin.Context) {
	var req UpdateGalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithErrorDetails(c, http.StatusBadRequest, "Format de données invalide", err.Error())
		return
	}

	db := config.GetDB()
	var item models.Gallery
	if err := db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Élément de galerie non trouvé")
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.VideoURL != nil {
		updates["video_url"] = *req.VideoURL
	}

	if len(updates) > 0 {
		if err := db.Model(&item).Updates(updates).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	c.JSON(http.StatusOK, item)
}

// UpdateGalleryOrder handles PUT /api/products/gallery/:id/order (admin).
// The "order" field must be present.
func UpdateGalleryOrder(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondWithErrorDetails(c, http.StatusBadRequest, "Format de données invalide", err.Error())
		return
	}

	order, present := body["order"]
	if !present {
		utils.RespondWithError(c, http.StatusBadRequest, "L'ordre est requis")
		return
	}

	db := config.GetDB()
	var item models.Gallery
	if err := db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Élément de galerie non trouvé")
		return
	}

	if err := db.Model(&item).Update("sort_order", parseOrder(order)).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteGalleryItem handles DELETE /api/products/gallery/:id (admin)
func DeleteGalleryItem(c *gin.Context) {
	db := config.GetDB()

	var item models.Gallery
	if err := db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Élément de galerie non trouvé")
		return
	}

	if err := db.Delete(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Élément de galerie supprimé avec succès"})
}
