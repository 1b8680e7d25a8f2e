package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nyanga-tradition/yayoh-api/config"
	"github.com/nyanga-tradition/yayoh-api/data"
	"github.com/nyanga-tradition/yayoh-api/models"
	"github.com/nyanga-tradition/yayoh-api/utils"
)

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Title          string   `json:"title"`
	Subtitle       string   `json:"subtitle"`
	Description    string   `json:"description"`
	TraditionalUse string   `json:"traditionalUse"`
	Disclaimer     string   `json:"disclaimer"`
	MainImage      string   `json:"mainImage"`
	Images         []string `json:"images"`
	Price          float64  `json:"price"`
	ContactPhone   string   `json:"contactPhone"`
	WhatsappNumber string   `json:"whatsappNumber"`
	Email          string   `json:"email"`
}

// withPublicRelations loads the approved testimonials (newest first) and the
// gallery (display order) of a product, the shape the storefront expects
func withPublicRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Testimonials", func(db *gorm.DB) *gorm.DB {
			return db.Where("approved = ?", true).Order("created_at desc")
		}).
		Preload("Galleries", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		})
}

// GetAllProducts handles GET /api/products - all products for the admin panel
func GetAllProducts(c *gin.Context) {
	db := config.GetDB()

	var products []models.Product
	if err := db.
		Preload("Testimonials").
		Preload("Galleries").
		Order("created_at desc").
		Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id - one product for the storefront.
// Only approved testimonials are exposed publicly.
func GetProduct(c *gin.Context) {
	db := config.GetDB()

	var product models.Product
	if err := withPublicRelations(db).First(&product, "id = ?", c.Param("id")).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Produit non trouvé")
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetMainProduct handles GET /api/products/main - the canonical product for
// the storefront. When the store is empty or unreachable and the demo
// fallback is enabled, the static default payload is returned so the public
// client never hard-fails.
func GetMainProduct(c *gin.Context) {
	db := config.GetDB()
	cfg := config.GetConfig()
	fallback := cfg == nil || cfg.DemoFallback

	main, err := models.MainProduct(db)
	if err != nil {
		if fallback {
			c.JSON(http.StatusOK, data.DefaultProduct())
			return
		}
		utils.RespondWithError(c, http.StatusNotFound, "Produit non trouvé")
		return
	}

	var product models.Product
	if err := withPublicRelations(db).First(&product, main.ID).Error; err != nil {
		if fallback {
			c.JSON(http.StatusOK, data.DefaultProduct())
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/products - creates a product (admin).
// Duplicate titles are tolerated; only the title is mandatory.
func CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithErrorDetails(c, http.StatusBadRequest, "Format de données invalide", err.Error())
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Le titre est obligatoire")
		return
	}

	disclaimer := req.Disclaimer
	if disclaimer == "" {
		disclaimer = data.DefaultProduct().Disclaimer
	}

	images := models.StringList(req.Images)
	if images == nil {
		images = models.StringList{}
	}

	product := models.Product{
		Title:          title,
		Subtitle:       req.Subtitle,
		Description:    req.Description,
		TraditionalUse: req.TraditionalUse,
		Disclaimer:     disclaimer,
		MainImage:      req.MainImage,
		Images:         images,
		Price:          req.Price,
		ContactPhone:   req.ContactPhone,
		WhatsappNumber: req.WhatsappNumber,
		Email:          req.Email,
	}

	db := config.GetDB()
	if err := db.Create(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/:id - partial update (admin)
func UpdateProduct(c *gin.Context) {
	db := config.GetDB()

	var product models.Product
	if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Produit non trouvé")
		return
	}

	// Merge the provided fields over the stored row
	id := product.ID
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.RespondWithErrorDetails(c, http.StatusBadRequest, "Format de données invalide", err.Error())
		return
	}
	product.ID = id

	if err := db.Omit("Testimonials", "Galleries").Save(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/:id (admin)
func DeleteProduct(c *gin.Context) {
	db := config.GetDB()

	var product models.Product
	if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Produit non trouvé")
		return
	}

	if err := db.Delete(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé avec succès"})
}
