package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nyanga-tradition/yayoh-api/config"
	"github.com/nyanga-tradition/yayoh-api/controllers"
	"github.com/nyanga-tradition/yayoh-api/middleware"
	"github.com/nyanga-tradition/yayoh-api/utils"
)

// SetupRouter wires the full HTTP surface: CORS, static uploads, the public
// storefront endpoints, the admin-gated CRUD routes and the upload relay
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// Images/videos held fully in memory before the relay forwards them
	r.MaxMultipartMemory = utils.MaxVideoSize

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	// Locally stored seed assets (avatars, gallery placeholders)
	r.Static("/uploads", cfg.UploadDir)

	r.GET("/api/health", healthCheck)

	admin := r.Group("/api/admin")
	{
		admin.POST("/login", controllers.LoginAdmin)

		admin.Use(middleware.AuthenticateAdmin())
		admin.GET("/profile", controllers.GetAdminProfile)
	}

	products := r.Group("/api/products")
	{
		// Public storefront routes
		products.GET("/main", controllers.GetMainProduct)
		products.GET("/settings/site", controllers.GetSiteSettings)
		products.POST("/testimonials", controllers.AddTestimonial)
		products.GET("/:id", controllers.GetProduct)

		// Admin routes
		auth := products.Group("", middleware.AuthenticateAdmin())
		{
			auth.GET("", controllers.GetAllProducts)
			auth.POST("", controllers.CreateProduct)
			auth.PUT("/:id", controllers.UpdateProduct)
			auth.DELETE("/:id", controllers.DeleteProduct)

			auth.GET("/testimonials/all", controllers.GetAllTestimonials)
			auth.PUT("/testimonials/:id", controllers.UpdateTestimonial)
			auth.PUT("/testimonials/:id/approve", controllers.ApproveTestimonial)
			auth.DELETE("/testimonials/:id", controllers.DeleteTestimonial)

			auth.POST("/gallery", controllers.AddGalleryItem)
			auth.GET("/:id/gallery", controllers.GetGalleryItems)
			auth.PUT("/gallery/:id", controllers.UpdateGalleryItem)
			auth.PUT("/gallery/:id/order", controllers.UpdateGalleryOrder)
			auth.DELETE("/gallery/:id", controllers.DeleteGalleryItem)

			auth.PUT("/settings/site", controllers.UpdateSiteSettings)
			auth.GET("/stats/dashboard", controllers.GetDashboardStats)
		}
	}

	upload := r.Group("/api/upload")
	{
		upload.GET("/test", controllers.UploadTest)

		upload.Use(middleware.AuthenticateAdmin())
		upload.POST("", controllers.UploadImage)
		upload.POST("/images", controllers.UploadImages)
		upload.POST("/multiple", controllers.UploadMultiple)
		upload.POST("/videos", controllers.UploadVideo)
	}

	return r
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
