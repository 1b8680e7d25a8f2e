package main

import (
	"log"

	"github.com/nyanga-tradition/yayoh-api/config"
	"github.com/nyanga-tradition/yayoh-api/models"
	"github.com/nyanga-tradition/yayoh-api/routes"
	"github.com/nyanga-tradition/yayoh-api/seed"
	"github.com/nyanga-tradition/yayoh-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting Yayoh story-site API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Product{},
		&models.Testimonial{},
		&models.Gallery{},
		&models.SiteSettings{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Bootstrap default content
	if err := seed.Run(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Initialize the upload relay
	if cfg.MediaConfigured() {
		if _, err := services.InitMediaService(); err != nil {
			log.Fatalf("Failed to initialize media service: %v", err)
		}
		log.Println("Media service initialized")
	} else {
		log.Println("Media host credentials not set, upload relay disabled")
	}

	// Wire routes and start server
	router := routes.SetupRouter(cfg)
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
