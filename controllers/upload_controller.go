package controllers

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/nyanga-tradition/yayoh-api/config"
	"github.com/nyanga-tradition/yayoh-api/services"
	"github.com/nyanga-tradition/yayoh-api/utils"
)

// Media host folders, one per upload route
const (
	galleryFolder   = "yayoh-sante/gallery"
	productsFolder  = "yayoh-sante/products"
	mainImageFolder = "yayoh-sante/products/main"
	videosFolder    = "yayoh-sante/videos"
)

// requireMediaService responds with a 500 when the relay is not configured
func requireMediaService(c *gin.Context) services.MediaService {
	media := services.GetMediaService()
	if media == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Service média non configuré",
		})
	}
	return media
}

// UploadImage handles POST /api/upload - single image, field "image"
func UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Aucun fichier reçu. Assurez-vous que le champ FormData s'appelle \"image\"",
		})
		return
	}

	if err := utils.ValidateImageFile(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	media := requireMediaService(c)
	if media == nil {
		return
	}

	result, err := media.UploadFile(fileHeader, galleryFolder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erreur lors de l'upload",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     result.URL,
		"key":     result.Key,
		"message": "Image uploadée avec succès",
	})
}

// UploadImages handles POST /api/upload/images - up to 10 images, field "images"
func UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Aucune image fournie"})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Aucune image fournie"})
		return
	}
	if len(files) > utils.MaxFilesPerRequest {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Trop de fichiers"})
		return
	}

	for _, fileHeader := range files {
		if err := utils.ValidateImageFile(fileHeader); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
	}

	if requireMediaService(c) == nil {
		return
	}

	urls, err := uploadAll(files, productsFolder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erreur lors de l'upload multiple",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"urls":    urls,
		"count":   len(urls),
	})
}

// UploadMultiple handles POST /api/upload/multiple - named fields
// "mainImage" (1) and "galleryImages" (up to 10)
func UploadMultiple(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Aucun fichier reçu"})
		return
	}

	urls := gin.H{}
	media := requireMediaService(c)
	if media == nil {
		return
	}

	if mainImages := form.File["mainImage"]; len(mainImages) > 0 {
		if err := utils.ValidateImageFile(mainImages[0]); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		result, err := media.UploadFile(mainImages[0], mainImageFolder)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		urls["mainImage"] = result.URL
	}

	if galleryImages := form.File["galleryImages"]; len(galleryImages) > 0 {
		if len(galleryImages) > utils.MaxFilesPerRequest {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Trop de fichiers"})
			return
		}
		for _, fileHeader := range galleryImages {
			if err := utils.ValidateImageFile(fileHeader); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return
			}
		}
		galleryURLs, err := uploadAll(galleryImages, galleryFolder)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		urls["galleryImages"] = galleryURLs
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Images uploadées",
		"urls":    urls,
	})
}

// UploadVideo handles POST /api/upload/videos - single video, field "video"
func UploadVideo(c *gin.Context) {
	fileHeader, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Aucune vidéo fournie"})
		return
	}

	if err := utils.ValidateVideoFile(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
			"details": "Veuillez uploader un fichier vidéo (MP4, MOV, etc.)",
		})
		return
	}

	media := requireMediaService(c)
	if media == nil {
		return
	}

	result, err := media.UploadFile(fileHeader, videosFolder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erreur d'upload",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"video": gin.H{
			"url":    result.URL,
			"key":    result.Key,
			"format": result.Format,
		},
		"message": "Vidéo uploadée",
	})
}

// UploadTest handles GET /api/upload/test - liveness probe for the relay
func UploadTest(c *gin.Context) {
	cfg := config.GetConfig()
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"message":          "Route upload fonctionnelle",
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
		"media_configured": cfg != nil && cfg.MediaConfigured(),
	})
}

// uploadAll forwards a batch of files to the media host concurrently,
// preserving input order. Any failure fails the batch.
func uploadAll(files []*multipart.FileHeader, folder string) ([]string, error) {
	media := services.GetMediaService()
	urls := make([]string, len(files))

	var g errgroup.Group
	for i, fileHeader := range files {
		i, fileHeader := i, fileHeader
		g.Go(func() error {
			result, err := media.UploadFile(fileHeader, folder)
			if err != nil {
				return err
			}
			urls[i] = result.URL
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
