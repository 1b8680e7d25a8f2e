package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/nyanga-tradition/yayoh-api/config"
	"github.com/nyanga-tradition/yayoh-api/models"
	"github.com/nyanga-tradition/yayoh-api/utils"
)

// DashboardStats are the aggregate counts shown by the admin dashboard
type DashboardStats struct {
	Products             int64 `json:"products"`
	Testimonials         int64 `json:"testimonials"`
	ApprovedTestimonials int64 `json:"approvedTestimonials"`
	PendingTestimonials  int64 `json:"pendingTestimonials"`
	GalleryItems         int64 `json:"galleryItems"`
}

// GetDashboardStats handles GET /api/products/stats/dashboard (admin).
// The four count queries run concurrently; any failure fails the request.
func GetDashboardStats(c *gin.Context) {
	db := config.GetDB()

	var stats DashboardStats
	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		return db.WithContext(ctx).Model(&models.Product{}).Count(&stats.Products).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Model(&models.Testimonial{}).Count(&stats.Testimonials).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Model(&models.Testimonial{}).
			Where("approved = ?", true).
			Count(&stats.ApprovedTestimonials).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Model(&models.Gallery{}).Count(&stats.GalleryItems).Error
	})

	if err := g.Wait(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	stats.PendingTestimonials = stats.Testimonials - stats.ApprovedTestimonials

	c.JSON(http.StatusOK, stats)
}
