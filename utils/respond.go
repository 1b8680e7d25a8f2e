package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondWithError writes the flat error body consumed by the storefront
// and the admin panel: {"error": message}
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// RespondWithErrorDetails attaches the underlying cause to the error body:
// {"error": message, "details": details}
func RespondWithErrorDetails(c *gin.Context, code int, message, details string) {
	c.JSON(code, gin.H{"error": message, "details": details})
}
