package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nyanga-tradition/yayoh-api/utils"
)

const (
	contextAdminID    = "admin_id"
	contextAdminEmail = "admin_email"
	contextAdminRole  = "admin_role"
)

// AuthenticateAdmin verifies the bearer token of admin-gated routes and
// attaches the decoded admin identity to the request context
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token manquant"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token invalide"})
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token invalide ou expiré"})
			return
		}

		c.Set(contextAdminID, claims.AdminID)
		c.Set(contextAdminEmail, claims.Email)
		c.Set(contextAdminRole, claims.Role)

		c.Next()
	}
}

// GetAdminID extracts the authenticated admin's id from the Gin context
func GetAdminID(c *gin.Context) (uint, error) {
	value, exists := c.Get(contextAdminID)
	if !exists {
		return 0, &AuthError{Code: "MISSING_ADMIN_ID", Message: "Admin ID not found in context"}
	}

	id, ok := value.(uint)
	if !ok {
		return 0, &AuthError{Code: "INVALID_ADMIN_ID", Message: "Admin ID has unexpected type"}
	}

	return id, nil
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
