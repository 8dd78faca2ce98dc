package middleware

import (
	"net/http"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group on the role claim set by ValidateToken.
// Admins pass every gate.
func RequireRole(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, _ := c.Get("role")
		roleStr, _ := raw.(string)

		role, err := models.ParseRole(roleStr)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		if role != required && role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
