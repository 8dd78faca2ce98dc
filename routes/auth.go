package routes

import (
	"github.com/MarcoMeh/bazar-nour-dz-sub000/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		// Customer Google login
		authGroup.POST("/google-user", func(c *gin.Context) {
			auth.GoogleUserLoginHandler(c.Writer, c.Request, db)
		})

		// Admin / store owner Google login (wrapped as a Gin handler)
		authGroup.POST("/google-staff", func(c *gin.Context) {
			auth.GoogleStaffLoginHandler(c.Writer, c.Request, db)
		})

		authGroup.POST("/guest", auth.CreateGuestUser(db))
	}
}
