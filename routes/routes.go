package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry‐point that wires up Public, Auth, User,
// Store and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// 1️⃣ Public storefront routes (no middleware)
	SetupPublicRoutes(r, db)

	// 2️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 3️⃣ Customer routes (JWT‐protected)
	SetupUserRoutes(r, db)

	// 4️⃣ Store owner routes (JWT + role)
	SetupStoreRoutes(r, db)

	// 5️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, db)
}
