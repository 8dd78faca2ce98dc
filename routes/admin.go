package routes

import (
	adminController "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/admin"
	cartControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/cart"
	deliveryControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/delivery"
	orderControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/order"
	productcontroller "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/product"
	promoControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/promo"
	storeControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/store"
	userControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/user"
	"github.com/MarcoMeh/bazar-nour-dz-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllProfiles(db))

		// ─────────── Store Management ───────────
		storeAdmin := adminGroup.Group("/stores")
		{
			storeAdmin.GET("", storeControllers.GetAllStores(db))
			storeAdmin.PUT("/:id/active", storeControllers.SetStoreActive(db))
		}

		// ─────────── Store Registration Workflow ───────────
		regAdmin := adminGroup.Group("/store-registrations")
		{
			regAdmin.GET("", adminController.ListRegistrations(db))
			regAdmin.POST("/:id/approve", adminController.ApproveRegistration(db))
			regAdmin.POST("/:id/reject", adminController.RejectRegistration(db))
		}

		// ─────────── Delivery Companies & Zones ───────────
		deliveryAdmin := adminGroup.Group("/delivery")
		{
			deliveryAdmin.GET("/companies", deliveryControllers.GetCompanies(db))
			deliveryAdmin.POST("/companies", deliveryControllers.CreateCompany(db))
			deliveryAdmin.PUT("/companies/:id", deliveryControllers.UpdateCompany(db))
			deliveryAdmin.DELETE("/companies/:id", deliveryControllers.DeleteCompany(db))

			deliveryAdmin.POST("/companies/:id/zones", deliveryControllers.CreateZone(db))
			deliveryAdmin.PUT("/zones/:id", deliveryControllers.UpdateZone(db))
			deliveryAdmin.DELETE("/zones/:id", deliveryControllers.DeleteZone(db))
			deliveryAdmin.POST("/zones/:id/wilayas", deliveryControllers.AddZoneWilaya(db))
			deliveryAdmin.DELETE("/zones/:id/wilayas/:code", deliveryControllers.RemoveZoneWilaya(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}

		// ─────────── Promo Codes ───────────
		promoAdmin := adminGroup.Group("/promo-codes")
		{
			promoAdmin.GET("", promoControllers.GetPromoCodes(db))
			promoAdmin.POST("", promoControllers.CreatePromoCode(db))
			promoAdmin.PUT("/:id", promoControllers.UpdatePromoCode(db))
			promoAdmin.DELETE("/:id", promoControllers.DeletePromoCode(db))
		}

		bannerMgmt := adminGroup.Group("/banner")
		{
			bannerMgmt.POST("/upload", adminController.UploadBanner(db))
			bannerMgmt.GET("/", adminController.GetBanners(db))
			bannerMgmt.DELETE("/:id", adminController.DeleteBanner(db))
		}
		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:owner_id", cartControllers.GetAdminUserCart(db))
		}
	}
}
