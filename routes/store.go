package routes

import (
	deliveryControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/delivery"
	orderControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/order"
	productcontroller "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/product"
	storeControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/store"
	"github.com/MarcoMeh/bazar-nour-dz-sub000/middleware"
	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupStoreRoutes registers all “/store/*” endpoints for store owners.
// Requires JWT middleware plus the store_owner role.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	storeGroup := r.Group("/store")
	storeGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleStoreOwner))
	{
		// ──────────────── Own Store ────────────────
		storeGroup.PUT("/", storeControllers.UpdateOwnStore(db))

		// ──────────────── Product Management ────────────────
		products := storeGroup.Group("/products")
		{
			products.POST("", productcontroller.CreateProduct(db))
			products.PUT("/:id", productcontroller.UpdateProduct(db))
			products.DELETE("/:id", productcontroller.DeleteProduct(db))
			products.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			products.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ──────────────── Delivery Settings ────────────────
		delivery := storeGroup.Group("/delivery")
		{
			delivery.GET("/settings", deliveryControllers.GetStoreDeliverySettings(db))
			delivery.PUT("/settings", deliveryControllers.SetStoreDeliveryCompany(db))
			delivery.GET("/overrides", deliveryControllers.GetStoreOverrides(db))
			delivery.PUT("/overrides", deliveryControllers.UpsertStoreOverride(db))
			delivery.DELETE("/overrides/:code", deliveryControllers.DeleteStoreOverride(db))
		}

		// ──────────────── Orders ────────────────
		storeGroup.GET("/orders", orderControllers.GetStoreOrdersHandler(db))
		storeGroup.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
	}
}
