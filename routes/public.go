package routes

import (
	adminController "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/admin"
	deliveryControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/delivery"
	orderControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/order"
	productcontroller "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/product"
	promoControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/promo"
	storeControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the storefront endpoints. No middleware: these
// back the catalog pages a visitor sees before signing in.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Wilayas & Delivery ────────────────
	r.GET("/wilayas", deliveryControllers.GetWilayas(db))
	r.GET("/delivery/quote", deliveryControllers.GetDeliveryQuote(db))

	// ──────────────── Catalog ────────────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))
	r.GET("/categories/with-products", productcontroller.GetAllCategoriesWithProducts(db))

	// ──────────────── Stores ────────────────
	r.GET("/stores", storeControllers.GetStores(db))
	r.GET("/stores/:id", storeControllers.GetStoreByID(db))

	// ──────────────── Banners & Promo ────────────────
	r.GET("/banners", adminController.GetBanners(db))
	r.GET("/promo-codes/validate", promoControllers.ValidatePromoCode(db))

	// ──────────────── Order tracking ────────────────
	r.GET("/orders/track/:orderID", orderControllers.GetOrderByIDHandler(db))

	// websocket endpoint for real-time order updates
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
}
