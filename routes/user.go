package routes

import (
	adminController "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/admin"
	cartControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/cart"
	orderControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/order"
	userControllers "github.com/MarcoMeh/bazar-nour-dz-sub000/controllers/user"
	"github.com/MarcoMeh/bazar-nour-dz-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware;
// guest tokens pass too, which is what lets an anonymous visitor carry a cart
// and place an order.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", userControllers.GetProfile(db))
		userGroup.PUT("/", userControllers.UpdateProfile(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(db))
			cartGroup.POST("/", cartControllers.AddCartItem(db))
			cartGroup.PUT("/:line_id", cartControllers.UpdateCartItemQuantity(db))
			cartGroup.DELETE("/:line_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearCartHandler(db))
		}

		// ──────────────── Checkout ────────────────
		userGroup.POST("/checkout", orderControllers.CheckoutHandler(db))
		userGroup.POST("/checkout/whatsapp", orderControllers.WhatsAppOrderHandler(db))
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(db))

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", userControllers.GetWishlist(db))
			wishlistGroup.POST("/", userControllers.AddToWishlist(db))
			wishlistGroup.DELETE("/:product_id", userControllers.RemoveFromWishlist(db))
			wishlistGroup.DELETE("/", userControllers.ClearWishlist(db))
		}

		// ──────────────── Store Registration ────────────────
		userGroup.POST("/store-registrations", adminController.SubmitRegistration(db))
	}
}
