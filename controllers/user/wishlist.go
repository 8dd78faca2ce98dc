package userControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WishlistInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GET /user/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		var items []models.WishlistItem
		if err := db.Where("user_id = ?", userID).Order("added_at DESC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /user/wishlist
// Adding a product already present is a no-op, not an error.
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		var existing models.WishlistItem
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusOK, existing)
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		item := models.WishlistItem{
			UserID:        userID.(string),
			ProductID:     product.ID,
			ProductNameAr: product.NameAr,
			Price:         product.Price,
			ImageURL:      product.ImageURL,
			StoreID:       product.StoreID,
			AddedAt:       time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /user/wishlist/:product_id
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		result := db.Where("user_id = ? AND product_id = ?", userID, c.Param("product_id")).
			Delete(&models.WishlistItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
	}
}

// DELETE /user/wishlist
func ClearWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		if err := db.Where("user_id = ?", userID).Delete(&models.WishlistItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Wishlist cleared"})
	}
}
