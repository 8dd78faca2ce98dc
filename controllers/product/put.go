package productcontroller

import (
	"errors"
	"net/http"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ownedProduct loads a product and checks the caller may edit it: admins
// (API-key routes set no user_id) edit anything, store owners only their
// own store's products.
func ownedProduct(db *gorm.DB, c *gin.Context) (*models.Product, bool) {
	var product models.Product
	if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return nil, false
	}

	if userIDVal, exists := c.Get("user_id"); exists {
		var store models.Store
		if err := db.Where("owner_id = ?", userIDVal).First(&store).Error; err != nil || store.ID != product.StoreID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Product belongs to another store"})
			return nil, false
		}
	}
	return &product, true
}

// PUT /store/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := ownedProduct(db, c)
		if !ok {
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
				return
			}
		}

		product.Name = input.Name
		product.NameAr = input.NameAr
		product.Description = input.Description
		product.DescriptionAr = input.DescriptionAr
		product.Price = input.Price
		product.DiscountPercentage = input.DiscountPercentage
		if input.ImageURL != "" {
			product.ImageURL = input.ImageURL
		}
		product.Colors = input.Colors
		product.Sizes = input.Sizes
		product.CategoryID = input.CategoryID
		product.Stock = input.Stock
		product.IsSoldOut = boolOr(input.IsSoldOut, product.IsSoldOut)
		product.IsFreeDelivery = boolOr(input.IsFreeDelivery, product.IsFreeDelivery)
		// Home and desk availability are independent toggles.
		product.IsDeliveryHomeAvailable = boolOr(input.IsDeliveryHomeAvailable, product.IsDeliveryHomeAvailable)
		product.IsDeliveryDeskAvailable = boolOr(input.IsDeliveryDeskAvailable, product.IsDeliveryDeskAvailable)

		if err := db.Save(product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
