package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity"`
	Color     *string `json:"color"`
	Size      *string `json:"size"`
}

type QuantityInput struct {
	Quantity int `json:"quantity"`
}

// CartSummary is the cart plus its derived totals.
type CartSummary struct {
	Items           []models.CartItem `json:"items"`
	StoreID         *string           `json:"store_id,omitempty"`
	TotalItems      int               `json:"total_items"`
	TotalPrice      float64           `json:"total_price"`
	HasFreeDelivery bool              `json:"has_free_delivery"`
}

// Summarize computes the derived cart values. Free delivery holds only
// when every line carries the flag; an empty cart never qualifies.
func Summarize(cart *models.Cart) CartSummary {
	summary := CartSummary{
		Items:           cart.Items,
		StoreID:         cart.StoreID,
		HasFreeDelivery: len(cart.Items) > 0,
	}
	for _, item := range cart.Items {
		summary.TotalItems += item.Quantity
		summary.TotalPrice += item.Price * float64(item.Quantity)
		if !item.IsFreeDelivery {
			summary.HasFreeDelivery = false
		}
	}
	return summary
}

// GetOrCreateCart loads the owner's cart with its items, creating an
// empty one on first use.
func GetOrCreateCart(db *gorm.DB, ownerID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("owner_id = ?", ownerID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{OwnerID: ownerID}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func variantKey(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// AddItem inserts a product selection into the owner's cart. A line with
// the same product, color and size only gets its quantity bumped; any
// other combination becomes a new line with a fresh line id. The first
// item carrying a store id designates the cart's owning store.
func AddItem(db *gorm.DB, ownerID string, input AddItemInput) (*models.CartItem, error) {
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	var product models.Product
	if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product does not exist")
		}
		return nil, err
	}
	if product.IsSoldOut {
		return nil, errors.New("product is sold out")
	}

	cart, err := GetOrCreateCart(db, ownerID)
	if err != nil {
		return nil, err
	}

	for i := range cart.Items {
		existing := &cart.Items[i]
		if existing.ProductID == input.ProductID &&
			variantKey(existing.Color) == variantKey(input.Color) &&
			variantKey(existing.Size) == variantKey(input.Size) {
			existing.Quantity += input.Quantity
			existing.AddedAt = time.Now()
			if err := db.Save(existing).Error; err != nil {
				return nil, err
			}
			return existing, nil
		}
	}

	item := models.CartItem{
		CartID:          cart.CartID,
		LineID:          uuid.NewString(),
		ProductID:       product.ID,
		ProductName:     product.Name,
		ProductNameAr:   product.NameAr,
		ProductImage:    product.ImageURL,
		Price:           product.Price,
		Quantity:        input.Quantity,
		Color:           input.Color,
		Size:            input.Size,
		StoreID:         product.StoreID,
		IsFreeDelivery:  product.IsFreeDelivery,
		IsHomeAvailable: product.IsDeliveryHomeAvailable,
		IsDeskAvailable: product.IsDeliveryDeskAvailable,
		AddedAt:         time.Now(),
	}
	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}

	// First store wins: adopt the item's store when the cart has none.
	if cart.StoreID == nil && product.StoreID != "" {
		if err := db.Model(cart).Update("store_id", product.StoreID).Error; err != nil {
			return nil, err
		}
	}

	return &item, nil
}

func ownerID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userIDVal.(string), true
}

// GET /user/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			return
		}

		cart, err := GetOrCreateCart(db, owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, Summarize(cart))
	}
}

// POST /user/cart
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := AddItem(db, owner, input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /user/cart/:line_id
// Setting quantity to zero or below removes the line.
func UpdateCartItemQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			return
		}
		lineID := c.Param("line_id")

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := GetOrCreateCart(db, owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		if input.Quantity <= 0 {
			db.Where("cart_id = ? AND line_id = ?", cart.CartID, lineID).Delete(&models.CartItem{})
			c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
			return
		}

		result := db.Model(&models.CartItem{}).
			Where("cart_id = ? AND line_id = ?", cart.CartID, lineID).
			Update("quantity", input.Quantity)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Quantity updated"})
	}
}

// DELETE /user/cart/:line_id
// Removal is idempotent: deleting an absent line is not an error.
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			return
		}

		cart, err := GetOrCreateCart(db, owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		if err := db.Where("cart_id = ? AND line_id = ?", cart.CartID, c.Param("line_id")).
			Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// ClearCart empties the owner's cart and drops its store designation.
func ClearCart(db *gorm.DB, ownerID string) error {
	var cart models.Cart
	err := db.Where("owner_id = ?", ownerID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&cart).Update("store_id", nil).Error
	})
}

// DELETE /user/cart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			return
		}

		if err := ClearCart(db, owner); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/user-cart/:owner_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.Param("owner_id")
		if owner == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "owner_id is required"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("owner_id = ?", owner).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		c.JSON(http.StatusOK, Summarize(&cart))
	}
}
