package productcontroller

import (
	"net/http"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name                    string   `json:"name" binding:"required"`
	NameAr                  string   `json:"name_ar"`
	Description             string   `json:"description"`
	DescriptionAr           string   `json:"description_ar"`
	Price                   float64  `json:"price" binding:"required,gt=0"`
	DiscountPercentage      *float64 `json:"discount_percentage"`
	ImageURL                string   `json:"image_url"`
	Colors                  []string `json:"colors"`
	Sizes                   []string `json:"sizes"`
	CategoryID              *uint    `json:"category_id"`
	Stock                   int      `json:"stock"`
	IsSoldOut               *bool    `json:"is_sold_out"`
	IsFreeDelivery          *bool    `json:"is_free_delivery"`
	IsDeliveryHomeAvailable *bool    `json:"is_delivery_home_available"`
	IsDeliveryDeskAvailable *bool    `json:"is_delivery_desk_available"`
}

func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// POST /store/products
// Store owners create products on their own store only.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var store models.Store
		if err := db.Where("owner_id = ?", userIDVal).First(&store).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found for this account"})
			return
		}
		if !store.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "Store is inactive"})
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

		product := models.Product{
			ID:                      uuid.NewString(),
			Name:                    input.Name,
			NameAr:                  input.NameAr,
			Description:             input.Description,
			DescriptionAr:           input.DescriptionAr,
			Price:                   input.Price,
			DiscountPercentage:      input.DiscountPercentage,
			ImageURL:                input.ImageURL,
			Colors:                  input.Colors,
			Sizes:                   input.Sizes,
			StoreID:                 store.ID,
			CategoryID:              input.CategoryID,
			Stock:                   input.Stock,
			IsSoldOut:               boolOr(input.IsSoldOut, false),
			IsFreeDelivery:          boolOr(input.IsFreeDelivery, false),
			IsDeliveryHomeAvailable: boolOr(input.IsDeliveryHomeAvailable, true),
			IsDeliveryDeskAvailable: boolOr(input.IsDeliveryDeskAvailable, true),
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
