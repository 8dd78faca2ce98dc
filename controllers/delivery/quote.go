package deliveryControllers

import (
	"net/http"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /wilayas
func GetWilayas(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var wilayas []models.Wilaya
		if err := db.Order("id ASC").Find(&wilayas).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wilayas"})
			return
		}
		c.JSON(http.StatusOK, wilayas)
	}
}

// GET /delivery/quote?store_id=...&wilaya_code=...
func GetDeliveryQuote(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := c.Query("store_id")
		wilayaCode := c.Query("wilaya_code")
		if storeID == "" || wilayaCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "store_id and wilaya_code are required"})
			return
		}

		methods, err := ResolveDeliveryFees(db, storeID, wilayaCode)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve delivery fees"})
			return
		}
		c.JSON(http.StatusOK, methods)
	}
}
