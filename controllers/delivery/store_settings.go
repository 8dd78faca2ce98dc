package deliveryControllers

import (
	"errors"
	"net/http"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// storeForOwner resolves the authenticated store owner's store. Handlers
// in the /store group run behind ValidateToken + RequireRole(store_owner),
// so user_id is always present.
func storeForOwner(db *gorm.DB, c *gin.Context) (*models.Store, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	var store models.Store
	if err := db.Where("owner_id = ?", userID).First(&store).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found for this account"})
		return nil, false
	}
	return &store, true
}

// GET /store/delivery/settings
func GetStoreDeliverySettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeForOwner(db, c)
		if !ok {
			return
		}

		var setting models.StoreDeliverySetting
		err := db.Where("store_id = ?", store.ID).First(&setting).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"store_id": store.ID, "company_id": ""})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch delivery settings"})
			return
		}
		c.JSON(http.StatusOK, setting)
	}
}

// PUT /store/delivery/settings
func SetStoreDeliveryCompany(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeForOwner(db, c)
		if !ok {
			return
		}

		var req struct {
			CompanyID string `json:"company_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if req.CompanyID != "" {
			var company models.DeliveryCompany
			if err := db.First(&company, "id = ?", req.CompanyID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown delivery company"})
				return
			}
		}

		setting := models.StoreDeliverySetting{StoreID: store.ID, CompanyID: req.CompanyID}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "store_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"company_id", "updated_at"}),
		}).Create(&setting).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save delivery settings"})
			return
		}
		c.JSON(http.StatusOK, setting)
	}
}

// GET /store/delivery/overrides
func GetStoreOverrides(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeForOwner(db, c)
		if !ok {
			return
		}

		var overrides []models.StoreDeliveryOverride
		if err := db.Where("store_id = ?", store.ID).Order("wilaya_code ASC").Find(&overrides).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch overrides"})
			return
		}
		c.JSON(http.StatusOK, overrides)
	}
}

type OverrideInput struct {
	WilayaCode    string   `json:"wilaya_code" binding:"required"`
	PriceHome     *float64 `json:"price_home"`
	PriceDesk     *float64 `json:"price_desk"`
	IsHomeEnabled *bool    `json:"is_home_enabled"`
	IsDeskEnabled *bool    `json:"is_desk_enabled"`
}

// PUT /store/delivery/overrides
// Creates or replaces the override for one wilaya. At most one row exists
// per (store, wilaya); last write wins on concurrent edits.
func UpsertStoreOverride(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeForOwner(db, c)
		if !ok {
			return
		}

		var input OverrideInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var wilaya models.Wilaya
		if err := db.Where("code = ?", input.WilayaCode).First(&wilaya).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown wilaya code"})
			return
		}

		override := models.StoreDeliveryOverride{
			StoreID:       store.ID,
			WilayaCode:    input.WilayaCode,
			PriceHome:     input.PriceHome,
			PriceDesk:     input.PriceDesk,
			IsHomeEnabled: input.IsHomeEnabled,
			IsDeskEnabled: input.IsDeskEnabled,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "store_id"}, {Name: "wilaya_code"}},
			DoUpdates: clause.AssignmentColumns([]string{"price_home", "price_desk", "is_home_enabled", "is_desk_enabled"}),
		}).Create(&override).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save override"})
			return
		}
		c.JSON(http.StatusOK, override)
	}
}

// DELETE /store/delivery/overrides/:code
func DeleteStoreOverride(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeForOwner(db, c)
		if !ok {
			return
		}

		result := db.Where("store_id = ? AND wilaya_code = ?", store.ID, c.Param("code")).
			Delete(&models.StoreDeliveryOverride{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete override"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Override not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Override deleted"})
	}
}
