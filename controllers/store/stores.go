package storeControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /stores — active stores, paginated.
func GetStores(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "12"))
		if pageSize < 1 || pageSize > 100 {
			pageSize = 12
		}

		query := db.Model(&models.Store{}).Where("is_active = ?", true)
		if search := c.Query("search"); search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(name) LIKE ? OR LOWER(name_ar) LIKE ?", likePattern, likePattern)
		}

		var totalCount int64
		if err := query.Count(&totalCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count stores"})
			return
		}

		var stores []models.Store
		if err := query.
			Order("created_at DESC").
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&stores).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stores"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"stores":       stores,
			"total_count":  totalCount,
			"current_page": page,
		})
	}
}

// GET /stores/:id
func GetStoreByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var store models.Store
		if err := db.First(&store, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		c.JSON(http.StatusOK, store)
	}
}

// GET /admin/stores — includes inactive stores.
func GetAllStores(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stores []models.Store
		if err := db.Order("created_at DESC").Find(&stores).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stores"})
			return
		}
		c.JSON(http.StatusOK, stores)
	}
}

type StoreUpdateInput struct {
	Name        *string `json:"name"`
	NameAr      *string `json:"name_ar"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Phone       *string `json:"phone"`
}

// PUT /store — the owner edits their own store.
func UpdateOwnStore(db *gorm.DB) gin.HandlerFunc {
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

		var input StoreUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.NameAr != nil {
			updates["name_ar"] = *input.NameAr
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.ImageURL != nil {
			updates["image_url"] = *input.ImageURL
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}

		if len(updates) > 0 {
			if err := db.Model(&store).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update store"})
				return
			}
		}
		c.JSON(http.StatusOK, store)
	}
}

// PUT /admin/stores/:id/active
func SetStoreActive(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IsActive bool `json:"is_active"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		result := db.Model(&models.Store{}).Where("id = ?", c.Param("id")).
			Update("is_active", req.IsActive)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update store"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Store updated"})
	}
}
