package promoControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PromoInput struct {
	Code            string     `json:"code" binding:"required"`
	DiscountPercent float64    `json:"discount_percent" binding:"required,gt=0,lte=100"`
	IsActive        *bool      `json:"is_active"`
	ExpiresAt       *time.Time `json:"expires_at"`
}

// GET /admin/promo-codes
func GetPromoCodes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var codes []models.PromoCode
		if err := db.Order("created_at DESC").Find(&codes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promo codes"})
			return
		}
		c.JSON(http.StatusOK, codes)
	}
}

// POST /admin/promo-codes
func CreatePromoCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PromoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		active := true
		if input.IsActive != nil {
			active = *input.IsActive
		}

		code := models.PromoCode{
			Code:            strings.ToUpper(strings.TrimSpace(input.Code)),
			DiscountPercent: input.DiscountPercent,
			IsActive:        active,
			ExpiresAt:       input.ExpiresAt,
		}
		if err := db.Create(&code).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Promo code already exists"})
			return
		}
		c.JSON(http.StatusCreated, code)
	}
}

// PUT /admin/promo-codes/:id
func UpdatePromoCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var code models.PromoCode
		if err := db.First(&code, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promo code not found"})
			return
		}

		var input PromoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		code.Code = strings.ToUpper(strings.TrimSpace(input.Code))
		code.DiscountPercent = input.DiscountPercent
		if input.IsActive != nil {
			code.IsActive = *input.IsActive
		}
		code.ExpiresAt = input.ExpiresAt

		if err := db.Save(&code).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update promo code"})
			return
		}
		c.JSON(http.StatusOK, code)
	}
}

// DELETE /admin/promo-codes/:id
func DeletePromoCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.PromoCode{}, c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promo code"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promo code not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Promo code deleted"})
	}
}

// GET /promo-codes/validate?code=...
func ValidatePromoCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.ToUpper(strings.TrimSpace(c.Query("code")))
		if raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
			return
		}

		var code models.PromoCode
		err := db.Where("code = ?", raw).First(&code).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"valid": false, "error": "Promo code not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if !code.Usable(time.Now()) {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Promo code expired or inactive"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"valid": true, "discount_percent": code.DiscountPercent})
	}
}
