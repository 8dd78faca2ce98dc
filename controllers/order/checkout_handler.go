package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := Checkout(db, userIDVal.(string), req)
		if err != nil {
			status := http.StatusBadRequest
			if !isValidationError(err) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":   "Order placed successfully",
			"order_ref": order.OrderRef,
			"order":     order,
		})
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrMultiStoreCart) ||
		errors.Is(err, ErrMissingContact) ||
		errors.Is(err, ErrDeliveryBlocked) ||
		errors.Is(err, ErrMethodDisabled) ||
		strings.Contains(err.Error(), "insufficient stock") ||
		strings.Contains(err.Error(), "promo code") ||
		strings.Contains(err.Error(), "unknown wilaya")
}

type WhatsAppRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	WilayaID uint   `json:"wilaya_id"`
}

// POST /checkout/whatsapp
// Manual fallback: composes a prefilled message for the store's WhatsApp
// instead of submitting a structured order. Only name and phone are
// required.
func WhatsAppOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req WhatsAppRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "full_name and phone are required"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("owner_id = ?", userIDVal.(string)).First(&cart).Error; err != nil || len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": ErrEmptyCart.Error()})
			return
		}

		storePhone := ""
		if cart.StoreID != nil {
			var store models.Store
			if err := db.First(&store, "id = ?", *cart.StoreID).Error; err == nil {
				storePhone = store.Phone
			}
		}

		wilayaName := AddressUnspecified
		if req.WilayaID != 0 {
			var wilaya models.Wilaya
			if err := db.First(&wilaya, req.WilayaID).Error; err == nil {
				wilayaName = wilaya.NameAr
			}
		}

		var lines []string
		lines = append(lines, "مرحباً، أود طلب المنتجات التالية:")
		for _, item := range cart.Items {
			lines = append(lines, fmt.Sprintf("- %s (x%d)", item.ProductNameAr, item.Quantity))
		}
		lines = append(lines,
			"الاسم: "+req.FullName,
			"الهاتف: "+req.Phone,
			"الولاية: "+wilayaName,
		)
		message := strings.Join(lines, "\n")

		c.JSON(http.StatusOK, gin.H{
			"message":      message,
			"whatsapp_url": "https://wa.me/" + storePhone + "?text=" + url.QueryEscape(message),
		})
	}
}
