package adminController

import (
	"errors"
	"net/http"
	"time"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegistrationInput struct {
	StoreName   string `json:"store_name" binding:"required"`
	OwnerName   string `json:"owner_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Description string `json:"description"`
}

// POST /auth/register-store
// A signed-in customer applies to open a store; the request waits for an
// admin decision.
func SubmitRegistration(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input RegistrationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var pending models.StoreRegistrationRequest
		err := db.Where("user_id = ? AND status = ?", userID, models.RegistrationPending).
			First(&pending).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "A pending registration already exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		request := models.StoreRegistrationRequest{
			UserID:      userID,
			StoreName:   input.StoreName,
			OwnerName:   input.OwnerName,
			Email:       input.Email,
			Phone:       input.Phone,
			Description: input.Description,
			Status:      models.RegistrationPending,
		}
		if err := db.Create(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit registration"})
			return
		}
		c.JSON(http.StatusCreated, request)
	}
}

// GET /admin/registrations?status=pending
func ListRegistrations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.StoreRegistrationRequest{})
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var requests []models.StoreRegistrationRequest
		if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch registrations"})
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

// POST /admin/registrations/:id/approve
// Creates the store and promotes the requester to store_owner, in one
// transaction.
func ApproveRegistration(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.StoreRegistrationRequest
		if err := db.First(&request, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
			return
		}
		if request.Status != models.RegistrationPending {
			c.JSON(http.StatusConflict, gin.H{"error": "Registration already reviewed"})
			return
		}

		store := models.Store{
			ID:       uuid.NewString(),
			Name:     request.StoreName,
			Phone:    request.Phone,
			OwnerID:  request.UserID,
			IsActive: true,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&store).Error; err != nil {
				return err
			}
			now := time.Now()
			if err := tx.Model(&request).Updates(map[string]interface{}{
				"status":      models.RegistrationApproved,
				"reviewed_at": now,
			}).Error; err != nil {
				return err
			}
			return tx.Model(&models.Profile{}).Where("id = ?", request.UserID).
				Update("role", models.RoleStoreOwner).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve registration"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Registration approved", "store": store})
	}
}

// POST /admin/registrations/:id/reject
func RejectRegistration(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.StoreRegistrationRequest
		if err := db.First(&request, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
			return
		}
		if request.Status != models.RegistrationPending {
			c.JSON(http.StatusConflict, gin.H{"error": "Registration already reviewed"})
			return
		}

		now := time.Now()
		if err := db.Model(&request).Updates(map[string]interface{}{
			"status":      models.RegistrationRejected,
			"reviewed_at": now,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject registration"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Registration rejected"})
	}
}
