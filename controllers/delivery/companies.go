package deliveryControllers

import (
	"errors"
	"net/http"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyInput struct {
	Name       string `json:"name" binding:"required"`
	Phone1     string `json:"phone1"`
	Phone2     string `json:"phone2"`
	Phone3     string `json:"phone3"`
	WebsiteURL string `json:"website_url"`
	Address    string `json:"address"`
}

type ZoneInput struct {
	Name      string  `json:"name" binding:"required"`
	PriceHome float64 `json:"price_home"`
	PriceDesk float64 `json:"price_desk"`
}

// GET /admin/delivery/companies
func GetCompanies(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var companies []models.DeliveryCompany
		if err := db.Preload("Zones.Wilayas").Find(&companies).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch delivery companies"})
			return
		}
		c.JSON(http.StatusOK, companies)
	}
}

// POST /admin/delivery/companies
func CreateCompany(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CompanyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		company := models.DeliveryCompany{
			ID:         uuid.NewString(),
			Name:       input.Name,
			Phone1:     input.Phone1,
			Phone2:     input.Phone2,
			Phone3:     input.Phone3,
			WebsiteURL: input.WebsiteURL,
			Address:    input.Address,
		}
		if err := db.Create(&company).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create delivery company"})
			return
		}
		c.JSON(http.StatusCreated, company)
	}
}

// PUT /admin/delivery/companies/:id
func UpdateCompany(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var company models.DeliveryCompany
		if err := db.First(&company, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Delivery company not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		var input CompanyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := models.DeliveryCompany{
			Name:       input.Name,
			Phone1:     input.Phone1,
			Phone2:     input.Phone2,
			Phone3:     input.Phone3,
			WebsiteURL: input.WebsiteURL,
			Address:    input.Address,
		}
		if err := db.Model(&company).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery company"})
			return
		}
		c.JSON(http.StatusOK, company)
	}
}

// DELETE /admin/delivery/companies/:id
func DeleteCompany(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.DeliveryCompany{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete delivery company"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery company not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Delivery company deleted"})
	}
}

// POST /admin/delivery/companies/:id/zones
func CreateZone(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.Param("id")
		var company models.DeliveryCompany
		if err := db.First(&company, "id = ?", companyID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery company not found"})
			return
		}

		var input ZoneInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		zone := models.DeliveryZone{
			ID:        uuid.NewString(),
			CompanyID: companyID,
			Name:      input.Name,
			PriceHome: input.PriceHome,
			PriceDesk: input.PriceDesk,
		}
		if err := db.Create(&zone).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create zone"})
			return
		}
		c.JSON(http.StatusCreated, zone)
	}
}

// PUT /admin/delivery/zones/:id
func UpdateZone(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var zone models.DeliveryZone
		if err := db.First(&zone, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
			return
		}

		var input ZoneInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := db.Model(&zone).Updates(map[string]interface{}{
			"name":       input.Name,
			"price_home": input.PriceHome,
			"price_desk": input.PriceDesk,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update zone"})
			return
		}
		c.JSON(http.StatusOK, zone)
	}
}

// DELETE /admin/delivery/zones/:id
func DeleteZone(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("zone_id = ?", c.Param("id")).Delete(&models.ZoneWilaya{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", c.Param("id")).Delete(&models.DeliveryZone{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete zone"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Zone deleted"})
	}
}

// POST /admin/delivery/zones/:id/wilayas
func AddZoneWilaya(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			WilayaCode string `json:"wilaya_code" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "wilaya_code is required"})
			return
		}

		var wilaya models.Wilaya
		if err := db.Where("code = ?", req.WilayaCode).First(&wilaya).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown wilaya code"})
			return
		}

		membership := models.ZoneWilaya{ZoneID: c.Param("id"), WilayaCode: req.WilayaCode}
		if err := db.Create(&membership).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Wilaya already assigned to this zone"})
			return
		}
		c.JSON(http.StatusCreated, membership)
	}
}

// DELETE /admin/delivery/zones/:id/wilayas/:code
func RemoveZoneWilaya(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("zone_id = ? AND wilaya_code = ?", c.Param("id"), c.Param("code")).
			Delete(&models.ZoneWilaya{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove wilaya from zone"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wilaya not in zone"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Wilaya removed from zone"})
	}
}
