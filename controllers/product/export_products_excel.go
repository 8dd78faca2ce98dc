package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /store/products/export-excel
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
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

		var products []models.Product
		if err := db.Where("store_id = ?", store.ID).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "NameAr", "Description", "DescriptionAr",
			"Price", "DiscountPercentage", "Stock", "Colors", "Sizes",
			"IsFreeDelivery", "HomeDelivery", "DeskDelivery", "Image", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.NameAr)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.DescriptionAr)
			row.AddCell().SetValue(p.Price)
			if p.DiscountPercentage != nil {
				row.AddCell().SetValue(*p.DiscountPercentage)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(strings.Join(p.Colors, ","))
			row.AddCell().SetValue(strings.Join(p.Sizes, ","))
			row.AddCell().SetValue(strconv.FormatBool(p.IsFreeDelivery))
			row.AddCell().SetValue(strconv.FormatBool(p.IsDeliveryHomeAvailable))
			row.AddCell().SetValue(strconv.FormatBool(p.IsDeliveryDeskAvailable))
			row.AddCell().SetValue(p.ImageURL)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
