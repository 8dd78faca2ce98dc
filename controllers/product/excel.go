package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// POST /store/products/import-excel
// Rows with an ID update the matching product; rows without create new
// ones. Imports never touch another store's products.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
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

		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			id := get(0)
			name := get(1)
			nameAr := get(2)
			description := get(3)
			descriptionAr := get(4)
			price, priceErr := strconv.ParseFloat(get(5), 64)
			stock, _ := strconv.Atoi(get(7))
			colors := splitList(get(8))
			sizes := splitList(get(9))
			freeDelivery := get(10) == "true"
			homeDelivery := get(11) != "false"
			deskDelivery := get(12) != "false"
			image := get(13)

			if name == "" || priceErr != nil {
				skippedCount++
				continue
			}

			var discount *float64
			if d, err := strconv.ParseFloat(get(6), 64); err == nil && d > 0 {
				discount = &d
			}

			if id != "" {
				var existing models.Product
				if err := db.Where("id = ? AND store_id = ?", id, store.ID).First(&existing).Error; err != nil {
					skippedCount++
					continue
				}
				existing.Name = name
				existing.NameAr = nameAr
				existing.Description = description
				existing.DescriptionAr = descriptionAr
				existing.Price = price
				existing.DiscountPercentage = discount
				existing.Stock = stock
				existing.Colors = colors
				existing.Sizes = sizes
				existing.IsFreeDelivery = freeDelivery
				existing.IsDeliveryHomeAvailable = homeDelivery
				existing.IsDeliveryDeskAvailable = deskDelivery
				if image != "" {
					existing.ImageURL = image
				}
				if err := db.Save(&existing).Error; err != nil {
					skippedCount++
					continue
				}
				updatedCount++
				continue
			}

			product := models.Product{
				ID:                      uuid.NewString(),
				Name:                    name,
				NameAr:                  nameAr,
				Description:             description,
				DescriptionAr:           descriptionAr,
				Price:                   price,
				DiscountPercentage:      discount,
				Stock:                   stock,
				Colors:                  colors,
				Sizes:                   sizes,
				IsFreeDelivery:          freeDelivery,
				IsDeliveryHomeAvailable: homeDelivery,
				IsDeliveryDeskAvailable: deskDelivery,
				ImageURL:                image,
				StoreID:                 store.ID,
			}
			if err := db.Create(&product).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
