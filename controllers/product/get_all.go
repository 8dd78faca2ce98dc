package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProductsResponse is the paginated listing envelope.
type ProductsResponse struct {
	Products    []models.Product `json:"products"`
	TotalCount  int64            `json:"total_count"`
	TotalPages  int              `json:"total_pages"`
	CurrentPage int              `json:"current_page"`
}

var allowedSortColumns = map[string]bool{
	"created_at": true,
	"price":      true,
	"name":       true,
	"view_count": true,
}

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1️⃣ Filtering & sorting params
		search := c.Query("search")
		categoryID := c.Query("category_id")
		storeID := c.Query("store_id")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		if !allowedSortColumns[sortBy] {
			sortBy = "created_at"
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "12"))
		if pageSize < 1 || pageSize > 100 {
			pageSize = 12
		}

		// 2️⃣ Build base query
		query := db.Model(&models.Product{})

		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where(
				"LOWER(name) LIKE ? OR LOWER(name_ar) LIKE ? OR LOWER(description) LIKE ? OR LOWER(description_ar) LIKE ?",
				likePattern, likePattern, likePattern, likePattern,
			)
		}

		if storeID != "" {
			query = query.Where("store_id = ?", storeID)
		}

		if categoryID != "" {
			if cid, err := strconv.ParseUint(categoryID, 10, 64); err == nil {
				query = query.Where("category_id = ?", uint(cid))
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
		}

		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		// 3️⃣ Delivery / availability filters
		if c.Query("free_delivery") == "true" {
			query = query.Where("is_free_delivery = ?", true)
		}
		if c.Query("home_delivery") == "true" {
			query = query.Where("is_delivery_home_available = ?", true)
		}
		if c.Query("desk_delivery") == "true" {
			query = query.Where("is_delivery_desk_available = ?", true)
		}
		if c.Query("in_stock") == "true" {
			query = query.Where("is_sold_out = ? AND stock > 0", false)
		}
		// Flash-sale curation: only discounted products.
		if c.Query("on_sale") == "true" {
			query = query.Where("discount_percentage IS NOT NULL AND discount_percentage > 0")
		}

		// 4️⃣ Count, then page
		var totalCount int64
		if err := query.Count(&totalCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var products []models.Product
		if err := query.
			Order(sortBy + " " + sortOrder).
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))
		c.JSON(http.StatusOK, ProductsResponse{
			Products:    products,
			TotalCount:  totalCount,
			TotalPages:  totalPages,
			CurrentPage: page,
		})
	}
}
