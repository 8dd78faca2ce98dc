package adminController

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const bannerUploadDir = "uploads/banners"
const bannerPublicPath = "/uploads/banners"

// UploadBanner - Save image locally and store its URL in DB
func UploadBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}

		if err := os.MkdirAll(bannerUploadDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		ext := filepath.Ext(fileHeader.Filename)
		base := strings.TrimSuffix(filepath.Base(fileHeader.Filename), ext)
		base = strings.ReplaceAll(base, " ", "_")

		newFileName := fmt.Sprintf("%d_%s%s", time.Now().Unix(), base, ext)
		savePath := filepath.Join(bannerUploadDir, newFileName)

		if err := c.SaveUploadedFile(fileHeader, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		banner := models.Banner{
			ImageURL: fmt.Sprintf("%s/%s", bannerPublicPath, newFileName),
			LinkURL:  c.PostForm("link_url"),
		}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB save failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Banner uploaded", "data": banner})
	}
}

// GetBanners - List banners
func GetBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Order("created_at DESC").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// DeleteBanner - Delete both DB record & local file
func DeleteBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.Banner
		if err := db.First(&banner, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if banner.ImageURL != "" {
			localPath := strings.TrimPrefix(banner.ImageURL, "/")
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
				return
			}
		}

		if err := db.Delete(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete from database"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
	}
}
