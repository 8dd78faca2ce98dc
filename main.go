package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/MarcoMeh/bazar-nour-dz-sub000/models"
	"github.com/MarcoMeh/bazar-nour-dz-sub000/routes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Profile{},
		&models.GuestUser{},
		&models.Wilaya{},
		&models.DeliveryCompany{},
		&models.DeliveryZone{},
		&models.ZoneWilaya{},
		&models.StoreDeliverySetting{},
		&models.StoreDeliveryOverride{},
		&models.Store{},
		&models.StoreRegistrationRequest{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.WishlistItem{},
		&models.PromoCode{},
		&models.Banner{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the wilaya table on every boot; existing rows are left alone.
	if err := models.SeedWilayas(db); err != nil {
		log.Fatalf("❌ Wilaya seed failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// Allow large file uploads (product images, excel imports)
	r.MaxMultipartMemory = 1 << 30 // 1GB

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", "uploads")

	// Setup routes
	routes.SetupRoutes(r, db)

	// Run housekeeping at 2 AM daily
	go startDailyMaintenanceAtFixedTime(db, 2, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// startDailyMaintenanceAtFixedTime runs the housekeeping sweep daily at a fixed hour.
func startDailyMaintenanceAtFixedTime(db *gorm.DB, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next maintenance sweep scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		runMaintenanceSweep(db)
	}
}

// runMaintenanceSweep deactivates stores whose subscription lapsed and
// drops expired guest sessions together with their carts.
func runMaintenanceSweep(db *gorm.DB) {
	now := time.Now()

	res := db.Model(&models.Store{}).
		Where("is_active = ? AND subscription_end_date IS NOT NULL AND subscription_end_date < ?", true, now).
		Update("is_active", false)
	if res.Error != nil {
		log.Printf("❌ Failed to deactivate expired stores: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("🗑️ Deactivated %d store(s) with lapsed subscriptions", res.RowsAffected)
	}

	var expired []models.GuestUser
	if err := db.Where("expires_at < ?", now).Find(&expired).Error; err != nil {
		log.Printf("❌ Failed to list expired guests: %v", err)
		return
	}
	for _, guest := range expired {
		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Where("owner_id = ?", guest.ID).First(&cart).Error; err == nil {
				if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
					return err
				}
				if err := tx.Delete(&cart).Error; err != nil {
					return err
				}
			}
			return tx.Delete(&guest).Error
		})
		if err != nil {
			log.Printf("❌ Failed to remove expired guest %s: %v", guest.ID, err)
		}
	}
	if len(expired) > 0 {
		log.Printf("🗑️ Removed %d expired guest session(s)", len(expired))
	}
}
