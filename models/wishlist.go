package models

import "time"

// WishlistItem is a product a user saved for later. One row per
// (user, product); adding the same product twice is a no-op.
type WishlistItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"uniqueIndex:idx_user_product;not null" json:"-"`
	ProductID     string    `gorm:"uniqueIndex:idx_user_product;not null" json:"product_id"`
	ProductNameAr string    `json:"product_name_ar"`
	Price         float64   `json:"price"`
	ImageURL      string    `json:"image_url,omitempty"`
	StoreID       string    `json:"store_id"`
	AddedAt       time.Time `json:"added_at"`
}
