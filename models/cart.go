package models

import "time"

// Cart is the server-held shopping session. OwnerID is either a signed-in
// user id or a guest session id; there is exactly one cart per owner.
// StoreID is the cart's owning store, adopted from the first item that
// carries one and cleared when the cart is cleared.
type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	OwnerID   string     `gorm:"uniqueIndex;not null" json:"owner_id"`
	StoreID   *string    `json:"store_id,omitempty"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one variant selection. LineID stays unique within the cart
// no matter how many times the same product is added with different
// color/size combinations.
type CartItem struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	CartID          uint      `gorm:"index" json:"-"`
	LineID          string    `gorm:"uniqueIndex;not null" json:"line_id"`
	ProductID       string    `gorm:"not null" json:"product_id"`
	ProductName     string    `json:"product_name"`
	ProductNameAr   string    `json:"product_name_ar"`
	ProductImage    string    `json:"product_image,omitempty"`
	Price           float64   `json:"price"`
	Quantity        int       `json:"quantity"`
	Color           *string   `json:"color,omitempty"`
	Size            *string   `json:"size,omitempty"`
	StoreID         string    `json:"store_id"`
	IsFreeDelivery  bool      `json:"is_free_delivery"`
	IsHomeAvailable bool      `gorm:"default:true" json:"is_home_available"`
	IsDeskAvailable bool      `gorm:"default:true" json:"is_desk_available"`
	AddedAt         time.Time `json:"added_at"`
}
