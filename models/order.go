package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by the store
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the parcel
	OrderStatusReturned  OrderStatus = "returned"  // Customer returned the parcel
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping
)

// Delivery options as stored on orders.
const (
	DeliveryOptionHome = "home"
	DeliveryOptionDesk = "desktop"
)

type Order struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	OrderRef       string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	StoreID        *string     `gorm:"index" json:"store_id"`
	StoreIDs       []string    `gorm:"serializer:json" json:"store_ids"`
	UserID         *string     `gorm:"index" json:"user_id"`
	WilayaID       uint        `json:"wilaya_id"`
	FullName       string      `gorm:"not null" json:"full_name"`
	Phone          string      `gorm:"not null" json:"phone"`
	Address        string      `json:"address"`
	DeliveryOption string      `json:"delivery_option"`
	TotalPrice     float64     `json:"total_price"`
	DeliveryPrice  float64     `json:"delivery_price"`
	Status         OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items          []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt      time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	OrderID       uint    `gorm:"index" json:"-"`
	ProductID     string  `gorm:"not null" json:"product_id"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	SelectedColor *string `json:"selected_color,omitempty"`
	SelectedSize  *string `json:"selected_size,omitempty"`
	StoreID       string  `gorm:"index" json:"store_id"`
}
