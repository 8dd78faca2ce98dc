package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID                      string         `gorm:"primaryKey" json:"id"`
	Name                    string         `gorm:"not null" json:"name"`
	NameAr                  string         `json:"name_ar"`
	Description             string         `json:"description,omitempty"`
	DescriptionAr           string         `json:"description_ar,omitempty"`
	Price                   float64        `gorm:"not null" json:"price"`
	DiscountPercentage      *float64       `json:"discount_percentage,omitempty"`
	ImageURL                string         `json:"image_url,omitempty"`
	Colors                  []string       `gorm:"serializer:json" json:"colors,omitempty"`
	Sizes                   []string       `gorm:"serializer:json" json:"sizes,omitempty"`
	StoreID                 string         `gorm:"index;not null" json:"store_id"`
	CategoryID              *uint          `gorm:"index" json:"category_id,omitempty"`
	Stock                   int            `json:"stock"`
	IsSoldOut               bool           `json:"is_sold_out"`
	IsFreeDelivery          bool           `json:"is_free_delivery"`
	IsDeliveryHomeAvailable bool           `gorm:"default:true" json:"is_delivery_home_available"`
	IsDeliveryDeskAvailable bool           `gorm:"default:true" json:"is_delivery_desk_available"`
	ViewCount               int            `json:"view_count"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
	DeletedAt               gorm.DeletedAt `gorm:"index" json:"-"`
}
