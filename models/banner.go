package models

import "time"

// Banner is a promotional image surfaced in the storefront carousel.
type Banner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	LinkURL   string    `json:"link_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
