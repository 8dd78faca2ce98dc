package models

import "time"

type PromoCode struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Code            string     `gorm:"uniqueIndex;not null" json:"code"`
	DiscountPercent float64    `json:"discount_percent"`
	IsActive        bool       `gorm:"default:true" json:"is_active"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Usable reports whether the code can still be applied at checkout.
func (p PromoCode) Usable(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.ExpiresAt != nil && p.ExpiresAt.Before(now) {
		return false
	}
	return p.DiscountPercent > 0
}
