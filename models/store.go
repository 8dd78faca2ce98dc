package models

import "time"

type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

type Store struct {
	ID                  string     `gorm:"primaryKey" json:"id"`
	Name                string     `gorm:"not null" json:"name"`
	NameAr              string     `json:"name_ar"`
	Description         string     `json:"description,omitempty"`
	ImageURL            string     `json:"image_url,omitempty"`
	Phone               string     `json:"phone,omitempty"`
	OwnerID             string     `gorm:"index;not null" json:"owner_id"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	SubscriptionEndDate *time.Time `json:"subscription_end_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// StoreRegistrationRequest is a seller's application to open a store.
// Admins approve or reject; approval creates the Store and promotes the
// requester to store_owner.
type StoreRegistrationRequest struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	UserID      string             `gorm:"index" json:"user_id"`
	StoreName   string             `gorm:"not null" json:"store_name"`
	OwnerName   string             `json:"owner_name"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	Description string             `json:"description,omitempty"`
	Status      RegistrationStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	ReviewedAt  *time.Time         `json:"reviewed_at,omitempty"`
}
