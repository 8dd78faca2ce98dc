package models

import (
	"errors"
	"time"
)

// Role decides which route tree a signed-in user may enter.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleStoreOwner Role = "store_owner"
	RoleCustomer   Role = "customer"
)

var ErrInvalidRole = errors.New("invalid role")

// ParseRole maps a claim string to a Role, rejecting anything outside the
// three known variants.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStoreOwner:
		return RoleStoreOwner, nil
	case RoleCustomer:
		return RoleCustomer, nil
	default:
		return "", ErrInvalidRole
	}
}

type Profile struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Picture   string    `json:"picture,omitempty"`
	Provider  string    `json:"provider,omitempty"`
	Role      Role      `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
