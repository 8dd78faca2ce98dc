package models

import "time"

// GuestUser is an anonymous checkout session. Expired rows are swept by
// the daily maintenance job.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
