package entity

import "time"

// DeviceToken is a long-lived opaque token marking a trusted device. A valid
// token lets a login skip the login-code step for a bounded period. Expired
// rows are deleted lazily on lookup.
type DeviceToken struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Token     string    `gorm:"uniqueIndex;size:128;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// IsExpired returns true if the token has passed its expiration time.
func (t *DeviceToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
