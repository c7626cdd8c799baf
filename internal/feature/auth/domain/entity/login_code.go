package entity

import "time"

// LoginCode is a short-lived numeric code for passwordless login, keyed by
// email. Requesting a new code invalidates any prior one for the same email;
// a code is consumed (deleted) on first successful match.
type LoginCode struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"index;size:255;not null"`
	Code      string    `gorm:"size:8;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// IsExpired returns true if the code has passed its expiration time.
func (c *LoginCode) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
