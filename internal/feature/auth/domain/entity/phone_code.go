package entity

import "time"

// PhoneVerificationCode is a short-lived 6-digit code for phone number
// verification, keyed by user. Same single-active discipline as LoginCode;
// expired rows are deleted lazily on lookup.
type PhoneVerificationCode struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	PhoneNumber string    `gorm:"size:32;not null"`
	Code        string    `gorm:"size:8;not null"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

// IsExpired returns true if the code has passed its expiration time.
func (c *PhoneVerificationCode) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
