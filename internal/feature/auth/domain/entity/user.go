// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// AuthType identifies the login path an account was registered with. Distinct
// auth types for the same email are distinct login paths: a user registered
// via Google cannot log in via password.
type AuthType string

const (
	AuthTypePassword AuthType = "password"
	AuthTypeGoogle   AuthType = "google"
	AuthTypeFacebook AuthType = "facebook"
	AuthTypeLinkedIn AuthType = "linkedin"
	AuthTypeApple    AuthType = "apple"
)

// IsPasswordBased reports whether the auth type authenticates with a local
// password. Any other configured type is pre-authenticated by an external
// identity provider.
func (t AuthType) IsPasswordBased() bool {
	return t == AuthTypePassword
}

// Valid reports whether t is one of the supported auth types.
func (t AuthType) Valid() bool {
	switch t {
	case AuthTypePassword, AuthTypeGoogle, AuthTypeFacebook, AuthTypeLinkedIn, AuthTypeApple:
		return true
	}
	return false
}

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address, stored case-normalized.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password. Nil for OAuth-only accounts.
	// Plaintext passwords are never stored.
	Password *string `gorm:"size:255"`

	// AuthType is the login path the account was registered with.
	AuthType AuthType `gorm:"size:32;not null"`

	// EmailVerified is set once the user completes email verification.
	EmailVerified bool `gorm:"not null;default:false"`

	// PhoneNumber is the user's verified or pending phone number.
	PhoneNumber string `gorm:"size:32"`

	// PhoneVerified is set once the user completes phone verification.
	PhoneVerified bool `gorm:"not null;default:false"`

	// Notifications is the user's notification opt-in flag.
	Notifications bool `gorm:"not null;default:true"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
