package entity

import "time"

// VerificationType is the purpose a verification entry was issued for. At
// most one entry exists per (user, type); issuing a new one supersedes the
// old.
type VerificationType string

const (
	VerificationEmail         VerificationType = "email_verification"
	VerificationResetPassword VerificationType = "reset_password"
	VerificationSetPassword   VerificationType = "set_password"
	VerificationChangeEmail   VerificationType = "change_email"
)

// VerificationEntry is a single-use verification record. UID is the public
// lookup key, safe to embed in a link; Hash is the bcrypt hash of the second
// secret component (hashUID), which is never persisted in plaintext. A leaked
// UID alone cannot complete verification.
type VerificationEntry struct {
	ID        uint
	UserID    uint
	UID       string
	Hash      string
	Type      VerificationType
	CreatedAt time.Time
}
