package entity

import "time"

// SessionStatus is the lifecycle state of a refresh session. Expired and
// LoggedOut are terminal for the row; a new active session is a new row.
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionExpired   SessionStatus = "expired"
	SessionLoggedOut SessionStatus = "logged_out"
)

// Session represents a user's refresh session. At most one session per user
// is active at any time; rows are never deleted so the history remains
// auditable.
type Session struct {
	ID               uint          // Row identifier
	UserID           uint          // Owning user
	RefreshTokenHash string        // bcrypt hash of the refresh token, never plaintext
	Status           SessionStatus // active, expired or logged_out
	ExpiresAt        time.Time     // Session expiration time
	CreatedAt        time.Time     // Session creation time
	UpdatedAt        time.Time     // Last rotation or status change
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// IsActive returns true if the session is in the active state.
func (s *Session) IsActive() bool {
	return s.Status == SessionActive
}
