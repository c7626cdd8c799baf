package usecase

import (
	"context"
	"time"

	"account_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for refresh sessions.
// Rows are never deleted; terminal states are kept for audit.
type SessionRepository interface {
	// CreateReplacingActive inserts session as the user's active session,
	// transitioning any existing active session to logged_out first. Both
	// steps run in one transaction so the single-active invariant holds
	// under concurrent calls.
	CreateReplacingActive(ctx context.Context, session *entity.Session) error

	// FindActiveByUserID retrieves the user's active session.
	// Returns ErrSessionNotFound when there is none.
	FindActiveByUserID(ctx context.Context, userID uint) (*entity.Session, error)

	// FindByUserID retrieves all sessions for a user, any status, oldest first.
	FindByUserID(ctx context.Context, userID uint) ([]*entity.Session, error)

	// Rotate rewrites the session's token hash and expiry in place. The row
	// stays active; rotation does not create a new row.
	Rotate(ctx context.Context, sessionID uint, tokenHash string, expiresAt time.Time) error

	// UpdateStatus transitions the session to a terminal status.
	// Returns ErrSessionNotFound when the row is absent.
	UpdateStatus(ctx context.Context, sessionID uint, status entity.SessionStatus) error
}
