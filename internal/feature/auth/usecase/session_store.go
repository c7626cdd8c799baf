package usecase

import (
	"context"
	"errors"
	"time"

	"account_backend/internal/feature/auth/domain/entity"
)

// sessionStore enforces the single-active-session-per-user model on top of
// SessionRepository. Refresh tokens are hashed before persisting; plaintext
// never reaches storage.
type sessionStore struct {
	sessions   SessionRepository
	users      UserRepository
	hasher     Hasher
	refreshTTL time.Duration
	now        func() time.Time
}

func newSessionStore(sessions SessionRepository, users UserRepository, hasher Hasher, refreshTTL time.Duration) *sessionStore {
	return &sessionStore{
		sessions:   sessions,
		users:      users,
		hasher:     hasher,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// Store creates a new active session for the user, logging out any prior
// active session. The user must exist: absence of the user and absence of a
// session map to different client codes.
func (s *sessionStore) Store(ctx context.Context, userID uint, refreshToken string) (*entity.Session, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(refreshToken)
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		UserID:           userID,
		RefreshTokenHash: hash,
		Status:           entity.SessionActive,
		ExpiresAt:        s.now().Add(s.refreshTTL),
	}
	if err := s.sessions.CreateReplacingActive(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Update rotates the refresh token of the user's active session. No active
// session maps to ErrSessionExpired; a hash mismatch maps to ErrInvalidToken,
// which signals possible token reuse rather than expiry. The row stays
// active.
func (s *sessionStore) Update(ctx context.Context, userID uint, oldToken, newToken string) (*entity.Session, error) {
	session, err := s.sessions.FindActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}

	if !s.hasher.Verify(oldToken, session.RefreshTokenHash) {
		return nil, ErrInvalidToken
	}

	hash, err := s.hasher.Hash(newToken)
	if err != nil {
		return nil, err
	}
	expiresAt := s.now().Add(s.refreshTTL)
	if err := s.sessions.Rotate(ctx, session.ID, hash, expiresAt); err != nil {
		return nil, err
	}

	session.RefreshTokenHash = hash
	session.ExpiresAt = expiresAt
	return session, nil
}

// Expire transitions the user's active session to the given terminal status.
// Logout and forced expiry share this operation; only the recorded status
// differs.
func (s *sessionStore) Expire(ctx context.Context, userID uint, status entity.SessionStatus) error {
	session, err := s.sessions.FindActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return ErrUserSessionNotFound
		}
		return err
	}
	return s.sessions.UpdateStatus(ctx, session.ID, status)
}
