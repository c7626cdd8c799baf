package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
)

// sessionPostgres is a GORM implementation of the SessionRepository
// interface. Rows are never deleted; terminal states are kept for audit.
type sessionPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure sessionPostgres implements SessionRepository.
var _ usecase.SessionRepository = (*sessionPostgres)(nil)

// NewSessionPostgres creates a new instance of sessionPostgres.
func NewSessionPostgres(db *gorm.DB) *sessionPostgres {
	return &sessionPostgres{db: db}
}

// CreateReplacingActive inserts session as the user's active session. The
// logout of any prior active session and the insert run in one transaction
// so at most one active session exists per user.
func (r *sessionPostgres) CreateReplacingActive(ctx context.Context, session *entity.Session) error {
	model := SessionModelFromEntity(session)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&SessionModel{}).
			Where("user_id = ? AND status = ?", session.UserID, entity.SessionActive).
			Update("status", string(entity.SessionLoggedOut)).Error; err != nil {
			return err
		}
		return tx.Create(model).Error
	})
	if err != nil {
		return err
	}
	session.ID = model.ID
	session.CreatedAt = model.CreatedAt
	session.UpdatedAt = model.UpdatedAt
	return nil
}

// FindActiveByUserID retrieves the user's active session.
func (r *sessionPostgres) FindActiveByUserID(ctx context.Context, userID uint) (*entity.Session, error) {
	var model SessionModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, entity.SessionActive).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// FindByUserID retrieves all sessions for a user, any status, oldest first.
func (r *sessionPostgres) FindByUserID(ctx context.Context, userID uint) ([]*entity.Session, error) {
	var models []SessionModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	sessions := make([]*entity.Session, len(models))
	for i, m := range models {
		sessions[i] = m.ToEntity()
	}
	return sessions, nil
}

// Rotate rewrites the session's token hash and expiry in place.
func (r *sessionPostgres) Rotate(ctx context.Context, sessionID uint, tokenHash string, expiresAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Where("id = ?", sessionID).
		Updates(map[string]any{
			"refresh_token_hash": tokenHash,
			"expires_at":         expiresAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrSessionNotFound
	}
	return nil
}

// UpdateStatus transitions the session to a terminal status.
func (r *sessionPostgres) UpdateStatus(ctx context.Context, sessionID uint, status entity.SessionStatus) error {
	result := r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Where("id = ?", sessionID).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrSessionNotFound
	}
	return nil
}
