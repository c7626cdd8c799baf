package adapters

import (
	"time"

	"account_backend/internal/feature/auth/domain/entity"
)

// VerificationModel is the GORM model for the verification_entries table.
// The (user_id, type) unique index backs the one-entry-per-purpose
// invariant at the storage level.
type VerificationModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_verification_user_type;not null"`
	UID       string    `gorm:"uniqueIndex;size:64;not null"`
	Hash      string    `gorm:"size:255;not null"`
	Type      string    `gorm:"uniqueIndex:idx_verification_user_type;size:32;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (VerificationModel) TableName() string {
	return "verification_entries"
}

// ToEntity converts the GORM model to a domain entity.
func (m *VerificationModel) ToEntity() *entity.VerificationEntry {
	return &entity.VerificationEntry{
		ID:        m.ID,
		UserID:    m.UserID,
		UID:       m.UID,
		Hash:      m.Hash,
		Type:      entity.VerificationType(m.Type),
		CreatedAt: m.CreatedAt,
	}
}

// VerificationModelFromEntity converts a domain entity to a GORM model.
func VerificationModelFromEntity(e *entity.VerificationEntry) *VerificationModel {
	return &VerificationModel{
		ID:        e.ID,
		UserID:    e.UserID,
		UID:       e.UID,
		Hash:      e.Hash,
		Type:      string(e.Type),
		CreatedAt: e.CreatedAt,
	}
}
