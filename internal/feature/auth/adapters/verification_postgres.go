package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
)

// verificationPostgres is a GORM implementation of the
// VerificationRepository interface.
type verificationPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure verificationPostgres implements
// VerificationRepository.
var _ usecase.VerificationRepository = (*verificationPostgres)(nil)

// NewVerificationPostgres creates a new instance of verificationPostgres.
func NewVerificationPostgres(db *gorm.DB) *verificationPostgres {
	return &verificationPostgres{db: db}
}

// Replace supersedes any entry for (entry.UserID, entry.Type) with entry.
// Delete and insert run in one transaction so concurrent calls cannot leave
// two entries for the same pair.
func (r *verificationPostgres) Replace(ctx context.Context, entry *entity.VerificationEntry) error {
	model := VerificationModelFromEntity(entry)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND type = ?", entry.UserID, string(entry.Type)).
			Delete(&VerificationModel{}).Error; err != nil {
			return err
		}
		return tx.Create(model).Error
	})
	if err != nil {
		return err
	}
	entry.ID = model.ID
	entry.CreatedAt = model.CreatedAt
	return nil
}

// FindByUID retrieves an entry by its public uid and type.
func (r *verificationPostgres) FindByUID(ctx context.Context, uid string, vtype entity.VerificationType) (*entity.VerificationEntry, error) {
	var model VerificationModel
	if err := r.db.WithContext(ctx).
		Where("uid = ? AND type = ?", uid, string(vtype)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrVerificationNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// DeleteByUserAndType removes the entry for (userID, vtype).
func (r *verificationPostgres) DeleteByUserAndType(ctx context.Context, userID uint, vtype entity.VerificationType) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, string(vtype)).
		Delete(&VerificationModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrVerificationNotFound
	}
	return nil
}
