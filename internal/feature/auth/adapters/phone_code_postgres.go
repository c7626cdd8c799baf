package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
)

// phoneCodePostgres is a GORM implementation of the PhoneCodeRepository
// interface.
type phoneCodePostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure phoneCodePostgres implements
// PhoneCodeRepository.
var _ usecase.PhoneCodeRepository = (*phoneCodePostgres)(nil)

// NewPhoneCodePostgres creates a new instance of phoneCodePostgres.
func NewPhoneCodePostgres(db *gorm.DB) *phoneCodePostgres {
	return &phoneCodePostgres{db: db}
}

// Replace deletes any codes for code.UserID and inserts code, in one
// transaction.
func (r *phoneCodePostgres) Replace(ctx context.Context, code *entity.PhoneVerificationCode) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", code.UserID).
			Delete(&entity.PhoneVerificationCode{}).Error; err != nil {
			return err
		}
		return tx.Create(code).Error
	})
}

// FindByUserID retrieves the current code for a user.
func (r *phoneCodePostgres) FindByUserID(ctx context.Context, userID uint) (*entity.PhoneVerificationCode, error) {
	var code entity.PhoneVerificationCode
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPhoneCodeNotFound
		}
		return nil, err
	}
	return &code, nil
}

// DeleteMatching deletes the row matching (userID, code).
func (r *phoneCodePostgres) DeleteMatching(ctx context.Context, userID uint, code string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND code = ?", userID, code).
		Delete(&entity.PhoneVerificationCode{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrPhoneCodeNotFound
	}
	return nil
}

// DeleteByUserID removes any codes for the user.
func (r *phoneCodePostgres) DeleteByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entity.PhoneVerificationCode{}).Error
}
