package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
)

// loginCodePostgres is a GORM implementation of the LoginCodeRepository
// interface.
type loginCodePostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure loginCodePostgres implements
// LoginCodeRepository.
var _ usecase.LoginCodeRepository = (*loginCodePostgres)(nil)

// NewLoginCodePostgres creates a new instance of loginCodePostgres.
func NewLoginCodePostgres(db *gorm.DB) *loginCodePostgres {
	return &loginCodePostgres{db: db}
}

// Replace deletes any codes for code.Email and inserts code, in one
// transaction.
func (r *loginCodePostgres) Replace(ctx context.Context, code *entity.LoginCode) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", code.Email).
			Delete(&entity.LoginCode{}).Error; err != nil {
			return err
		}
		return tx.Create(code).Error
	})
}

// FindByEmail retrieves the current code for an email.
func (r *loginCodePostgres) FindByEmail(ctx context.Context, email string) (*entity.LoginCode, error) {
	var code entity.LoginCode
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrLoginCodeNotFound
		}
		return nil, err
	}
	return &code, nil
}

// DeleteMatching deletes the row matching (email, code). Zero rows deleted
// means a concurrent consume won; the caller treats that as a mismatch.
func (r *loginCodePostgres) DeleteMatching(ctx context.Context, email, code string) error {
	result := r.db.WithContext(ctx).
		Where("email = ? AND code = ?", email, code).
		Delete(&entity.LoginCode{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrLoginCodeNotFound
	}
	return nil
}
