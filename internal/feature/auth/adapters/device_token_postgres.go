package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
)

// deviceTokenPostgres is a GORM implementation of the DeviceTokenRepository
// interface.
type deviceTokenPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure deviceTokenPostgres implements
// DeviceTokenRepository.
var _ usecase.DeviceTokenRepository = (*deviceTokenPostgres)(nil)

// NewDeviceTokenPostgres creates a new instance of deviceTokenPostgres.
func NewDeviceTokenPostgres(db *gorm.DB) *deviceTokenPostgres {
	return &deviceTokenPostgres{db: db}
}

// Replace deletes any row with the same token value and inserts token, in
// one transaction.
func (r *deviceTokenPostgres) Replace(ctx context.Context, token *entity.DeviceToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("token = ?", token.Token).
			Delete(&entity.DeviceToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

// FindByToken retrieves a device token by its opaque value.
func (r *deviceTokenPostgres) FindByToken(ctx context.Context, token string) (*entity.DeviceToken, error) {
	var record entity.DeviceToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrDeviceTokenNotFound
		}
		return nil, err
	}
	return &record, nil
}

// DeleteByToken removes the row with the given token value.
func (r *deviceTokenPostgres) DeleteByToken(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&entity.DeviceToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrDeviceTokenNotFound
	}
	return nil
}
