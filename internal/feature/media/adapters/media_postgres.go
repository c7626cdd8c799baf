// Package adapters provides repository implementations for the media feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"account_backend/internal/feature/media/domain/entity"
	"account_backend/internal/feature/media/usecase"
)

// mediaPostgres is a GORM implementation of the MediaRepository interface.
type mediaPostgres struct {
	db *gorm.DB
}

var _ usecase.MediaRepository = (*mediaPostgres)(nil)

// NewMediaRepository creates a new instance of mediaPostgres with the given
// DB connection.
func NewMediaRepository(db *gorm.DB) *mediaPostgres {
	return &mediaPostgres{db: db}
}

// Create inserts a new media metadata row.
func (r *mediaPostgres) Create(ctx context.Context, media *entity.MediaObject) error {
	return r.db.WithContext(ctx).Create(media).Error
}

// ListByOwner returns the user's media records, newest first.
func (r *mediaPostgres) ListByOwner(ctx context.Context, userID uint) ([]entity.MediaObject, error) {
	var records []entity.MediaObject
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByID retrieves one media record, scoped to the owner.
func (r *mediaPostgres) FindByID(ctx context.Context, userID, id uint) (*entity.MediaObject, error) {
	var record entity.MediaObject
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMediaNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Delete removes one media record, scoped to the owner.
func (r *mediaPostgres) Delete(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.MediaObject{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrMediaNotFound
	}
	return nil
}
