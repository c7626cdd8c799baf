// Package adapters provides repository implementations for the notifications feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"account_backend/internal/feature/notifications/domain/entity"
	"account_backend/internal/feature/notifications/usecase"
)

// notificationPostgres is a GORM implementation of the
// NotificationRepository interface.
type notificationPostgres struct {
	db *gorm.DB
}

var _ usecase.NotificationRepository = (*notificationPostgres)(nil)

// NewNotificationRepository creates a new instance of notificationPostgres
// with the given DB connection.
func NewNotificationRepository(db *gorm.DB) *notificationPostgres {
	return &notificationPostgres{db: db}
}

// Create inserts a new notification row.
func (r *notificationPostgres) Create(ctx context.Context, n *entity.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// ListByUserID returns the user's notifications, newest first.
func (r *notificationPostgres) ListByUserID(ctx context.Context, userID uint) ([]entity.Notification, error) {
	var notifications []entity.Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flips one owned notification to read.
func (r *notificationPostgres) MarkRead(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead flips every unread notification of the user to read. Zero
// affected rows is not an error here; there may simply be nothing unread.
func (r *notificationPostgres) MarkAllRead(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
