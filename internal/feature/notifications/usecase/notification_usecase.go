// Package usecase implements the business logic for notification operations.
package usecase

import (
	"context"

	"account_backend/internal/feature/notifications/domain/entity"
	"account_backend/internal/shared/apperr"
)

// ErrNotificationNotFound is returned when no notification matches the
// requested ID for the requesting owner.
var ErrNotificationNotFound = apperr.New(apperr.ResourceNotFound)

// NotificationRepository abstracts the persistence layer for notifications.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	ListByUserID(ctx context.Context, userID uint) ([]entity.Notification, error)
	MarkRead(ctx context.Context, userID, id uint) error
	MarkAllRead(ctx context.Context, userID uint) error
}

// NotificationUsecase provides business logic for notification operations.
type NotificationUsecase struct {
	repo NotificationRepository
}

// NewNotificationUsecase creates a new NotificationUsecase.
func NewNotificationUsecase(r NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{repo: r}
}

// Publish records a new notification for a user. It is called by other
// features, not exposed over HTTP.
func (u *NotificationUsecase) Publish(ctx context.Context, userID uint, title, body string) error {
	return u.repo.Create(ctx, &entity.Notification{
		UserID: userID,
		Title:  title,
		Body:   body,
	})
}

// List returns the user's notifications, newest first.
func (u *NotificationUsecase) List(ctx context.Context, userID uint) ([]entity.Notification, error) {
	return u.repo.ListByUserID(ctx, userID)
}

// MarkRead marks one owned notification as read.
func (u *NotificationUsecase) MarkRead(ctx context.Context, userID, id uint) error {
	return u.repo.MarkRead(ctx, userID, id)
}

// MarkAllRead marks every unread notification of the user as read.
func (u *NotificationUsecase) MarkAllRead(ctx context.Context, userID uint) error {
	return u.repo.MarkAllRead(ctx, userID)
}
