// Package dto defines data transfer objects for the notifications HTTP API.
package dto

import (
	"time"

	"account_backend/internal/feature/notifications/domain/entity"
)

// NotificationRes represents a notification in the API response.
type NotificationRes struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationResFromEntity converts a notification entity to its response form.
func NotificationResFromEntity(n *entity.Notification) NotificationRes {
	return NotificationRes{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
