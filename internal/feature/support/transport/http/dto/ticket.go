// Package dto defines data transfer objects for the support HTTP API.
package dto

import (
	"time"

	"account_backend/internal/feature/support/domain/entity"
)

// CreateTicketReq represents the request body for opening a ticket.
type CreateTicketReq struct {
	Subject string `json:"subject" binding:"required,max=255"`
	Body    string `json:"body" binding:"required"`
}

// TicketRes represents a ticket in the API response.
type TicketRes struct {
	ID        uint      `json:"id"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TicketResFromEntity converts a ticket entity to its response form.
func TicketResFromEntity(t *entity.Ticket) TicketRes {
	return TicketRes{
		ID:        t.ID,
		Subject:   t.Subject,
		Body:      t.Body,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
