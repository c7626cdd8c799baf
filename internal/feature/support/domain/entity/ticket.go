// Package entity defines the domain models for the support feature.
package entity

import "time"

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketClosed     TicketStatus = "closed"
)

// Ticket is one support request raised by a user.
type Ticket struct {
	ID        uint         `gorm:"primaryKey"`
	UserID    uint         `gorm:"not null;index"`
	Subject   string       `gorm:"size:255;not null"`
	Body      string       `gorm:"type:text;not null"`
	Status    TicketStatus `gorm:"size:20;not null;default:open"`
	CreatedAt time.Time    `gorm:"autoCreateTime"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime"`
}
