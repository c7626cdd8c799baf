// Package adapters provides repository implementations for the support feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"account_backend/internal/feature/support/domain/entity"
	"account_backend/internal/feature/support/usecase"
)

// ticketPostgres is a GORM implementation of the TicketRepository interface.
type ticketPostgres struct {
	db *gorm.DB
}

var _ usecase.TicketRepository = (*ticketPostgres)(nil)

// NewTicketRepository creates a new instance of ticketPostgres with the
// given DB connection.
func NewTicketRepository(db *gorm.DB) *ticketPostgres {
	return &ticketPostgres{db: db}
}

// Create inserts a new ticket row.
func (r *ticketPostgres) Create(ctx context.Context, ticket *entity.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

// ListByOwner returns the user's tickets, newest first.
func (r *ticketPostgres) ListByOwner(ctx context.Context, userID uint) ([]entity.Ticket, error) {
	var tickets []entity.Ticket
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// FindByID retrieves one ticket, scoped to the owner.
func (r *ticketPostgres) FindByID(ctx context.Context, userID, id uint) (*entity.Ticket, error) {
	var ticket entity.Ticket
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}
