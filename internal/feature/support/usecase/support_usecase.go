// Package usecase implements the business logic for support tickets.
package usecase

import (
	"context"

	"account_backend/internal/feature/support/domain/entity"
	"account_backend/internal/shared/apperr"
)

// ErrTicketNotFound is returned when no ticket matches the requested ID for
// the requesting owner.
var ErrTicketNotFound = apperr.New(apperr.ResourceNotFound)

// TicketRepository abstracts the persistence layer for support tickets.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	ListByOwner(ctx context.Context, userID uint) ([]entity.Ticket, error)
	FindByID(ctx context.Context, userID, id uint) (*entity.Ticket, error)
}

// SupportUsecase provides business logic for support ticket operations.
// Users raise and read their own tickets; status transitions beyond "open"
// come from the back-office tooling, not this API.
type SupportUsecase struct {
	repo TicketRepository
}

// NewSupportUsecase creates a new SupportUsecase.
func NewSupportUsecase(r TicketRepository) *SupportUsecase {
	return &SupportUsecase{repo: r}
}

// Create opens a new ticket for the given user.
func (u *SupportUsecase) Create(ctx context.Context, userID uint, subject, body string) (*entity.Ticket, error) {
	ticket := &entity.Ticket{
		UserID:  userID,
		Subject: subject,
		Body:    body,
		Status:  entity.TicketOpen,
	}
	if err := u.repo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// List returns all tickets raised by the given user.
func (u *SupportUsecase) List(ctx context.Context, userID uint) ([]entity.Ticket, error) {
	return u.repo.ListByOwner(ctx, userID)
}

// Get returns one ticket raised by the given user.
func (u *SupportUsecase) Get(ctx context.Context, userID, id uint) (*entity.Ticket, error) {
	return u.repo.FindByID(ctx, userID, id)
}
