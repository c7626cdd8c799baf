package usecase

import (
	"context"

	"account_backend/internal/feature/auth/domain/entity"
)

// UserUpdate carries the partial fields of a user update. Nil fields are
// left untouched.
type UserUpdate struct {
	EmailVerified *bool
	PhoneNumber   *string
	PhoneVerified *bool
	Notifications *bool
}

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrUserAlreadyRegistered when a
	// user with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email regardless of auth type.
	// Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailAndAuthType retrieves a user by email for one login path.
	// Returns ErrUserNotFound when absent.
	FindByEmailAndAuthType(ctx context.Context, email string, authType entity.AuthType) (*entity.User, error)

	// FindByID retrieves a user by id. Returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update applies the non-nil fields of upd to the user.
	// Returns ErrUserNotFound when absent.
	Update(ctx context.Context, id uint, upd UserUpdate) error

	// UpdatePassword replaces the user's password hash.
	// Returns ErrUserNotFound when absent.
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}
