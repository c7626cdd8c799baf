package usecase

import (
	"context"

	"account_backend/internal/feature/auth/domain/entity"
)

// LoginCodeRepository abstracts the persistence layer for passwordless login
// codes, keyed by email.
type LoginCodeRepository interface {
	// Replace deletes any existing codes for code.Email and inserts code,
	// in one transaction.
	Replace(ctx context.Context, code *entity.LoginCode) error

	// FindByEmail retrieves the current code for an email.
	// Returns ErrLoginCodeNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.LoginCode, error)

	// DeleteMatching deletes the row matching (email, code). The delete is
	// the consume step: a zero-row delete returns ErrLoginCodeNotFound, so
	// concurrent consumers cannot both succeed.
	DeleteMatching(ctx context.Context, email, code string) error
}

// PhoneCodeRepository abstracts the persistence layer for phone verification
// codes, keyed by user.
type PhoneCodeRepository interface {
	// Replace deletes any existing codes for code.UserID and inserts code,
	// in one transaction.
	Replace(ctx context.Context, code *entity.PhoneVerificationCode) error

	// FindByUserID retrieves the current code for a user.
	// Returns ErrPhoneCodeNotFound when absent.
	FindByUserID(ctx context.Context, userID uint) (*entity.PhoneVerificationCode, error)

	// DeleteMatching deletes the row matching (userID, code); zero rows
	// deleted returns ErrPhoneCodeNotFound.
	DeleteMatching(ctx context.Context, userID uint, code string) error

	// DeleteByUserID removes any codes for the user (lazy expiry cleanup).
	DeleteByUserID(ctx context.Context, userID uint) error
}
