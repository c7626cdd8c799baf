package usecase

import (
	"context"

	"account_backend/internal/feature/auth/domain/entity"
)

// VerificationRepository abstracts the persistence layer for verification
// entries. At most one entry exists per (user, type).
type VerificationRepository interface {
	// Replace deletes any existing entry for (entry.UserID, entry.Type) and
	// inserts entry, in one transaction.
	Replace(ctx context.Context, entry *entity.VerificationEntry) error

	// FindByUID retrieves an entry by its public uid and type. The uid is
	// the lookup key; the user id is not part of the query.
	// Returns ErrVerificationNotFound when absent.
	FindByUID(ctx context.Context, uid string, vtype entity.VerificationType) (*entity.VerificationEntry, error)

	// DeleteByUserAndType removes the entry for (userID, vtype).
	// Returns ErrVerificationNotFound when there is none.
	DeleteByUserAndType(ctx context.Context, userID uint, vtype entity.VerificationType) error
}
