package usecase

import (
	"context"

	"account_backend/internal/feature/auth/domain/entity"
)

// DeviceTokenRepository abstracts the persistence layer for trusted-device
// tokens.
type DeviceTokenRepository interface {
	// Replace deletes any existing row with the same token value and inserts
	// token, in one transaction. Re-registering a token is idempotent by
	// construction.
	Replace(ctx context.Context, token *entity.DeviceToken) error

	// FindByToken retrieves a device token by its opaque value.
	// Returns ErrDeviceTokenNotFound when absent.
	FindByToken(ctx context.Context, token string) (*entity.DeviceToken, error)

	// DeleteByToken removes the row with the given token value (lazy expiry
	// cleanup).
	DeleteByToken(ctx context.Context, token string) error
}
