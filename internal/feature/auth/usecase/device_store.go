package usecase

import (
	"context"
	"errors"
	"time"

	"account_backend/internal/feature/auth/domain/entity"
)

// defaultDeviceTrustDays is the remembered-device window.
const defaultDeviceTrustDays = 30

// deviceStore manages trusted-device tokens that let a device skip the
// login-code step.
type deviceStore struct {
	devices DeviceTokenRepository
	now     func() time.Time
}

func newDeviceStore(devices DeviceTokenRepository) *deviceStore {
	return &deviceStore{devices: devices, now: time.Now}
}

// Store persists the token for the user, replacing any record with the same
// token value. A non-positive days falls back to the default window.
func (s *deviceStore) Store(ctx context.Context, token string, userID uint, days int) error {
	if days <= 0 {
		days = defaultDeviceTrustDays
	}
	return s.devices.Replace(ctx, &entity.DeviceToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: s.now().Add(time.Duration(days) * 24 * time.Hour),
	})
}

// Verify reports whether the token marks a trusted device and for which
// user. Expired rows are deleted lazily and reported invalid.
func (s *deviceStore) Verify(ctx context.Context, token string) (uint, bool, error) {
	record, err := s.devices.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrDeviceTokenNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	if record.IsExpired(s.now()) {
		if err := s.devices.DeleteByToken(ctx, token); err != nil && !errors.Is(err, ErrDeviceTokenNotFound) {
			return 0, false, err
		}
		return 0, false, nil
	}
	return record.UserID, true, nil
}
