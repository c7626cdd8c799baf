package usecase

import (
	"context"
	"errors"
	"time"

	"account_backend/internal/feature/auth/domain/entity"
)

const (
	phoneCodeDigits = 6
	phoneCodeTTL    = 10 * time.Minute
)

// phoneCodeStore manages phone verification codes, keyed by user. Expired
// rows are deleted lazily on lookup.
type phoneCodeStore struct {
	codes PhoneCodeRepository
	now   func() time.Time
}

func newPhoneCodeStore(codes PhoneCodeRepository) *phoneCodeStore {
	return &phoneCodeStore{codes: codes, now: time.Now}
}

// Set generates a fresh 6-digit code for the user and phone number,
// invalidating any prior one.
func (s *phoneCodeStore) Set(ctx context.Context, userID uint, phoneNumber string) (*entity.PhoneVerificationCode, error) {
	value, err := numericCode(phoneCodeDigits)
	if err != nil {
		return nil, err
	}
	code := &entity.PhoneVerificationCode{
		UserID:      userID,
		PhoneNumber: phoneNumber,
		Code:        value,
		ExpiresAt:   s.now().Add(phoneCodeTTL),
	}
	if err := s.codes.Replace(ctx, code); err != nil {
		return nil, err
	}
	return code, nil
}

// Consume verifies and deletes the user's code, returning the consumed row
// so the caller can apply its phone number. Expired rows are deleted before
// reporting expiry.
func (s *phoneCodeStore) Consume(ctx context.Context, userID uint, code string) (*entity.PhoneVerificationCode, error) {
	current, err := s.codes.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrPhoneCodeNotFound) {
			return nil, ErrInvalidInput
		}
		return nil, err
	}
	if current.IsExpired(s.now()) {
		// Lazy cleanup: the row is inert, delete it now.
		_ = s.codes.DeleteByUserID(ctx, userID)
		return nil, ErrSessionExpired
	}
	if current.Code != code {
		return nil, ErrInvalidInput
	}
	if err := s.codes.DeleteMatching(ctx, userID, code); err != nil {
		if errors.Is(err, ErrPhoneCodeNotFound) {
			return nil, ErrInvalidInput
		}
		return nil, err
	}
	return current, nil
}
