package usecase

import (
	"context"
	"errors"
	"time"

	"account_backend/internal/feature/auth/domain/entity"
)

const (
	loginCodeDigits = 4
	loginCodeTTL    = 10 * time.Minute
)

// loginCodeStore manages passwordless login codes, keyed by email. There is
// never more than one valid code outstanding per email.
type loginCodeStore struct {
	codes LoginCodeRepository
	now   func() time.Time
}

func newLoginCodeStore(codes LoginCodeRepository) *loginCodeStore {
	return &loginCodeStore{codes: codes, now: time.Now}
}

// Set generates a fresh code for the email, invalidating any prior one.
func (s *loginCodeStore) Set(ctx context.Context, email string) (*entity.LoginCode, error) {
	value, err := numericCode(loginCodeDigits)
	if err != nil {
		return nil, err
	}
	code := &entity.LoginCode{
		Email:     email,
		Code:      value,
		ExpiresAt: s.now().Add(loginCodeTTL),
	}
	if err := s.codes.Replace(ctx, code); err != nil {
		return nil, err
	}
	return code, nil
}

// Consume verifies and deletes the email's code in one logical operation.
// Absent or mismatched codes map to ErrInvalidInput; an expired code maps to
// ErrSessionExpired so the client knows to request a new one. The deletion
// is conditional on the code value, closing the replay window under
// concurrent requests.
func (s *loginCodeStore) Consume(ctx context.Context, email, code string) error {
	current, err := s.codes.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrLoginCodeNotFound) {
			return ErrInvalidInput
		}
		return err
	}
	if current.IsExpired(s.now()) {
		return ErrSessionExpired
	}
	if current.Code != code {
		return ErrInvalidInput
	}
	if err := s.codes.DeleteMatching(ctx, email, code); err != nil {
		if errors.Is(err, ErrLoginCodeNotFound) {
			// Lost the race to a concurrent consume.
			return ErrInvalidInput
		}
		return err
	}
	return nil
}
