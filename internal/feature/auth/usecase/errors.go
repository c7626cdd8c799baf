// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"errors"

	"account_backend/internal/shared/apperr"
)

// Client-facing errors. Each carries the numeric result code the HTTP
// boundary maps to a status and body.
var (
	// ErrUserNotFound is returned when a user cannot be found by email, id or auth type.
	ErrUserNotFound = apperr.New(apperr.UserNotFound)

	// ErrUserAlreadyRegistered is returned when registering an email that already exists.
	ErrUserAlreadyRegistered = apperr.New(apperr.UserAlreadyRegistered)

	// ErrWrongPassword is returned on a password mismatch.
	ErrWrongPassword = apperr.New(apperr.WrongPassword)

	// ErrInvalidToken is returned when a refresh token does not match the stored
	// session hash. Distinct from expiry: it signals possible token reuse or theft.
	ErrInvalidToken = apperr.New(apperr.InvalidToken)

	// ErrSessionExpired is returned when a session or time-boxed code is past its window.
	ErrSessionExpired = apperr.New(apperr.SessionExpired)

	// ErrInvalidInput is returned for malformed or mismatched client input.
	ErrInvalidInput = apperr.New(apperr.InvalidInput)

	// ErrInvalidUID is returned when a verification secret fails its hash comparison.
	ErrInvalidUID = apperr.New(apperr.InvalidUID)

	// ErrVerificationUIDNotFound is returned when no verification entry matches a uid.
	ErrVerificationUIDNotFound = apperr.New(apperr.VerificationUIDNotFound)

	// ErrUserSessionNotFound is returned when expiring a session that does not exist.
	ErrUserSessionNotFound = apperr.New(apperr.UserSessionNotFound)

	// ErrUserAlreadyOnboarded is returned when re-verifying an already verified user.
	ErrUserAlreadyOnboarded = apperr.New(apperr.UserAlreadyOnboarded)

	// ErrFailedDependency is returned when email/SMS delivery fails. A code that
	// failed to send must not be treated as delivered.
	ErrFailedDependency = apperr.New(apperr.FailedDependency)
)

// Repository-level sentinels. Adapters return these for absent rows; the
// stores translate them into the coded errors above, because the same
// absence maps to different client codes depending on the operation.
var (
	// ErrSessionNotFound is returned when no active session exists for a user.
	ErrSessionNotFound = errors.New("session not found")

	// ErrVerificationNotFound is returned when no verification entry matches.
	ErrVerificationNotFound = errors.New("verification entry not found")

	// ErrLoginCodeNotFound is returned when no login code exists for an email.
	ErrLoginCodeNotFound = errors.New("login code not found")

	// ErrPhoneCodeNotFound is returned when no phone code exists for a user.
	ErrPhoneCodeNotFound = errors.New("phone verification code not found")

	// ErrDeviceTokenNotFound is returned when no device token matches.
	ErrDeviceTokenNotFound = errors.New("device token not found")
)
