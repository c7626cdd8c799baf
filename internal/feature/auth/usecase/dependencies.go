package usecase

import (
	"context"
	"time"
)

// Hasher abstracts one-way hashing of passwords and secrets.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/hash).
type Hasher interface {
	// Hash returns a salted one-way hash of secret.
	Hash(secret string) (string, error)
	// Verify reports whether secret produced hash. Malformed hash input
	// yields false, never an error.
	Verify(secret, hash string) bool
}

// TokenSigner abstracts signed bearer token issuance and verification
// (provided by platform/jwt).
type TokenSigner interface {
	// IssueAccess creates a short-lived access token.
	IssueAccess(userID uint) (token string, expiresAt time.Time, err error)
	// IssueRefresh creates a long-lived refresh token.
	IssueRefresh(userID uint) (token string, expiresAt time.Time, err error)
	// VerifyRefresh checks signature and structure only; expiry is NOT
	// enforced so callers can report expiry with a distinct code.
	VerifyRefresh(token string) (userID uint, expiresAt time.Time, ok bool)
}

// Email template names passed to the EmailSender collaborator.
const (
	TemplateVerifyEmail   = "verify_email"
	TemplateResetPassword = "reset_password"
	TemplateLoginCode     = "login_code"
)

// EmailSender dispatches templated emails. Delivery providers are external;
// the core only depends on this contract.
type EmailSender interface {
	Send(ctx context.Context, template, to, subject string, data map[string]any) error
}

// SMSSender dispatches SMS messages.
type SMSSender interface {
	Send(ctx context.Context, to, message string) error
}
