// Package jwtmw provides JWT issuance, verification and the Gin middleware
// guarding authenticated routes.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// purpose selects which key and TTL a token is issued and verified with.
// Access and refresh tokens use independent secrets so that compromising one
// does not compromise the other.
type purpose string

const (
	purposeAccess  purpose = "access"
	purposeRefresh purpose = "refresh"
)

// Signer issues and verifies signed bearer tokens.
//
// The Verify methods check signature and structure only; they deliberately do
// NOT reject expired tokens. Refresh rotation needs the decoded subject even
// when the embedded expiry is checked separately for a distinct error code,
// so callers must compare the returned expiry against the current time.
type Signer interface {
	IssueAccess(userID uint) (token string, expiresAt time.Time, err error)
	IssueRefresh(userID uint) (token string, expiresAt time.Time, err error)
	VerifyAccess(token string) (userID uint, expiresAt time.Time, ok bool)
	VerifyRefresh(token string) (userID uint, expiresAt time.Time, ok bool)
}

// signer implements Signer with HS256 and per-purpose secrets.
type signer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewSigner creates a Signer with independent secrets and TTLs per purpose.
func NewSigner(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) Signer {
	return &signer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *signer) secretAndTTL(p purpose) ([]byte, time.Duration) {
	if p == purposeRefresh {
		return s.refreshSecret, s.refreshTTL
	}
	return s.accessSecret, s.accessTTL
}

// IssueAccess creates a short-lived signed access token.
func (s *signer) IssueAccess(userID uint) (string, time.Time, error) {
	return s.issue(userID, purposeAccess)
}

// IssueRefresh creates a long-lived signed refresh token.
func (s *signer) IssueRefresh(userID uint) (string, time.Time, error) {
	return s.issue(userID, purposeRefresh)
}

// issue creates a signed token with standard claims.
func (s *signer) issue(userID uint, p purpose) (string, time.Time, error) {
	secret, ttl := s.secretAndTTL(p)
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := jwt.MapClaims{
		"sub": userID,
		"exp": expiresAt.Unix(),
		"iat": now.Unix(),
		"pur": string(p),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// VerifyAccess checks an access token's signature and decodes its claims.
func (s *signer) VerifyAccess(token string) (uint, time.Time, bool) {
	return s.verify(token, purposeAccess)
}

// VerifyRefresh checks a refresh token's signature and decodes its claims.
func (s *signer) VerifyRefresh(token string) (uint, time.Time, bool) {
	return s.verify(token, purposeRefresh)
}

// verify checks the signature with the purpose's secret and decodes the
// claims. Any tamper, malformed structure or wrong-purpose key yields
// ok=false, never an error.
func (s *signer) verify(tokenStr string, p purpose) (uint, time.Time, bool) {
	secret, _ := s.secretAndTTL(p)

	// Expiry validation is disabled on purpose; see the Signer doc comment.
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	token, err := parser.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, time.Time{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, time.Time{}, false
	}
	if pur, _ := claims["pur"].(string); pur != string(p) {
		return 0, time.Time{}, false
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return 0, time.Time{}, false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return 0, time.Time{}, false
	}

	return uint(sub), time.Unix(int64(exp), 0), true
}
