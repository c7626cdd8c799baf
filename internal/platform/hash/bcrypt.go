// Package hash provides one-way hashing and verification for passwords and
// other secrets (refresh tokens, verification secrets).
package hash

import "golang.org/x/crypto/bcrypt"

// DummyHash is a valid bcrypt hash of an unknowable value. Callers compare
// against it when no real hash exists so that lookup misses and credential
// mismatches take the same time.
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hasher hashes and verifies secrets using bcrypt. A fresh salt is generated
// per call, so hashing the same input twice yields different outputs.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher. A cost below bcrypt.MinCost falls back to
// bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the salted bcrypt hash of secret.
func (h *Hasher) Hash(secret string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether secret is the input that produced hash. Malformed
// hash input yields false rather than an error, so callers cannot be told
// apart by failure shape. The comparison itself is constant-time (bcrypt).
func (h *Hasher) Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
