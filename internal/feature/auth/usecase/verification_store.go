package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"account_backend/internal/feature/auth/domain/entity"
)

// verificationStore manages single-use verification entries. The uid is the
// public lookup key (safe in links and logs); the hashUID is the secret,
// stored only as a hash. A leaked uid alone cannot complete verification.
type verificationStore struct {
	entries VerificationRepository
	hasher  Hasher
}

func newVerificationStore(entries VerificationRepository, hasher Hasher) *verificationStore {
	return &verificationStore{entries: entries, hasher: hasher}
}

// Set issues a fresh (uid, hashUID) pair for the user and purpose,
// superseding any prior entry for the same pair. The caller transmits both
// tokens to the user, typically concatenated as "uid/hashUID" in a link.
func (s *verificationStore) Set(ctx context.Context, userID uint, vtype entity.VerificationType) (uid, hashUID string, err error) {
	uid = uuid.NewString()
	hashUID, err = randomHex(32)
	if err != nil {
		return "", "", err
	}
	hash, err := s.hasher.Hash(hashUID)
	if err != nil {
		return "", "", err
	}

	entry := &entity.VerificationEntry{
		UserID: userID,
		UID:    uid,
		Hash:   hash,
		Type:   vtype,
	}
	if err := s.entries.Replace(ctx, entry); err != nil {
		return "", "", err
	}
	return uid, hashUID, nil
}

// Verify looks the entry up by uid and type and compares hashUID against the
// stored hash. A mismatch leaves the entry in place so the user can retry;
// consumption is the caller's explicit follow-up via Clear.
func (s *verificationStore) Verify(ctx context.Context, uid, hashUID string, vtype entity.VerificationType) (*entity.VerificationEntry, error) {
	entry, err := s.entries.FindByUID(ctx, uid, vtype)
	if err != nil {
		if errors.Is(err, ErrVerificationNotFound) {
			return nil, ErrVerificationUIDNotFound
		}
		return nil, err
	}
	if !s.hasher.Verify(hashUID, entry.Hash) {
		return nil, ErrInvalidUID
	}
	return entry, nil
}

// Clear deletes the entry for (userID, vtype). Used both to supersede and to
// consume after a successful verify plus side effect.
func (s *verificationStore) Clear(ctx context.Context, userID uint, vtype entity.VerificationType) error {
	if err := s.entries.DeleteByUserAndType(ctx, userID, vtype); err != nil {
		if errors.Is(err, ErrVerificationNotFound) {
			return ErrVerificationUIDNotFound
		}
		return err
	}
	return nil
}
