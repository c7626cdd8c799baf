// Package usecase implements the business logic for media operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"account_backend/internal/feature/media/domain/entity"
	"account_backend/internal/shared/apperr"
)

// ErrMediaNotFound is returned when no media record matches the requested ID
// for the requesting owner.
var ErrMediaNotFound = apperr.New(apperr.ResourceNotFound)

// MediaRepository abstracts the persistence layer for media metadata.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MediaRepository interface {
	Create(ctx context.Context, media *entity.MediaObject) error
	ListByOwner(ctx context.Context, userID uint) ([]entity.MediaObject, error)
	FindByID(ctx context.Context, userID, id uint) (*entity.MediaObject, error)
	Delete(ctx context.Context, userID, id uint) error
}

// SignedURLIssuer produces time-limited URLs against the external object
// store. The store itself is an external collaborator; only its URL-signing
// surface is visible here.
type SignedURLIssuer interface {
	UploadURL(ctx context.Context, key, contentType string) (string, error)
	DownloadURL(ctx context.Context, key string) (string, error)
}

// Upload pairs a created media record with the URL the client must PUT the
// bytes to.
type Upload struct {
	Media     *entity.MediaObject
	UploadURL string
}

// MediaUsecase provides business logic for media operations.
type MediaUsecase struct {
	repo   MediaRepository
	issuer SignedURLIssuer
}

// NewMediaUsecase creates a new MediaUsecase.
func NewMediaUsecase(repo MediaRepository, issuer SignedURLIssuer) *MediaUsecase {
	return &MediaUsecase{repo: repo, issuer: issuer}
}

// Register creates the metadata record for a new upload and returns the
// signed URL to send the bytes to. The storage key is server-generated so
// clients can never address another user's objects.
func (u *MediaUsecase) Register(ctx context.Context, userID uint, fileName, contentType string, sizeBytes int64) (*Upload, error) {
	media := &entity.MediaObject{
		UserID:      userID,
		Key:         uuid.NewString(),
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   sizeBytes,
	}
	if err := u.repo.Create(ctx, media); err != nil {
		return nil, err
	}
	url, err := u.issuer.UploadURL(ctx, media.Key, contentType)
	if err != nil {
		return nil, apperr.Wrap(apperr.FailedDependency, err)
	}
	return &Upload{Media: media, UploadURL: url}, nil
}

// List returns all media records owned by the given user.
func (u *MediaUsecase) List(ctx context.Context, userID uint) ([]entity.MediaObject, error) {
	return u.repo.ListByOwner(ctx, userID)
}

// Get returns one owned media record together with a signed download URL.
func (u *MediaUsecase) Get(ctx context.Context, userID, id uint) (*entity.MediaObject, string, error) {
	media, err := u.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}
	url, err := u.issuer.DownloadURL(ctx, media.Key)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.FailedDependency, err)
	}
	return media, url, nil
}

// Delete removes one owned media record. Object-store cleanup is handled by
// a storage lifecycle rule, not here.
func (u *MediaUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.repo.Delete(ctx, userID, id)
}
