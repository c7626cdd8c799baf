// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
)

// userPostgres is a GORM implementation of the UserRepository interface.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a new instance of userPostgres.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create persists a new user. Duplicate emails surface as
// usecase.ErrUserAlreadyRegistered; the db must be opened with
// TranslateError so unique violations map to gorm.ErrDuplicatedKey.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrUserAlreadyRegistered
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email regardless of auth type.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmailAndAuthType retrieves a user by email for one login path.
func (r *userPostgres) FindByEmailAndAuthType(ctx context.Context, email string, authType entity.AuthType) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).
		Where("email = ? AND auth_type = ?", email, authType).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update applies the non-nil fields of upd to the user.
func (r *userPostgres) Update(ctx context.Context, id uint, upd usecase.UserUpdate) error {
	fields := map[string]any{}
	if upd.EmailVerified != nil {
		fields["email_verified"] = *upd.EmailVerified
	}
	if upd.PhoneNumber != nil {
		fields["phone_number"] = *upd.PhoneNumber
	}
	if upd.PhoneVerified != nil {
		fields["phone_verified"] = *upd.PhoneVerified
	}
	if upd.Notifications != nil {
		fields["notifications"] = *upd.Notifications
	}
	if len(fields) == 0 {
		return nil
	}

	// Existence is checked first: Updates reports zero affected rows both
	// for missing users and for no-op updates.
	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// UpdatePassword replaces the user's password hash.
func (r *userPostgres) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update("password", passwordHash).Error
}
