package adapters

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"account_backend/internal/feature/auth/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError is enabled to match production behavior: the user
// repository depends on unique violations surfacing as gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(
		&entity.User{},
		&SessionModel{},
		&VerificationModel{},
		&entity.LoginCode{},
		&entity.PhoneVerificationCode{},
		&entity.DeviceToken{},
	)
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// seedUser creates a test user in the database.
func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	pw := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	user := &entity.User{
		Email:         email,
		Password:      &pw,
		AuthType:      entity.AuthTypePassword,
		Notifications: true,
	}
	require.NoError(t, db.Create(user).Error, "failed to seed user")
	return user
}
