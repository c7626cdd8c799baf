package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/shared/apperr"
)

// deps bundles the mock collaborators so tests can override only what they
// exercise.
type deps struct {
	users         *mockUserRepo
	sessions      *mockSessionRepo
	verifications *mockVerificationRepo
	loginCodes    *mockLoginCodeRepo
	phoneCodes    *mockPhoneCodeRepo
	devices       *mockDeviceRepo
	signer        *mockSigner
	mail          *mockEmailSender
	sms           *mockSMSSender
}

func newDeps() *deps {
	return &deps{
		users:         &mockUserRepo{},
		sessions:      &mockSessionRepo{},
		verifications: &mockVerificationRepo{},
		loginCodes:    &mockLoginCodeRepo{},
		phoneCodes:    &mockPhoneCodeRepo{},
		devices:       &mockDeviceRepo{},
		signer:        &mockSigner{},
		mail:          &mockEmailSender{},
		sms:           &mockSMSSender{},
	}
}

func (d *deps) build() *authUsecase {
	u := NewAuthUsecase(d.users, d.sessions, d.verifications, d.loginCodes, d.phoneCodes, d.devices,
		d.signer, fakeHasher{}, d.mail, d.sms, time.Hour)
	u.now = fixedNow
	u.sessions.now = fixedNow
	u.loginCodes.now = fixedNow
	u.phoneCodes.now = fixedNow
	u.devices.now = fixedNow
	return u
}

func TestRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("invalid auth type", func(t *testing.T) {
		t.Parallel()

		u := newDeps().build()
		_, err := u.Register(ctx, "github", "a@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate email under any auth type", func(t *testing.T) {
		t.Parallel()

		d := newDeps()
		d.users.FindByEmailFunc = func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: 1, Email: email, AuthType: entity.AuthTypeGoogle}, nil
		}
		u := d.build()

		_, err := u.Register(ctx, entity.AuthTypePassword, "a@example.com", "password123")
		assert.ErrorIs(t, err, ErrUserAlreadyRegistered)
	})

	t.Run("short password", func(t *testing.T) {
		t.Parallel()

		d := newDeps()
		d.users.FindByEmailFunc = func(ctx context.Context, email string) (*entity.User, error) {
			return nil, ErrUserNotFound
		}
		u := d.build()

		_, err := u.Register(ctx, entity.AuthTypePassword, "a@example.com", "short")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("success sends verification link", func(t *testing.T) {
		t.Parallel()

		d := newDeps()
		d.users.FindByEmailFunc = func(ctx context.Context, email string) (*entity.User, error) {
			return nil, ErrUserNotFound
		}
		var created *entity.User
		d.users.CreateFunc = func(ctx context.Context, user *entity.User) error {
			user.ID = 7
			created = user
			return nil
		}
		d.verifications.ReplaceFunc = func(ctx context.Context, entry *entity.VerificationEntry) error {
			return nil
		}
		u := d.build()

		user, err := u.Register(ctx, entity.AuthTypePassword, "  New.User@Example.COM ", "password123")
		require.NoError(t, err)

		assert.Equal(t, "new.user@example.com", created.Email, "email is normalized before storage")
		require.NotNil(t, created.Password)
		assert.Equal(t, "hashed:password123", *created.Password)
		assert.True(t, created.Notifications)
		assert.Equal(t, created, user)

		require.Len(t, d.mail.Sent, 1)
		sent := d.mail.Sent[0]
		assert.Equal(t, TemplateVerifyEmail, sent.template)
		assert.Equal(t, "new.user@example.com", sent.to)
		link, _ := sent.data["link"].(string)
		assert.Contains(t, link, "/", "link carries uid and secret separated by a slash")
	})

	t.Run("oauth registration stores no password", func(t *testing.T) {
		t.Parallel()

		d := newDeps()
		d.users.FindByEmailFunc = func(ctx context.Context, email string) (*entity.User, error) {
			return nil, ErrUserNotFound
		}
		var created *entity.User
		d.users.CreateFunc = func(ctx context.Context, user *entity.User) error {
			user.ID = 8
			created = user
			return nil
		}
		d.verifications.ReplaceFunc = func(ctx context.Context, entry *entity.VerificationEntry) error {
			return nil
		}
		u := d.build()

		_, err := u.Register(ctx, entity.AuthTypeGoogle, "g@example.com", "")
		require.NoError(t, err)
		assert.Nil(t, created.Password)
	})

	t.Run("mail failure surfaces as failed dependency", func(t *testing.T) {
		t.Parallel()

		d := newDeps()
		d.users.FindByEmailFunc = func(ctx context.Context, email string) (*entity.User, error) {
			return nil, ErrUserNotFound
		}
		d.users.CreateFunc = func(ctx context.Context, user *entity.User) error {
			user.ID = 9
			return nil
		}
		d.verifications.ReplaceFunc = func(ctx context.Context, entry *entity.VerificationEntry) error {
			return nil
		}
		d.mail.SendFunc = func(ctx context.Context, template, to, subject string, data map[string]any) error {
			return errors.New("smtp down")
		}
		u := d.build()

		_, err := u.Register(ctx, entity.AuthTypePassword, "a@example.com", "password123")
		assert.Equal(t, apperr.FailedDependency, apperr.CodeOf(err))
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	passwordHash := "hashed:correct-password"
	passwordUser := &entity.User{ID: 1, Email: "a@example.com", AuthType: entity.AuthTypePassword, Password: &passwordHash}

	t.Run("correct password", func(t *testing.T) {
		t.Parallel()

		d := newDeps()
		d.users.FindByEmailAndAuthTypeFunc = func(ctx context.Context, email string, authType entity.AuthType) (*entity.User, error) {
			return passwordUser, nil
		}
		u := d.build()

		user, err := u.Login(ctx, entity.AuthTypePassword, "A@Example.com", "correct-password")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		d := newDeps()
		d.users.FindByEmailAndAuthTypeFunc = func(ctx context.Context, email string, authType entity.AuthType) (*entity.User, error) {
			return passwordUser, nil
		}
		u := d.build()

		_, err := u.Login(ctx, entity.AuthTypePassword, "a@example.com", "wrong")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("password login on account with no password", func(t *testing.T) {
		t.Parallel()

		d := newDeps()
		d.users.FindByEmailAndAuthTypeFunc = func(ctx context.Context, email string, authType entity.AuthType) (*entity.User, error) {
			return &entity.User{ID: 2, Email: email, AuthType: entity.AuthTypePassword, Password: nil}, nil
		}
		u := d.build()

		_, err := u.Login(ctx, entity.AuthTypePassword, "a@example.com", "anything")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("oauth account is pre-authenticated", func(t *testing.T) {
		t.Parallel()

		d := newDeps()
		d.users.FindByEmailAndAuthTypeFunc = func(ctx context.Context, email string, authType entity.AuthType) (*entity.User, error) {
			return &entity.User{ID: 3, Email: email, AuthType: entity.AuthTypeGoogle}, nil
		}
		u := d.build()

		user, err := u.Login(ctx, entity.AuthTypeGoogle, "g@example.com", "")
		require.NoError(t, err)
		assert.Equal(t, uint(3), user.ID)
	})

	t.Run("wrong login path", func(t *testing.T) {
		t.Parallel()

		d := newDeps()
		d.users.FindByEmailAndAuthTypeFunc = func(ctx context.Context, email string, authType entity.AuthType) (*entity.User, error) {
			return nil, ErrUserNotFound
		}
		u := d.build()

		_, err := u.Login(ctx, entity.AuthTypePassword, "registered-via-google@example.com", "pw")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestSignToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	user := &entity.User{ID: 1, Email: "a@example.com"}

	t.Run("issues pair and stores session", func(t *testing.T) {
		t.Parallel()

		d := newDeps()
		d.users.FindByIDFunc = func(ctx context.Context, id uint) (*entity.User, error) {
			return user, nil
		}
		var stored *entity.Session
		d.sessions.CreateReplacingActiveFunc = func(ctx context.Context, session *entity.Session) error {
			stored = session
			return nil
		}
		u := d.build()

		pair, err := u.SignToken(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, "access-token", pair.AccessToken)
		assert.Equal(t, "refresh-token", pair.RefreshToken)
		require.NotNil(t, stored)
		assert.Equal(t, "hashed:refresh-token", stored.RefreshTokenHash)
	})

	t.Run("session store failure yields no tokens", func(t *testing.T) {
		t.Parallel()

		d := newDeps()
		d.users.FindByIDFunc = func(ctx context.Context, id uint) (*entity.User, error) {
			return user, nil
		}
		d.sessions.CreateReplacingActiveFunc = func(ctx context.Context, session *entity.Session) error {
			return errDB
		}
		u := d.build()

		pair, err := u.SignToken(ctx, user)
		assert.Error(t, err)
		assert.Nil(t, pair, "tokens must not leak when the session was not persisted")
	})
}

func TestRefreshToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("undecodable token", func(t *testing.T) {
		t.Parallel()

		u := newDeps().build()
		_, err := u.RefreshToken(ctx, "garbage")
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("embedded expiry in the past", func(t *testing.T) {
		t.Parallel()

		d := newDeps()
		d.signer.VerifyRefreshFunc = func(token string) (uint, time.Time, bool) {
			return 1, fixedNow().Add(-time.Minute), true
		}
		u := d.build()

		_, err := u.RefreshToken(ctx, "expired-but-wellformed")
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("rotation with mismatched stored hash", func(t *testing.T) {
		t.Parallel()

		d := newDeps()
		d.signer.VerifyRefreshFunc = func(token string) (uint, time.Time, bool) {
			return 1, fixedNow().Add(time.Hour), true
		}
		d.sessions.FindActiveByUserIDFunc = func(ctx context.Context, userID uint) (*entity.Session, error) {
			return &entity.Session{ID: 1, UserID: 1, RefreshTokenHash: "hashed:some-other-token", Status: entity.SessionActive}, nil
		}
		u := d.build()

		_, err := u.RefreshToken(ctx, "presented-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("successful rotation", func(t *testing.T) {
		t.Parallel()

		d := newDeps()
		d.signer.VerifyRefreshFunc = func(token string) (uint, time.Time, bool) {
			return 1, fixedNow().Add(time.Hour), true
		}
		d.signer.IssueRefreshFunc = func(userID uint) (string, time.Time, error) {
			return "next-refresh", fixedNow().Add(time.Hour), nil
		}
		d.sessions.FindActiveByUserIDFunc = func(ctx context.Context, userID uint) (*entity.Session, error) {
			return &entity.Session{ID: 1, UserID: 1, RefreshTokenHash: "hashed:current-refresh", Status: entity.SessionActive}, nil
		}
		rotated := false
		d.sessions.RotateFunc = func(ctx context.Context, sessionID uint, tokenHash string, expiresAt time.Time) error {
			rotated = true
			assert.Equal(t, "hashed:next-refresh", tokenHash)
			return nil
		}
		u := d.build()

		pair, err := u.RefreshToken(ctx, "current-refresh")
		require.NoError(t, err)
		assert.True(t, rotated)
		assert.Equal(t, "next-refresh", pair.RefreshToken)
		assert.Equal(t, "access-token", pair.AccessToken)
	})
}

func TestResetAndSetNewPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Both entry points run the same sequence against their own
	// verification purpose.
	cases := []struct {
		name  string
		vtype entity.VerificationType
		call  func(u *authUsecase) error
	}{
		{
			name:  "reset password",
			vtype: entity.VerificationResetPassword,
			call: func(u *authUsecase) error {
				return u.ResetPassword(ctx, "uid-1", "secret", "newpassword1")
			},
		},
		{
			name:  "set new password",
			vtype: entity.VerificationSetPassword,
			call: func(u *authUsecase) error {
				return u.SetNewPassword(ctx, "uid-1", "secret", "newpassword1")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps()
			var lookedUpType entity.VerificationType
			d.verifications.FindByUIDFunc = func(ctx context.Context, uid string, vtype entity.VerificationType) (*entity.VerificationEntry, error) {
				lookedUpType = vtype
				return &entity.VerificationEntry{UserID: 4, UID: uid, Hash: "hashed:secret", Type: vtype}, nil
			}
			var newHash string
			d.users.UpdatePasswordFunc = func(ctx context.Context, id uint, passwordHash string) error {
				newHash = passwordHash
				return nil
			}
			cleared := false
			d.verifications.DeleteByUserAndTypeFunc = func(ctx context.Context, userID uint, vtype entity.VerificationType) error {
				cleared = true
				assert.Equal(t, tc.vtype, vtype)
				return nil
			}
			u := d.build()

			require.NoError(t, tc.call(u))
			assert.Equal(t, tc.vtype, lookedUpType)
			assert.Equal(t, "hashed:newpassword1", newHash)
			assert.True(t, cleared, "entry is consumed after the password change")
		})
	}

	t.Run("wrong secret leaves entry and password", func(t *testing.T) {
		t.Parallel()

		d := newDeps()
		d.verifications.FindByUIDFunc = func(ctx context.Context, uid string, vtype entity.VerificationType) (*entity.VerificationEntry, error) {
			return &entity.VerificationEntry{UserID: 4, UID: uid, Hash: "hashed:secret", Type: vtype}, nil
		}
		u := d.build()

		err := u.ResetPassword(ctx, "uid-1", "wrong-secret", "newpassword1")
		assert.ErrorIs(t, err, ErrInvalidUID)
	})

	t.Run("weak password rejected before lookup", func(t *testing.T) {
		t.Parallel()

		u := newDeps().build()
		err := u.ResetPassword(ctx, "uid-1", "secret", "short")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestVerifyEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := newDeps()
	d.verifications.FindByUIDFunc = func(ctx context.Context, uid string, vtype entity.VerificationType) (*entity.VerificationEntry, error) {
		return &entity.VerificationEntry{UserID: 4, UID: uid, Hash: "hashed:secret", Type: vtype}, nil
	}
	var applied UserUpdate
	d.users.UpdateFunc = func(ctx context.Context, id uint, upd UserUpdate) error {
		applied = upd
		return nil
	}
	d.verifications.DeleteByUserAndTypeFunc = func(ctx context.Context, userID uint, vtype entity.VerificationType) error {
		return nil
	}
	d.users.FindByIDFunc = func(ctx context.Context, id uint) (*entity.User, error) {
		return &entity.User{ID: id, EmailVerified: true}, nil
	}
	u := d.build()

	user, err := u.VerifyEmail(ctx, "uid-1", "secret")
	require.NoError(t, err)
	require.NotNil(t, applied.EmailVerified)
	assert.True(t, *applied.EmailVerified)
	assert.True(t, user.EmailVerified)
}

func TestResendVerificationEmail_AlreadyVerified(t *testing.T) {
	t.Parallel()

	d := newDeps()
	d.users.FindByEmailFunc = func(ctx context.Context, email string) (*entity.User, error) {
		return &entity.User{ID: 1, Email: email, EmailVerified: true}, nil
	}
	u := d.build()

	err := u.ResendVerificationEmail(context.Background(), "a@example.com")
	assert.ErrorIs(t, err, ErrUserAlreadyOnboarded)
}

func TestSendPhoneVerificationCode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := newDeps()
	d.users.FindByIDFunc = func(ctx context.Context, id uint) (*entity.User, error) {
		return &entity.User{ID: id}, nil
	}
	var stored *entity.PhoneVerificationCode
	d.phoneCodes.ReplaceFunc = func(ctx context.Context, code *entity.PhoneVerificationCode) error {
		stored = code
		return nil
	}
	u := d.build()

	require.NoError(t, u.SendPhoneVerificationCode(ctx, "+15550001111", 1))
	require.NotNil(t, stored)
	assert.Len(t, stored.Code, 6)
	require.Len(t, d.sms.Sent, 1)
	assert.Contains(t, d.sms.Sent[0], stored.Code)
}

func TestVerifyPhoneCode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := newDeps()
	d.phoneCodes.FindByUserIDFunc = func(ctx context.Context, userID uint) (*entity.PhoneVerificationCode, error) {
		return &entity.PhoneVerificationCode{UserID: 1, PhoneNumber: "+15550001111", Code: "123456", ExpiresAt: fixedNow().Add(time.Minute)}, nil
	}
	d.phoneCodes.DeleteMatchingFunc = func(ctx context.Context, userID uint, code string) error {
		return nil
	}
	var applied UserUpdate
	d.users.UpdateFunc = func(ctx context.Context, id uint, upd UserUpdate) error {
		applied = upd
		return nil
	}
	d.users.FindByIDFunc = func(ctx context.Context, id uint) (*entity.User, error) {
		return &entity.User{ID: id, PhoneNumber: "+15550001111", PhoneVerified: true}, nil
	}
	u := d.build()

	user, err := u.VerifyPhoneCode(ctx, 1, "123456")
	require.NoError(t, err)
	require.NotNil(t, applied.PhoneNumber)
	assert.Equal(t, "+15550001111", *applied.PhoneNumber)
	require.NotNil(t, applied.PhoneVerified)
	assert.True(t, *applied.PhoneVerified)
	assert.True(t, user.PhoneVerified)
}

func TestVerifyLoginCode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	user := &entity.User{ID: 1, Email: "a@example.com"}

	base := func() *deps {
		d := newDeps()
		d.users.FindByEmailFunc = func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		}
		d.users.FindByIDFunc = func(ctx context.Context, id uint) (*entity.User, error) {
			return user, nil
		}
		d.loginCodes.FindByEmailFunc = func(ctx context.Context, email string) (*entity.LoginCode, error) {
			return &entity.LoginCode{Email: email, Code: "1234", ExpiresAt: fixedNow().Add(time.Minute)}, nil
		}
		d.loginCodes.DeleteMatchingFunc = func(ctx context.Context, email, code string) error {
			return nil
		}
		d.sessions.CreateReplacingActiveFunc = func(ctx context.Context, session *entity.Session) error {
			return nil
		}
		return d
	}

	t.Run("success without device trust", func(t *testing.T) {
		t.Parallel()

		d := base()
		u := d.build()

		got, pair, err := u.VerifyLoginCode(ctx, "1234", "a@example.com", false, "")
		require.NoError(t, err)
		assert.Equal(t, user, got)
		assert.Equal(t, "access-token", pair.AccessToken)
	})

	t.Run("dont-ask persists device trust before tokening", func(t *testing.T) {
		t.Parallel()

		d := base()
		var trusted *entity.DeviceToken
		d.devices.ReplaceFunc = func(ctx context.Context, token *entity.DeviceToken) error {
			trusted = token
			return nil
		}
		u := d.build()

		_, _, err := u.VerifyLoginCode(ctx, "1234", "a@example.com", true, "device-token")
		require.NoError(t, err)
		require.NotNil(t, trusted)
		assert.Equal(t, "device-token", trusted.Token)
		assert.Equal(t, uint(1), trusted.UserID)
		assert.Equal(t, fixedNow().Add(30*24*time.Hour), trusted.ExpiresAt)
	})

	t.Run("wrong code", func(t *testing.T) {
		t.Parallel()

		d := base()
		u := d.build()

		_, _, err := u.VerifyLoginCode(ctx, "0000", "a@example.com", false, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("sign-token failure reports invalid input", func(t *testing.T) {
		t.Parallel()

		d := base()
		d.sessions.CreateReplacingActiveFunc = func(ctx context.Context, session *entity.Session) error {
			return errDB
		}
		u := d.build()

		_, _, err := u.VerifyLoginCode(ctx, "1234", "a@example.com", false, "")
		assert.Equal(t, apperr.InvalidInput, apperr.CodeOf(err))
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	d := newDeps()
	d.sessions.FindActiveByUserIDFunc = func(ctx context.Context, userID uint) (*entity.Session, error) {
		return &entity.Session{ID: 3, UserID: userID, Status: entity.SessionActive}, nil
	}
	var newStatus entity.SessionStatus
	d.sessions.UpdateStatusFunc = func(ctx context.Context, sessionID uint, status entity.SessionStatus) error {
		newStatus = status
		return nil
	}
	u := d.build()

	require.NoError(t, u.Logout(context.Background(), 1))
	assert.Equal(t, entity.SessionLoggedOut, newStatus)
}
