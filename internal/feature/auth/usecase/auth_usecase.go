package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/shared/apperr"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8

	// dummyPasswordHash is compared against when an account has no password
	// set, so both paths take the same time.
	dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// TokenPair is the result of signing tokens for a user. How it is delivered
// (cookies vs body) is the transport layer's decision.
type TokenPair struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
}

// authUsecase composes the token signer, the session/verification/code/device
// stores and the user directory into the login, register, refresh, reset,
// verify and logout protocols. It holds no mutable state of its own.
type authUsecase struct {
	users         UserRepository
	sessions      *sessionStore
	verifications *verificationStore
	loginCodes    *loginCodeStore
	phoneCodes    *phoneCodeStore
	devices       *deviceStore
	signer        TokenSigner
	hasher        Hasher
	mail          EmailSender
	sms           SMSSender
	now           func() time.Time
}

// NewAuthUsecase wires the orchestrator from its collaborators. refreshTTL
// must match the signer's refresh token TTL so session expiry and embedded
// token expiry stay aligned.
func NewAuthUsecase(
	users UserRepository,
	sessions SessionRepository,
	verifications VerificationRepository,
	loginCodes LoginCodeRepository,
	phoneCodes PhoneCodeRepository,
	devices DeviceTokenRepository,
	signer TokenSigner,
	hasher Hasher,
	mail EmailSender,
	sms SMSSender,
	refreshTTL time.Duration,
) *authUsecase {
	return &authUsecase{
		users:         users,
		sessions:      newSessionStore(sessions, users, hasher, refreshTTL),
		verifications: newVerificationStore(verifications, hasher),
		loginCodes:    newLoginCodeStore(loginCodes),
		phoneCodes:    newPhoneCodeStore(phoneCodes),
		devices:       newDeviceStore(devices),
		signer:        signer,
		hasher:        hasher,
		mail:          mail,
		sms:           sms,
		now:           time.Now,
	}
}

// normalizeEmail lowercases and trims an email for case-normalized storage
// and lookup.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validatePassword checks the password against the minimum requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrInvalidInput
	}
	return nil
}

// Register creates a new account and kicks off the email-verification
// sub-flow. The email must not be registered yet, under any auth type.
func (u *authUsecase) Register(ctx context.Context, authType entity.AuthType, email, password string) (*entity.User, error) {
	if !authType.Valid() {
		return nil, ErrInvalidInput
	}
	email = normalizeEmail(email)

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrUserAlreadyRegistered
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	user := &entity.User{
		Email:         email,
		AuthType:      authType,
		Notifications: true,
	}
	if authType.IsPasswordBased() {
		if err := validatePassword(password); err != nil {
			return nil, err
		}
		hashed, err := u.hasher.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = &hashed
	}

	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := u.sendVerificationEmail(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// sendVerificationEmail issues a fresh verification entry and dispatches the
// link. A failed dispatch is reported: a link that was not delivered must
// not be treated as sent.
func (u *authUsecase) sendVerificationEmail(ctx context.Context, user *entity.User) error {
	uid, hashUID, err := u.verifications.Set(ctx, user.ID, entity.VerificationEmail)
	if err != nil {
		return err
	}
	data := map[string]any{"link": uid + "/" + hashUID}
	if err := u.mail.Send(ctx, TemplateVerifyEmail, user.Email, "Verify your email", data); err != nil {
		return apperr.Wrap(apperr.FailedDependency, err)
	}
	return nil
}

// Login authenticates a user for one login path. A user registered via an
// OAuth provider cannot log in via password with the same email. Non-password
// auth types are pre-authenticated by the external identity provider and
// succeed once the account is found. Token issuance is a separate step
// (SignToken) so login and tokening can fail independently.
func (u *authUsecase) Login(ctx context.Context, authType entity.AuthType, email, password string) (*entity.User, error) {
	if !authType.Valid() {
		return nil, ErrInvalidInput
	}
	email = normalizeEmail(email)

	user, err := u.users.FindByEmailAndAuthType(ctx, email, authType)
	if err != nil {
		return nil, err
	}

	if authType.IsPasswordBased() {
		// Compare against a dummy hash when no password is set so the two
		// paths take the same time.
		passwordHash := dummyPasswordHash
		if user.Password != nil {
			passwordHash = *user.Password
		}
		if !u.hasher.Verify(password, passwordHash) || user.Password == nil {
			return nil, ErrWrongPassword
		}
	}
	return user, nil
}

// SignToken issues an access/refresh token pair and persists the session,
// invalidating any prior active one. If session storage fails no tokens are
// returned, even though they were generated in memory.
func (u *authUsecase) SignToken(ctx context.Context, user *entity.User) (*TokenPair, error) {
	accessToken, accessExp, err := u.signer.IssueAccess(user.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.ServerError, err)
	}
	refreshToken, refreshExp, err := u.signer.IssueRefresh(user.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.ServerError, err)
	}

	if _, err := u.sessions.Store(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}

// RefreshToken rotates the refresh token and issues a fresh access token.
// The token is decoded without rejecting on expiry so that an expired-but-
// well-formed token still yields SessionExpired rather than a generic
// failure; an undecodable token yields SessionExpired too.
func (u *authUsecase) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, expiresAt, ok := u.signer.VerifyRefresh(refreshToken)
	if !ok {
		return nil, ErrSessionExpired
	}
	if u.now().After(expiresAt) {
		return nil, ErrSessionExpired
	}

	newRefresh, refreshExp, err := u.signer.IssueRefresh(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.ServerError, err)
	}
	if _, err := u.sessions.Update(ctx, userID, refreshToken, newRefresh); err != nil {
		return nil, err
	}

	accessToken, accessExp, err := u.signer.IssueAccess(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.ServerError, err)
	}

	return &TokenPair{
		AccessToken:           accessToken,
		RefreshToken:          newRefresh,
		AccessTokenExpiresAt:  accessExp,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}

// Logout transitions the user's active session to logged_out.
func (u *authUsecase) Logout(ctx context.Context, userID uint) error {
	return u.sessions.Expire(ctx, userID, entity.SessionLoggedOut)
}

// SendForgotPasswordEmail starts the password-recovery flow.
func (u *authUsecase) SendForgotPasswordEmail(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	uid, hashUID, err := u.verifications.Set(ctx, user.ID, entity.VerificationResetPassword)
	if err != nil {
		return err
	}
	data := map[string]any{"link": uid + "/" + hashUID}
	if err := u.mail.Send(ctx, TemplateResetPassword, user.Email, "Reset your password", data); err != nil {
		return apperr.Wrap(apperr.FailedDependency, err)
	}
	return nil
}

// ResetPassword completes the password-recovery flow.
func (u *authUsecase) ResetPassword(ctx context.Context, uid, hashUID, password string) error {
	return u.consumeVerificationAndSetPassword(ctx, uid, hashUID, password, entity.VerificationResetPassword)
}

// SetNewPassword completes first-time password setup. The mechanism is the
// recovery mechanism parameterized by purpose; the entry point is kept
// separate because onboarding and recovery are distinct caller-facing
// operations.
func (u *authUsecase) SetNewPassword(ctx context.Context, uid, hashUID, password string) error {
	return u.consumeVerificationAndSetPassword(ctx, uid, hashUID, password, entity.VerificationSetPassword)
}

// consumeVerificationAndSetPassword is the shared verify-UID, hash, update
// password, clear-UID sequence behind ResetPassword and SetNewPassword.
func (u *authUsecase) consumeVerificationAndSetPassword(ctx context.Context, uid, hashUID, password string, vtype entity.VerificationType) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	entry, err := u.verifications.Verify(ctx, uid, hashUID, vtype)
	if err != nil {
		return err
	}
	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := u.users.UpdatePassword(ctx, entry.UserID, hashed); err != nil {
		return err
	}
	return u.verifications.Clear(ctx, entry.UserID, vtype)
}

// VerifyEmail consumes an email-verification link and marks the user
// verified.
func (u *authUsecase) VerifyEmail(ctx context.Context, uid, hashUID string) (*entity.User, error) {
	entry, err := u.verifications.Verify(ctx, uid, hashUID, entity.VerificationEmail)
	if err != nil {
		return nil, err
	}
	verified := true
	if err := u.users.Update(ctx, entry.UserID, UserUpdate{EmailVerified: &verified}); err != nil {
		return nil, err
	}
	if err := u.verifications.Clear(ctx, entry.UserID, entity.VerificationEmail); err != nil {
		return nil, err
	}
	return u.users.FindByID(ctx, entry.UserID)
}

// ResendVerificationEmail re-issues the verification link, superseding the
// prior one. Already-verified users are rejected so the flow cannot be used
// to probe accounts.
func (u *authUsecase) ResendVerificationEmail(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return ErrUserAlreadyOnboarded
	}
	return u.sendVerificationEmail(ctx, user)
}

// SendPhoneVerificationCode issues a 6-digit code for the user's phone
// number and dispatches it via SMS. Dispatch failure is reported as a failed
// dependency: the code must not be considered sent if delivery failed.
func (u *authUsecase) SendPhoneVerificationCode(ctx context.Context, phoneNumber string, userID uint) error {
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		return err
	}
	code, err := u.phoneCodes.Set(ctx, userID, phoneNumber)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Your verification code is %s", code.Code)
	if err := u.sms.Send(ctx, phoneNumber, message); err != nil {
		return apperr.Wrap(apperr.FailedDependency, err)
	}
	return nil
}

// VerifyPhoneCode consumes the user's phone code and records the verified
// phone number.
func (u *authUsecase) VerifyPhoneCode(ctx context.Context, userID uint, code string) (*entity.User, error) {
	consumed, err := u.phoneCodes.Consume(ctx, userID, code)
	if err != nil {
		return nil, err
	}
	verified := true
	upd := UserUpdate{PhoneNumber: &consumed.PhoneNumber, PhoneVerified: &verified}
	if err := u.users.Update(ctx, userID, upd); err != nil {
		return nil, err
	}
	return u.users.FindByID(ctx, userID)
}

// ResendLoginCode issues a fresh 4-digit login code for the email,
// superseding any outstanding one, and dispatches it via email.
func (u *authUsecase) ResendLoginCode(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	code, err := u.loginCodes.Set(ctx, email)
	if err != nil {
		return err
	}
	data := map[string]any{"code": code.Code}
	if err := u.mail.Send(ctx, TemplateLoginCode, user.Email, "Your login code", data); err != nil {
		return apperr.Wrap(apperr.FailedDependency, err)
	}
	return nil
}

// VerifyLoginCode consumes a login code and signs tokens for the user. When
// the client asked not to be asked again on this device and supplied a
// device token, the trust record is persisted before tokening. A sign-token
// failure is reported as invalid input: from the caller's perspective the
// login code is what must be retried.
func (u *authUsecase) VerifyLoginCode(ctx context.Context, loginCode, email string, dontAskOnThisDevice bool, deviceToken string) (*entity.User, *TokenPair, error) {
	email = normalizeEmail(email)
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if err := u.loginCodes.Consume(ctx, email, loginCode); err != nil {
		return nil, nil, err
	}

	if dontAskOnThisDevice && deviceToken != "" {
		if err := u.devices.Store(ctx, deviceToken, user.ID, defaultDeviceTrustDays); err != nil {
			return nil, nil, apperr.Wrap(apperr.ServerError, err)
		}
	}

	pair, err := u.SignToken(ctx, user)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.InvalidInput, err)
	}
	return user, pair, nil
}

// VerifyDeviceToken reports whether the token marks a trusted device, and
// for which user. A valid token lets the login flow skip the login-code
// step.
func (u *authUsecase) VerifyDeviceToken(ctx context.Context, deviceToken string) (uint, bool, error) {
	return u.devices.Verify(ctx, deviceToken)
}
