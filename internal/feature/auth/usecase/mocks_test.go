package usecase

import (
	"context"
	"errors"
	"time"

	"account_backend/internal/feature/auth/domain/entity"
)

// errDB is a sentinel shared between mocks and expectations.
var errDB = errors.New("database error")

// fakeHasher is a deterministic Hasher for tests. Hashes are reversible by
// construction so expectations can be written against them.
type fakeHasher struct{}

func (fakeHasher) Hash(secret string) (string, error) { return "hashed:" + secret, nil }
func (fakeHasher) Verify(secret, hash string) bool    { return hash == "hashed:"+secret }

type mockUserRepo struct {
	CreateFunc                 func(ctx context.Context, user *entity.User) error
	FindByEmailFunc            func(ctx context.Context, email string) (*entity.User, error)
	FindByEmailAndAuthTypeFunc func(ctx context.Context, email string, authType entity.AuthType) (*entity.User, error)
	FindByIDFunc               func(ctx context.Context, id uint) (*entity.User, error)
	UpdateFunc                 func(ctx context.Context, id uint, upd UserUpdate) error
	UpdatePasswordFunc         func(ctx context.Context, id uint, passwordHash string) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return errors.New("CreateFunc is not implemented")
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errors.New("FindByEmailFunc is not implemented")
}

func (m *mockUserRepo) FindByEmailAndAuthType(ctx context.Context, email string, authType entity.AuthType) (*entity.User, error) {
	if m.FindByEmailAndAuthTypeFunc != nil {
		return m.FindByEmailAndAuthTypeFunc(ctx, email, authType)
	}
	return nil, errors.New("FindByEmailAndAuthTypeFunc is not implemented")
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc is not implemented")
}

func (m *mockUserRepo) Update(ctx context.Context, id uint, upd UserUpdate) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, upd)
	}
	return errors.New("UpdateFunc is not implemented")
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, passwordHash)
	}
	return errors.New("UpdatePasswordFunc is not implemented")
}

type mockSessionRepo struct {
	CreateReplacingActiveFunc func(ctx context.Context, session *entity.Session) error
	FindActiveByUserIDFunc    func(ctx context.Context, userID uint) (*entity.Session, error)
	FindByUserIDFunc          func(ctx context.Context, userID uint) ([]*entity.Session, error)
	RotateFunc                func(ctx context.Context, sessionID uint, tokenHash string, expiresAt time.Time) error
	UpdateStatusFunc          func(ctx context.Context, sessionID uint, status entity.SessionStatus) error
}

func (m *mockSessionRepo) CreateReplacingActive(ctx context.Context, session *entity.Session) error {
	if m.CreateReplacingActiveFunc != nil {
		return m.CreateReplacingActiveFunc(ctx, session)
	}
	return errors.New("CreateReplacingActiveFunc is not implemented")
}

func (m *mockSessionRepo) FindActiveByUserID(ctx context.Context, userID uint) (*entity.Session, error) {
	if m.FindActiveByUserIDFunc != nil {
		return m.FindActiveByUserIDFunc(ctx, userID)
	}
	return nil, errors.New("FindActiveByUserIDFunc is not implemented")
}

func (m *mockSessionRepo) FindByUserID(ctx context.Context, userID uint) ([]*entity.Session, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, errors.New("FindByUserIDFunc is not implemented")
}

func (m *mockSessionRepo) Rotate(ctx context.Context, sessionID uint, tokenHash string, expiresAt time.Time) error {
	if m.RotateFunc != nil {
		return m.RotateFunc(ctx, sessionID, tokenHash, expiresAt)
	}
	return errors.New("RotateFunc is not implemented")
}

func (m *mockSessionRepo) UpdateStatus(ctx context.Context, sessionID uint, status entity.SessionStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, sessionID, status)
	}
	return errors.New("UpdateStatusFunc is not implemented")
}

type mockVerificationRepo struct {
	ReplaceFunc             func(ctx context.Context, entry *entity.VerificationEntry) error
	FindByUIDFunc           func(ctx context.Context, uid string, vtype entity.VerificationType) (*entity.VerificationEntry, error)
	DeleteByUserAndTypeFunc func(ctx context.Context, userID uint, vtype entity.VerificationType) error
}

func (m *mockVerificationRepo) Replace(ctx context.Context, entry *entity.VerificationEntry) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, entry)
	}
	return errors.New("ReplaceFunc is not implemented")
}

func (m *mockVerificationRepo) FindByUID(ctx context.Context, uid string, vtype entity.VerificationType) (*entity.VerificationEntry, error) {
	if m.FindByUIDFunc != nil {
		return m.FindByUIDFunc(ctx, uid, vtype)
	}
	return nil, errors.New("FindByUIDFunc is not implemented")
}

func (m *mockVerificationRepo) DeleteByUserAndType(ctx context.Context, userID uint, vtype entity.VerificationType) error {
	if m.DeleteByUserAndTypeFunc != nil {
		return m.DeleteByUserAndTypeFunc(ctx, userID, vtype)
	}
	return errors.New("DeleteByUserAndTypeFunc is not implemented")
}

type mockLoginCodeRepo struct {
	ReplaceFunc        func(ctx context.Context, code *entity.LoginCode) error
	FindByEmailFunc    func(ctx context.Context, email string) (*entity.LoginCode, error)
	DeleteMatchingFunc func(ctx context.Context, email, code string) error
}

func (m *mockLoginCodeRepo) Replace(ctx context.Context, code *entity.LoginCode) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, code)
	}
	return errors.New("ReplaceFunc is not implemented")
}

func (m *mockLoginCodeRepo) FindByEmail(ctx context.Context, email string) (*entity.LoginCode, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errors.New("FindByEmailFunc is not implemented")
}

func (m *mockLoginCodeRepo) DeleteMatching(ctx context.Context, email, code string) error {
	if m.DeleteMatchingFunc != nil {
		return m.DeleteMatchingFunc(ctx, email, code)
	}
	return errors.New("DeleteMatchingFunc is not implemented")
}

type mockPhoneCodeRepo struct {
	ReplaceFunc        func(ctx context.Context, code *entity.PhoneVerificationCode) error
	FindByUserIDFunc   func(ctx context.Context, userID uint) (*entity.PhoneVerificationCode, error)
	DeleteMatchingFunc func(ctx context.Context, userID uint, code string) error
	DeleteByUserIDFunc func(ctx context.Context, userID uint) error
	DeleteByUserCalls  int
}

func (m *mockPhoneCodeRepo) Replace(ctx context.Context, code *entity.PhoneVerificationCode) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, code)
	}
	return errors.New("ReplaceFunc is not implemented")
}

func (m *mockPhoneCodeRepo) FindByUserID(ctx context.Context, userID uint) (*entity.PhoneVerificationCode, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, errors.New("FindByUserIDFunc is not implemented")
}

func (m *mockPhoneCodeRepo) DeleteMatching(ctx context.Context, userID uint, code string) error {
	if m.DeleteMatchingFunc != nil {
		return m.DeleteMatchingFunc(ctx, userID, code)
	}
	return errors.New("DeleteMatchingFunc is not implemented")
}

func (m *mockPhoneCodeRepo) DeleteByUserID(ctx context.Context, userID uint) error {
	m.DeleteByUserCalls++
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

type mockDeviceRepo struct {
	ReplaceFunc       func(ctx context.Context, token *entity.DeviceToken) error
	FindByTokenFunc   func(ctx context.Context, token string) (*entity.DeviceToken, error)
	DeleteByTokenFunc func(ctx context.Context, token string) error
	DeleteCalls       int
}

func (m *mockDeviceRepo) Replace(ctx context.Context, token *entity.DeviceToken) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, token)
	}
	return errors.New("ReplaceFunc is not implemented")
}

func (m *mockDeviceRepo) FindByToken(ctx context.Context, token string) (*entity.DeviceToken, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, token)
	}
	return nil, errors.New("FindByTokenFunc is not implemented")
}

func (m *mockDeviceRepo) DeleteByToken(ctx context.Context, token string) error {
	m.DeleteCalls++
	if m.DeleteByTokenFunc != nil {
		return m.DeleteByTokenFunc(ctx, token)
	}
	return nil
}

// mockSigner issues predictable tokens and lets tests drive VerifyRefresh.
type mockSigner struct {
	IssueAccessFunc   func(userID uint) (string, time.Time, error)
	IssueRefreshFunc  func(userID uint) (string, time.Time, error)
	VerifyRefreshFunc func(token string) (uint, time.Time, bool)
}

func (m *mockSigner) IssueAccess(userID uint) (string, time.Time, error) {
	if m.IssueAccessFunc != nil {
		return m.IssueAccessFunc(userID)
	}
	return "access-token", time.Now().Add(15 * time.Minute), nil
}

func (m *mockSigner) IssueRefresh(userID uint) (string, time.Time, error) {
	if m.IssueRefreshFunc != nil {
		return m.IssueRefreshFunc(userID)
	}
	return "refresh-token", time.Now().Add(7 * 24 * time.Hour), nil
}

func (m *mockSigner) VerifyRefresh(token string) (uint, time.Time, bool) {
	if m.VerifyRefreshFunc != nil {
		return m.VerifyRefreshFunc(token)
	}
	return 0, time.Time{}, false
}

type sentMail struct {
	template string
	to       string
	subject  string
	data     map[string]any
}

type mockEmailSender struct {
	SendFunc func(ctx context.Context, template, to, subject string, data map[string]any) error
	Sent     []sentMail
}

func (m *mockEmailSender) Send(ctx context.Context, template, to, subject string, data map[string]any) error {
	m.Sent = append(m.Sent, sentMail{template: template, to: to, subject: subject, data: data})
	if m.SendFunc != nil {
		return m.SendFunc(ctx, template, to, subject, data)
	}
	return nil
}

type mockSMSSender struct {
	SendFunc func(ctx context.Context, to, message string) error
	Sent     []string
}

func (m *mockSMSSender) Send(ctx context.Context, to, message string) error {
	m.Sent = append(m.Sent, message)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, message)
	}
	return nil
}
