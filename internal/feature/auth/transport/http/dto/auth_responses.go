package dto

import (
	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
)

// UserRes is the client-facing projection of a user. Password hashes never
// leave the backend.
type UserRes struct {
	ID            uint   `json:"id"`
	Email         string `json:"email"`
	AuthType      string `json:"auth_type"`
	EmailVerified bool   `json:"email_verified"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	PhoneVerified bool   `json:"phone_verified"`
	Notifications bool   `json:"notifications"`
}

// UserResFromEntity converts a user entity to its response projection.
func UserResFromEntity(u *entity.User) UserRes {
	return UserRes{
		ID:            u.ID,
		Email:         u.Email,
		AuthType:      string(u.AuthType),
		EmailVerified: u.EmailVerified,
		PhoneNumber:   u.PhoneNumber,
		PhoneVerified: u.PhoneVerified,
		Notifications: u.Notifications,
	}
}

// TokenRes is the body-delivered token payload. Expiries are unix seconds.
type TokenRes struct {
	AccessToken           string `json:"access_token,omitempty"`
	RefreshToken          string `json:"refresh_token,omitempty"`
	AccessTokenExpiresAt  int64  `json:"access_token_expires_at"`
	RefreshTokenExpiresAt int64  `json:"refresh_token_expires_at"`
}

// TokenResFromPair converts a token pair to its response form. When
// bodyTokens is false (web clients, cookie delivery) the token values are
// omitted and only the expiries are returned.
func TokenResFromPair(p *usecase.TokenPair, bodyTokens bool) TokenRes {
	res := TokenRes{
		AccessTokenExpiresAt:  p.AccessTokenExpiresAt.Unix(),
		RefreshTokenExpiresAt: p.RefreshTokenExpiresAt.Unix(),
	}
	if bodyTokens {
		res.AccessToken = p.AccessToken
		res.RefreshToken = p.RefreshToken
	}
	return res
}
