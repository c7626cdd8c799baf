// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/transport/http/dto"
	"account_backend/internal/feature/auth/usecase"
	jwtmw "account_backend/internal/platform/jwt"
	"account_backend/internal/shared/response"
)

// clientTypeWeb selects cookie delivery of tokens; anything else gets them
// in the response body.
const clientTypeWeb = "web"

// AuthUsecase defines the auth operations consumed by the HTTP layer.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, authType entity.AuthType, email, password string) (*entity.User, error)
	Login(ctx context.Context, authType entity.AuthType, email, password string) (*entity.User, error)
	SignToken(ctx context.Context, user *entity.User) (*usecase.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*usecase.TokenPair, error)
	Logout(ctx context.Context, userID uint) error
	SendForgotPasswordEmail(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, uid, hashUID, password string) error
	SetNewPassword(ctx context.Context, uid, hashUID, password string) error
	VerifyEmail(ctx context.Context, uid, hashUID string) (*entity.User, error)
	ResendVerificationEmail(ctx context.Context, email string) error
	SendPhoneVerificationCode(ctx context.Context, phoneNumber string, userID uint) error
	VerifyPhoneCode(ctx context.Context, userID uint, code string) (*entity.User, error)
	ResendLoginCode(ctx context.Context, email string) error
	VerifyLoginCode(ctx context.Context, loginCode, email string, dontAskOnThisDevice bool, deviceToken string) (*entity.User, *usecase.TokenPair, error)
	VerifyDeviceToken(ctx context.Context, deviceToken string) (uint, bool, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// deliverTokens writes the token pair either as HttpOnly cookies (web
// clients) or in the response body (mobile clients). The choice is a
// transport concern; the core never sees it.
func deliverTokens(c *gin.Context, pair *usecase.TokenPair, user *entity.User) {
	web := c.GetHeader("X-Client-Type") == clientTypeWeb
	if web {
		accessMaxAge := int(time.Until(pair.AccessTokenExpiresAt).Seconds())
		refreshMaxAge := int(time.Until(pair.RefreshTokenExpiresAt).Seconds())
		c.SetCookie("access_token", pair.AccessToken, accessMaxAge, "/", "", true, true)
		c.SetCookie("refresh_token", pair.RefreshToken, refreshMaxAge, "/", "", true, true)
	}
	response.OK(c, http.StatusOK, gin.H{
		"user":   dto.UserResFromEntity(user),
		"tokens": dto.TokenResFromPair(pair, !web),
	})
}

// Signup handles the user registration endpoint.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Fail(c, usecase.ErrInvalidInput)
		return
	}
	user, err := h.auth.Register(c.Request.Context(), entity.AuthType(req.AuthType), req.Email, req.Password)
	if err != nil {
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		response.Fail(c, err)
		return
	}
	slog.Info("user signup successful", "email", user.Email, "remote_addr", c.ClientIP())
	response.OK(c, http.StatusCreated, dto.UserResFromEntity(user))
}

// Login handles the login endpoint. After credentials check out, a trusted
// device token short-circuits straight to token issuance; otherwise a login
// code is dispatched and the client completes via /login-code/verify.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Fail(c, usecase.ErrInvalidInput)
		return
	}
	ctx := c.Request.Context()

	user, err := h.auth.Login(ctx, entity.AuthType(req.AuthType), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		response.Fail(c, err)
		return
	}

	if req.DeviceToken != "" {
		trustedID, valid, err := h.auth.VerifyDeviceToken(ctx, req.DeviceToken)
		if err != nil {
			response.Fail(c, err)
			return
		}
		if valid && trustedID == user.ID {
			pair, err := h.auth.SignToken(ctx, user)
			if err != nil {
				response.Fail(c, err)
				return
			}
			slog.Info("user login successful", "user_id", user.ID, "device_trusted", true)
			deliverTokens(c, pair, user)
			return
		}
	}

	if err := h.auth.ResendLoginCode(ctx, user.Email); err != nil {
		response.Fail(c, err)
		return
	}
	slog.Info("login code dispatched", "user_id", user.ID)
	response.OK(c, http.StatusOK, gin.H{"login_code_sent": true})
}

// Refresh handles refresh token rotation.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, usecase.ErrInvalidInput)
		return
	}
	pair, err := h.auth.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Fail(c, err)
		return
	}
	web := c.GetHeader("X-Client-Type") == clientTypeWeb
	if web {
		c.SetCookie("access_token", pair.AccessToken, int(time.Until(pair.AccessTokenExpiresAt).Seconds()), "/", "", true, true)
		c.SetCookie("refresh_token", pair.RefreshToken, int(time.Until(pair.RefreshTokenExpiresAt).Seconds()), "/", "", true, true)
	}
	response.OK(c, http.StatusOK, dto.TokenResFromPair(pair, !web))
}

// Logout terminates the caller's active session.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, usecase.ErrInvalidToken)
		return
	}
	if err := h.auth.Logout(c.Request.Context(), userID); err != nil {
		response.Fail(c, err)
		return
	}
	slog.Info("user logout", "user_id", userID)
	response.OK(c, http.StatusOK, nil)
}

// ForgotPassword starts the password-recovery flow.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, usecase.ErrInvalidInput)
		return
	}
	if err := h.auth.SendForgotPasswordEmail(c.Request.Context(), req.Email); err != nil {
		slog.Warn("forgot password failed", "error", err, "email", req.Email)
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, nil)
}

// ResetPassword completes the password-recovery flow.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.SetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, usecase.ErrInvalidInput)
		return
	}
	if err := h.auth.ResetPassword(c.Request.Context(), req.UID, req.HashUID, req.Password); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, nil)
}

// SetNewPassword completes first-time password setup.
func (h *AuthHandler) SetNewPassword(c *gin.Context) {
	var req dto.SetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, usecase.ErrInvalidInput)
		return
	}
	if err := h.auth.SetNewPassword(c.Request.Context(), req.UID, req.HashUID, req.Password); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, nil)
}

// VerifyEmail consumes an email-verification link.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, usecase.ErrInvalidInput)
		return
	}
	user, err := h.auth.VerifyEmail(c.Request.Context(), req.UID, req.HashUID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	slog.Info("email verified", "user_id", user.ID)
	response.OK(c, http.StatusOK, dto.UserResFromEntity(user))
}

// ResendVerificationEmail re-issues the email-verification link.
func (h *AuthHandler) ResendVerificationEmail(c *gin.Context) {
	var req dto.ResendEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, usecase.ErrInvalidInput)
		return
	}
	if err := h.auth.ResendVerificationEmail(c.Request.Context(), req.Email); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, nil)
}

// SendPhoneCode dispatches a phone verification code to the caller.
func (h *AuthHandler) SendPhoneCode(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, usecase.ErrInvalidToken)
		return
	}
	var req dto.SendPhoneCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, usecase.ErrInvalidInput)
		return
	}
	if err := h.auth.SendPhoneVerificationCode(c.Request.Context(), req.PhoneNumber, userID); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, nil)
}

// VerifyPhoneCode consumes the caller's phone verification code.
func (h *AuthHandler) VerifyPhoneCode(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, usecase.ErrInvalidToken)
		return
	}
	var req dto.VerifyPhoneCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, usecase.ErrInvalidInput)
		return
	}
	user, err := h.auth.VerifyPhoneCode(c.Request.Context(), userID, req.Code)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, dto.UserResFromEntity(user))
}

// ResendLoginCode re-issues a passwordless login code.
func (h *AuthHandler) ResendLoginCode(c *gin.Context) {
	var req dto.ResendEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, usecase.ErrInvalidInput)
		return
	}
	if err := h.auth.ResendLoginCode(c.Request.Context(), req.Email); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, nil)
}

// VerifyLoginCode consumes a login code and issues tokens.
func (h *AuthHandler) VerifyLoginCode(c *gin.Context) {
	var req dto.VerifyLoginCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, usecase.ErrInvalidInput)
		return
	}
	user, pair, err := h.auth.VerifyLoginCode(c.Request.Context(), req.Code, req.Email, req.DontAskOnThisDevice, req.DeviceToken)
	if err != nil {
		slog.Warn("login code verification failed", "error", err, "email", req.Email)
		response.Fail(c, err)
		return
	}
	slog.Info("login code verified", "user_id", user.ID)
	deliverTokens(c, pair, user)
}
