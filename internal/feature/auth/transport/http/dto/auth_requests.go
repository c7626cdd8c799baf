// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer. Gin's binding tags perform request validation.
package dto

// SignupReq represents the request body for the /signup endpoint. Password
// is optional: OAuth-registered accounts carry none.
type SignupReq struct {
	AuthType string `json:"auth_type" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=8"`
}

// LoginReq represents the request body for the /login endpoint. DeviceToken,
// when present and trusted, skips the login-code step.
type LoginReq struct {
	AuthType    string `json:"auth_type" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password"`
	DeviceToken string `json:"device_token"`
}

// RefreshReq represents the request body for the /refresh endpoint.
type RefreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ForgotPasswordReq represents the request body for /password/forgot.
type ForgotPasswordReq struct {
	Email string `json:"email" binding:"required,email"`
}

// SetPasswordReq represents the request body for /password/reset and
// /password/new. UID and HashUID are the two components of the link the
// user received.
type SetPasswordReq struct {
	UID      string `json:"uid" binding:"required"`
	HashUID  string `json:"hash_uid" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// VerifyEmailReq represents the request body for /email/verify.
type VerifyEmailReq struct {
	UID     string `json:"uid" binding:"required"`
	HashUID string `json:"hash_uid" binding:"required"`
}

// ResendEmailReq represents the request body for /email/resend and
// /login-code/resend.
type ResendEmailReq struct {
	Email string `json:"email" binding:"required,email"`
}

// SendPhoneCodeReq represents the request body for /phone/send-code.
type SendPhoneCodeReq struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// VerifyPhoneCodeReq represents the request body for /phone/verify.
type VerifyPhoneCodeReq struct {
	Code string `json:"code" binding:"required"`
}

// VerifyLoginCodeReq represents the request body for /login-code/verify.
type VerifyLoginCodeReq struct {
	Email               string `json:"email" binding:"required,email"`
	Code                string `json:"code" binding:"required"`
	DontAskOnThisDevice bool   `json:"dont_ask_on_this_device"`
	DeviceToken         string `json:"device_token"`
}
