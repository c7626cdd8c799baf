// Package router wires the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "account_backend/internal/feature/auth/transport/handler"
	mediahandler "account_backend/internal/feature/media/transport/handler"
	notificationhandler "account_backend/internal/feature/notifications/transport/handler"
	projecthandler "account_backend/internal/feature/projects/transport/handler"
	supporthandler "account_backend/internal/feature/support/transport/handler"
	"account_backend/internal/platform/http/handler"
	jwtmw "account_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine with all routes registered. Routes under
// the auth group require a valid access token.
func NewRouter(
	signer jwtmw.Signer,
	authH *authhandler.AuthHandler,
	projectH *projecthandler.ProjectHandler,
	mediaH *mediahandler.MediaHandler,
	notificationH *notificationhandler.NotificationHandler,
	supportH *supporthandler.SupportHandler,
) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	// Account lifecycle, no token required
	r.POST("/signup", authH.Signup)
	r.POST("/login", authH.Login)
	r.POST("/refresh", authH.Refresh)
	r.POST("/password/forgot", authH.ForgotPassword)
	r.POST("/password/reset", authH.ResetPassword)
	r.POST("/password/new", authH.SetNewPassword)
	r.POST("/email/verify", authH.VerifyEmail)
	r.POST("/email/resend", authH.ResendVerificationEmail)
	r.POST("/login-code/resend", authH.ResendLoginCode)
	r.POST("/login-code/verify", authH.VerifyLoginCode)

	// Authenticated routes
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(signer))
	{
		auth.POST("/logout", authH.Logout)
		auth.POST("/phone/send-code", authH.SendPhoneCode)
		auth.POST("/phone/verify", authH.VerifyPhoneCode)

		auth.GET("/projects", projectH.List)
		auth.POST("/projects", projectH.Create)
		auth.GET("/projects/:id", projectH.Get)
		auth.PUT("/projects/:id", projectH.Update)
		auth.DELETE("/projects/:id", projectH.Delete)

		auth.GET("/media", mediaH.List)
		auth.POST("/media", mediaH.Register)
		auth.GET("/media/:id", mediaH.Get)
		auth.DELETE("/media/:id", mediaH.Delete)

		auth.GET("/notifications", notificationH.List)
		auth.POST("/notifications/:id/read", notificationH.MarkRead)
		auth.POST("/notifications/read-all", notificationH.MarkAllRead)

		auth.GET("/support", supportH.List)
		auth.POST("/support", supportH.Create)
		auth.GET("/support/:id", supportH.Get)
	}

	return r
}
