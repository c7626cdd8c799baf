// Package response provides the single place where result codes are mapped
// to HTTP statuses and response bodies.
package response

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"account_backend/internal/shared/apperr"
)

// Body is the uniform response envelope.
type Body struct {
	Code    apperr.Code `json:"code"`
	Message string      `json:"message"`
	Data    any         `json:"data,omitempty"`
}

// OK writes a success envelope with the given HTTP status and payload.
func OK(c *gin.Context, status int, data any) {
	c.JSON(status, Body{Code: apperr.OK, Message: apperr.OK.Message(), Data: data})
}

// Fail maps err to its result code and writes the error envelope. Only the
// code's client-safe message leaves the server; unclassified errors are
// logged with full context and reported as server errors.
func Fail(c *gin.Context, err error) {
	code := apperr.CodeOf(err)
	if code == apperr.ServerError {
		slog.Error("unexpected error", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	}
	c.JSON(code.HTTPStatus(), Body{Code: code, Message: code.Message()})
}
