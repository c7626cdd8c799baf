package jwtmw

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const ContextUserID = "userID"

// AuthRequired returns a Gin middleware that validates access tokens and
// restricts access to authenticated users only. Unlike Signer.Verify, the
// middleware does reject expired tokens: a stale access token must never
// reach a protected handler.
func AuthRequired(signer Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify signature and structure
		userID, expiresAt, ok := signer.VerifyAccess(tokenStr)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 3. Enforce expiry here; VerifyAccess leaves it to the caller
		if time.Now().After(expiresAt) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
			return
		}

		// 4. Expose the authenticated user to handlers
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID extracts the authenticated user id set by AuthRequired.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
